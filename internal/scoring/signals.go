package scoring

import "strings"

// Signal helpers shared with the highlight selector. All checks are
// case-insensitive substring matches against the same tables the scorers
// use.

// HasSeniorityWord reports whether the text mentions a senior-level role.
func HasSeniorityWord(text string) bool {
	return containsAny(strings.ToLower(text), seniorityWords)
}

// HasLeadershipVerb reports whether the text contains a leadership verb.
func HasLeadershipVerb(text string) bool {
	return containsAny(strings.ToLower(text), leadershipVerbs)
}

// HasScaleVerb reports whether the text contains a scale or impact verb.
func HasScaleVerb(text string) bool {
	return containsAny(strings.ToLower(text), scaleVerbs)
}

// HasStartupStageWord reports whether the text mentions an early-stage
// company signal.
func HasStartupStageWord(text string) bool {
	return containsAny(strings.ToLower(text), startupStageWords)
}
