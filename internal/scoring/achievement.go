// Package scoring contains the deterministic relevance heuristics used to
// pick which parts of a sender's profile to surface for a given prospect.
// All scores are plain additive point systems over lowercase substring
// checks: reproducible, explainable, and free of any ML dependency.
package scoring

import (
	"regexp"
	"strings"

	"outreach-responder/internal/prospect"
)

// quantifiedPattern matches quantified impact statements such as "40%",
// "3x", "2 million" or "500k".
var quantifiedPattern = regexp.MustCompile(`(?i)\d+[%x]|\d+\s*(million|thousand|k|m)\b`)

func contains(text, keyword string) bool {
	return strings.Contains(text, keyword)
}

// ScoreAchievement rates how relevant a single achievement string is to the
// prospect's role and company. The result is in [0, 1].
func ScoreAchievement(achievement string, p *prospect.Prospect) float64 {
	if achievement == "" || p == nil {
		return 0
	}

	text := strings.ToLower(achievement)
	role := strings.ToLower(p.Role)
	company := strings.ToLower(p.Company)

	score := 0.0

	if containsAny(text, leadershipVerbs) {
		if containsAny(role, seniorityWords) {
			score += 0.3
		} else {
			score += 0.1
		}
	}

	if containsAny(text, buildVerbs) {
		if containsAny(role, technicalRoleWords) {
			score += 0.3
		} else {
			score += 0.1
		}
	}

	if containsAny(text, scaleVerbs) {
		score += 0.2
	}

	if quantifiedPattern.MatchString(text) {
		score += 0.2
	}

	if contains(text, "startup") && containsAny(company, startupStageWords) {
		score += 0.2
	}

	return clamp(score)
}

func clamp(score float64) float64 {
	if score > 1.0 {
		return 1.0
	}
	return score
}
