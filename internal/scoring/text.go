package scoring

import (
	"strings"

	"outreach-responder/internal/prospect"
)

// ScoreTextRelevance applies a softer per-keyword-hit scheme than
// ScoreAchievement: each role or company word found in the text adds a
// little, and a shared industry indicator adds a one-time bonus. The result
// is in [0, 1].
func ScoreTextRelevance(text string, p *prospect.Prospect) float64 {
	if text == "" || p == nil {
		return 0
	}

	lowered := strings.ToLower(text)
	role := strings.ToLower(p.Role)
	company := strings.ToLower(p.Company)

	score := 0.0

	for _, kw := range keywordsOf(role) {
		if contains(lowered, kw) {
			score += 0.1
		}
	}

	for _, kw := range keywordsOf(company) {
		if contains(lowered, kw) {
			score += 0.1
		}
	}

	target := role + " " + company
	for _, indicator := range industryIndicators {
		if contains(target, indicator) && contains(lowered, indicator) {
			score += 0.15
			break
		}
	}

	return clamp(score)
}

// keywordsOf splits free text into lowercase words longer than two
// characters, the minimum considered meaningful for matching.
func keywordsOf(text string) []string {
	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		if len(field) > 2 {
			out = append(out, field)
		}
	}
	return out
}
