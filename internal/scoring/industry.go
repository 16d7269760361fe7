package scoring

import (
	"sort"
	"strings"

	"outreach-responder/internal/prospect"
)

type industryScore struct {
	name  string
	score int
}

// MatchIndustries summarizes which of the sender's industries of interest
// resonate with the prospect's company and role. Direct mentions weigh
// double a synonym hit. Returns a human-readable phrase naming the top two
// industries, or the empty string when nothing overlaps.
func MatchIndustries(industries []string, p *prospect.Prospect) string {
	if len(industries) == 0 || p == nil {
		return ""
	}

	role := strings.ToLower(p.Role)
	company := strings.ToLower(p.Company)

	scored := make([]industryScore, 0, len(industries))
	for _, industry := range industries {
		key := normalizeIndustry(industry)
		if key == "" {
			continue
		}

		score := 0
		if contains(company, key) {
			score += 2
		}
		if contains(role, key) {
			score += 2
		}

		for _, synonym := range industrySynonyms[key] {
			if contains(company, synonym) || contains(role, synonym) {
				score++
			}
		}

		if score > 0 {
			scored = append(scored, industryScore{name: industry, score: score})
		}
	}

	if len(scored) == 0 {
		return ""
	}

	// Stable sort keeps the sender's original ordering on ties.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	top := make([]string, 0, 2)
	for _, entry := range scored {
		top = append(top, entry.name)
		if len(top) == 2 {
			break
		}
	}

	return "Interested in " + strings.Join(top, ", ")
}

func normalizeIndustry(industry string) string {
	key := strings.ToLower(strings.TrimSpace(industry))
	key = strings.ReplaceAll(key, " ", "")
	key = strings.ReplaceAll(key, "-", "")
	return key
}
