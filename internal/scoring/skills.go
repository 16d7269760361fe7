package scoring

import (
	"sort"
	"strings"

	"outreach-responder/internal/prospect"
)

const (
	directMatchScore = 4
	maxMatchedSkills = 4
	fallbackSkills   = 3
)

type skillScore struct {
	name  string
	score int
}

// MatchSkills picks the sender skills most relevant to the prospect's role.
// A skill literally present in the role or company text outranks everything;
// otherwise each role keyword found in the prospect's title contributes its
// tier score and the maximum wins. Falls back to the sender's first skills
// so the result is never empty when skills exist.
func MatchSkills(skills []string, p *prospect.Prospect) string {
	if len(skills) == 0 || p == nil {
		return ""
	}

	role := strings.ToLower(p.Role)
	company := strings.ToLower(p.Company)

	scored := make([]skillScore, 0, len(skills))
	for _, skill := range skills {
		lowered := strings.ToLower(strings.TrimSpace(skill))
		if lowered == "" {
			continue
		}

		score := 0
		if contains(role, lowered) || contains(company, lowered) {
			score = directMatchScore
		} else {
			for roleKeyword, tiers := range roleSkillTiers {
				if !contains(role, roleKeyword) {
					continue
				}
				if tierScore := matchTier(lowered, tiers); tierScore > score {
					score = tierScore
				}
			}
		}

		if score > 0 {
			scored = append(scored, skillScore{name: skill, score: score})
		}
	}

	if len(scored) == 0 {
		limit := fallbackSkills
		if len(skills) < limit {
			limit = len(skills)
		}
		return strings.Join(skills[:limit], ", ")
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > maxMatchedSkills {
		scored = scored[:maxMatchedSkills]
	}

	names := make([]string, len(scored))
	for i, entry := range scored {
		names[i] = entry.name
	}

	return strings.Join(names, ", ")
}

func matchTier(skill string, tiers skillTier) int {
	switch {
	case tierHasSkill(tiers.High, skill):
		return 3
	case tierHasSkill(tiers.Medium, skill):
		return 2
	case tierHasSkill(tiers.Low, skill):
		return 1
	default:
		return 0
	}
}

// tierHasSkill matches bidirectionally: "react" covers the skill "React
// Native" and the skill "js" is covered by the keyword "node.js".
func tierHasSkill(keywords []string, skill string) bool {
	for _, kw := range keywords {
		if strings.Contains(skill, kw) || strings.Contains(kw, skill) {
			return true
		}
	}
	return false
}
