package personalize

import (
	"fmt"
	"strings"

	"outreach-responder/internal/profile"
	"outreach-responder/internal/prospect"
	"outreach-responder/internal/scoring"
)

// Truncation limits keep the prompt short; the exact numbers carry no
// business meaning.
const (
	maxAchievementLen = 100
	maxValuePropLen   = 100
)

// Highlights are the selected pieces of the sender's profile, recomputed on
// every email-generation call and never cached or persisted.
type Highlights struct {
	PrimaryIntroduction string
	RelevantSkills      string
	KeyAchievement      string
	ValueConnection     string
	AvailabilityNote    string
}

// SelectHighlights scores the sender's profile against the prospect and the
// optional product context and picks what to emphasize. A nil profile yields
// empty highlights; this function never fails.
func SelectHighlights(p *profile.Profile, target *prospect.Prospect, ctx *Context) Highlights {
	if p == nil || target == nil {
		return Highlights{}
	}
	if ctx == nil {
		ctx = &Context{}
	}

	return Highlights{
		PrimaryIntroduction: primaryIntroduction(p, target),
		RelevantSkills:      relevantSkills(p, target),
		KeyAchievement:      keyAchievement(p, target, ctx),
		ValueConnection:     valueConnection(p, target, ctx),
		AvailabilityNote:    availabilityNote(p),
	}
}

// primaryIntroduction emphasizes leadership when the prospect holds a senior
// role, otherwise the sender's top skills.
func primaryIntroduction(p *profile.Profile, target *prospect.Prospect) string {
	if scoring.HasSeniorityWord(target.Role) {
		if scoring.HasLeadershipVerb(p.ExperienceSummary) {
			return fmt.Sprintf("%s with %d years of experience leading teams and delivery", p.CurrentRole, p.YearsExperience)
		}
		return fmt.Sprintf("experienced %s with %d years in the field", p.CurrentRole, p.YearsExperience)
	}

	skills := firstN(p.KeySkills, 3)
	if len(skills) == 0 {
		return fmt.Sprintf("%s with %d years of experience", p.CurrentRole, p.YearsExperience)
	}

	return fmt.Sprintf("%s specializing in %s", p.CurrentRole, strings.Join(skills, ", "))
}

func relevantSkills(p *profile.Profile, target *prospect.Prospect) string {
	matched := scoring.MatchSkills(p.KeySkills, target)
	if matched != "" {
		return matched
	}
	return strings.Join(firstN(p.KeySkills, 3), ", ")
}

// keyAchievement picks the achievement that best matches the company's
// needs: the base relevance score plus a small bonus when the achievement
// echoes the product features or the business stage.
func keyAchievement(p *profile.Profile, target *prospect.Prospect, ctx *Context) string {
	if len(p.NotableAchievements) == 0 {
		return ""
	}

	best := ""
	bestScore := 0.0
	for _, achievement := range p.NotableAchievements {
		score := scoring.ScoreAchievement(achievement, target)
		score += companyNeedsBonus(achievement, ctx)
		if score > bestScore {
			best = achievement
			bestScore = score
		}
	}

	if best == "" {
		best = p.NotableAchievements[0]
	}

	return truncate(best, maxAchievementLen)
}

func companyNeedsBonus(achievement string, ctx *Context) float64 {
	bonus := 0.0
	lowered := strings.ToLower(achievement)

	if ctx.ProductFeatures != "" {
		features := strings.ToLower(ctx.ProductFeatures)
		for _, word := range strings.Fields(lowered) {
			if len(word) > 3 && strings.Contains(features, word) {
				bonus += 0.1
				break
			}
		}
	}

	if ctx.BusinessInsights != "" {
		insights := strings.ToLower(ctx.BusinessInsights)
		startupAligned := strings.Contains(lowered, "startup") && scoring.HasStartupStageWord(insights)
		scaleAligned := scoring.HasScaleVerb(lowered) && (strings.Contains(insights, "scale") || strings.Contains(insights, "growth"))
		if startupAligned || scaleAligned {
			bonus += 0.1
		}
	}

	return bonus
}

// valueConnection concatenates up to two reasons the sender is a fit for
// this specific company, falling back to the raw value proposition.
func valueConnection(p *profile.Profile, target *prospect.Prospect, ctx *Context) string {
	var connections []string

	if industries := scoring.MatchIndustries(p.IndustriesOfInterest, target); industries != "" {
		connections = append(connections, industries)
	}

	insights := strings.ToLower(ctx.BusinessInsights)
	summary := strings.ToLower(p.ExperienceSummary)

	if (strings.Contains(insights, "startup") || strings.Contains(insights, "early")) &&
		(strings.Contains(summary, "startup") || strings.Contains(summary, "early-stage") || strings.Contains(summary, "founding")) {
		connections = append(connections, "experienced with early-stage company challenges")
	}

	if (strings.Contains(insights, "scale") || strings.Contains(insights, "growth")) &&
		(strings.Contains(summary, "scaled") || strings.Contains(summary, "growth") || strings.Contains(summary, "expansion")) {
		connections = append(connections, "experienced with scaling technical systems")
	}

	if len(connections) == 0 {
		return truncate(p.ValueProposition, maxValuePropLen)
	}

	if len(connections) > 2 {
		connections = connections[:2]
	}

	return strings.Join(connections, "; ")
}

// availabilityNote joins up to two logistics facts, skipping empty fields.
func availabilityNote(p *profile.Profile) string {
	var notes []string

	if p.Availability != "" {
		notes = append(notes, p.Availability)
	}
	if p.RemotePreference != "" {
		notes = append(notes, fmt.Sprintf("open to %s work", p.RemotePreference))
	}
	if p.Location != "" {
		notes = append(notes, fmt.Sprintf("based in %s", p.Location))
	}

	if len(notes) > 2 {
		notes = notes[:2]
	}

	return strings.Join(notes, "; ")
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		n = len(items)
	}
	return items[:n]
}

// truncate cuts the string to limit runes without decoration.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
