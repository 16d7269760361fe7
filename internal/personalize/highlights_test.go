package personalize

import (
	"strings"
	"testing"

	"outreach-responder/internal/profile"
	"outreach-responder/internal/prospect"
)

func TestSelectHighlightsNilInputs(t *testing.T) {
	if got := SelectHighlights(nil, testProspect(), nil); got != (Highlights{}) {
		t.Fatalf("expected empty highlights for nil profile, got %+v", got)
	}
	if got := SelectHighlights(testSender(), nil, nil); got != (Highlights{}) {
		t.Fatalf("expected empty highlights for nil prospect, got %+v", got)
	}
}

func TestPrimaryIntroductionSeniorProspect(t *testing.T) {
	sender := testSender()
	senior := &prospect.Prospect{Role: "VP of Engineering", Company: "Acme"}

	got := SelectHighlights(sender, senior, nil).PrimaryIntroduction
	if !strings.Contains(got, "leading teams") {
		t.Fatalf("expected leadership phrasing for a senior prospect, got %q", got)
	}
}

func TestPrimaryIntroductionJuniorProspect(t *testing.T) {
	sender := testSender()
	junior := &prospect.Prospect{Role: "Software Engineer", Company: "Acme"}

	got := SelectHighlights(sender, junior, nil).PrimaryIntroduction
	if !strings.Contains(got, "specializing in Go, Python, Kubernetes") {
		t.Fatalf("expected skills phrasing for a non-senior prospect, got %q", got)
	}
}

func TestKeyAchievementPicksBestMatch(t *testing.T) {
	sender := testSender()
	sender.NotableAchievements = []string{
		"Wrote internal documentation",
		"Led team that scaled the platform to 2 million users",
	}
	target := &prospect.Prospect{Role: "Senior Engineering Manager", Company: "Acme"}

	got := SelectHighlights(sender, target, nil).KeyAchievement
	if !strings.Contains(got, "scaled the platform") {
		t.Fatalf("expected the higher-scoring achievement, got %q", got)
	}
}

func TestKeyAchievementTruncated(t *testing.T) {
	sender := testSender()
	sender.NotableAchievements = []string{"Led " + strings.Repeat("a very long achievement ", 20)}
	target := &prospect.Prospect{Role: "Senior Manager", Company: "Acme"}

	got := SelectHighlights(sender, target, nil).KeyAchievement
	if len([]rune(got)) > maxAchievementLen {
		t.Fatalf("achievement must be truncated to %d runes, got %d", maxAchievementLen, len([]rune(got)))
	}
}

func TestKeyAchievementProductFeatureBonus(t *testing.T) {
	sender := testSender()
	sender.NotableAchievements = []string{
		"Implemented payments infrastructure",
		"Implemented search indexing",
	}
	target := &prospect.Prospect{Role: "CTO", Company: "Acme"}
	ctx := &Context{ProductFeatures: "payments, invoicing, billing"}

	got := SelectHighlights(sender, target, ctx).KeyAchievement
	if !strings.Contains(got, "payments") {
		t.Fatalf("expected the feature-aligned achievement, got %q", got)
	}
}

func TestValueConnectionFallsBackToValueProposition(t *testing.T) {
	sender := testSender()
	sender.IndustriesOfInterest = nil
	sender.ExperienceSummary = "general backend work"
	target := &prospect.Prospect{Role: "Accountant", Company: "Ledger LLC"}

	got := SelectHighlights(sender, target, nil).ValueConnection
	if got != sender.ValueProposition {
		t.Fatalf("expected fallback to the value proposition, got %q", got)
	}
}

func TestValueConnectionLimitsToTwo(t *testing.T) {
	sender := testSender()
	sender.IndustriesOfInterest = []string{"SaaS"}
	sender.ExperienceSummary = "scaled early-stage startup growth systems"
	target := &prospect.Prospect{Role: "Engineer", Company: "SaaS platform"}
	ctx := &Context{BusinessInsights: "an early startup focused on growth and scale"}

	got := SelectHighlights(sender, target, ctx).ValueConnection
	if n := len(strings.Split(got, "; ")); n > 2 {
		t.Fatalf("expected at most two connections, got %d: %q", n, got)
	}
	if !strings.Contains(got, "Interested in SaaS") {
		t.Fatalf("expected the industry connection first, got %q", got)
	}
}

func TestAvailabilityNoteLimitsToTwo(t *testing.T) {
	sender := &profile.Profile{
		Name:             "Alex Doe",
		CurrentRole:      "Engineer",
		Availability:     "available in two weeks",
		RemotePreference: "hybrid",
		Location:         "Berlin",
	}
	target := &prospect.Prospect{Role: "Engineer", Company: "Acme"}

	got := SelectHighlights(sender, target, nil).AvailabilityNote
	want := "available in two weeks; open to hybrid work"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
