package personalize

import (
	"reflect"
	"strings"
	"testing"

	"outreach-responder/internal/profile"
	"outreach-responder/internal/prospect"
)

func testProspect() *prospect.Prospect {
	return &prospect.Prospect{
		Name:    "Jane Smith",
		Role:    "Senior Engineering Manager",
		Company: "CloudWorks",
		Email:   "jane@cloudworks.example",
	}
}

func testSender() *profile.Profile {
	return &profile.Profile{
		Name:                "Alex Doe",
		CurrentRole:         "Backend Engineer",
		YearsExperience:     8,
		KeySkills:           []string{"Go", "Python", "Kubernetes"},
		ExperienceSummary:   "Led backend teams at two startups",
		ValueProposition:    "I ship reliable systems fast",
		NotableAchievements: []string{"Led migration that reduced costs by 40%"},
		PortfolioLinks:      []string{"https://alexdoe.example"},
		Availability:        "available immediately",
		Location:            "Berlin",
		RemotePreference:    "remote",
	}
}

func TestAssembleWithoutSender(t *testing.T) {
	data := Assemble(Inputs{Prospect: testProspect()})
	m := data.ToMap()

	for _, key := range []string{
		"sender_name", "sender_skills", "sender_primary_introduction",
		"sender_relevant_skills", "sender_key_achievement",
		"sender_introduction", "skill_connection",
	} {
		value, ok := m[key]
		if !ok {
			t.Fatalf("key %q must be present even without a sender profile", key)
		}
		if value != "" {
			t.Fatalf("key %q must be empty without a sender profile, got %q", key, value)
		}
	}

	if m["prospect_first_name"] != "Jane" {
		t.Fatalf("expected first name Jane, got %q", m["prospect_first_name"])
	}
}

func TestAssembleDeterministic(t *testing.T) {
	in := Inputs{
		Prospect: testProspect(),
		Sender:   testSender(),
		Analysis: AnalysisSource{Raw: map[string]string{"business_insights": "a growth-stage startup"}},
	}

	first := Assemble(in).ToMap()
	second := Assemble(in).ToMap()

	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs must assemble identical data")
	}
}

func TestAssembleAIStructuredWinsOverScraped(t *testing.T) {
	data := Assemble(Inputs{
		Prospect: testProspect(),
		LinkedIn: &prospect.LinkedInProfile{
			Headline: "scraped headline",
			Summary:  "scraped summary",
			Location: "scraped location",
		},
		AIStructured: map[string]string{
			"linkedin_summary":  "refined summary",
			"linkedin_headline": "refined headline",
		},
	})

	if data.LinkedInSummary != "refined summary" {
		t.Fatalf("refined summary must win, got %q", data.LinkedInSummary)
	}
	if data.LinkedInHeadline != "refined headline" {
		t.Fatalf("refined headline must win, got %q", data.LinkedInHeadline)
	}
	if data.LinkedInLocation != "scraped location" {
		t.Fatalf("scraped location must survive when not refined, got %q", data.LinkedInLocation)
	}
}

func TestAssembleAdditionalNeverOverrides(t *testing.T) {
	data := Assemble(Inputs{
		Prospect:   testProspect(),
		Additional: map[string]string{"prospect_name": "Impostor", "campaign_tag": "q3-outreach"},
	})
	m := data.ToMap()

	if m["prospect_name"] != "Jane Smith" {
		t.Fatalf("additional entries must not override named fields, got %q", m["prospect_name"])
	}
	if m["campaign_tag"] != "q3-outreach" {
		t.Fatalf("additional entries must be merged, got %q", m["campaign_tag"])
	}
}

func TestAssembleTruncatesLongNotes(t *testing.T) {
	p := testProspect()
	p.Notes = strings.Repeat("x", 500)

	data := Assemble(Inputs{Prospect: p})
	if got := len(data.ProspectNotes); got != maxNotesLen {
		t.Fatalf("expected notes truncated to %d, got %d", maxNotesLen, got)
	}
}

func TestSectionsDropEmpty(t *testing.T) {
	data := Assemble(Inputs{Prospect: testProspect()})

	if sections := data.Sections(); len(sections) != 0 {
		t.Fatalf("expected no sections without a sender, got %v", sections)
	}

	withSender := Assemble(Inputs{Prospect: testProspect(), Sender: testSender()})
	sections := withSender.Sections()

	if _, ok := sections["sender_introduction"]; !ok {
		t.Fatalf("expected a sender introduction section, got %v", sections)
	}
	for key, value := range sections {
		if value == "" {
			t.Fatalf("section %q is empty but was not dropped", key)
		}
	}
}

func TestSectionPortfolioReference(t *testing.T) {
	data := Assemble(Inputs{Prospect: testProspect(), Sender: testSender()})

	want := "You can see examples of my work at https://alexdoe.example."
	if data.SectionPortfolioReference != want {
		t.Fatalf("expected %q, got %q", want, data.SectionPortfolioReference)
	}
}
