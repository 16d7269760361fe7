package profile

import (
	"fmt"
	"strings"
)

const maxYearsExperience = 70

// RemotePreferences lists the accepted values for Profile.RemotePreference,
// compared case-insensitively and stored lowercase.
var RemotePreferences = []string{"remote", "hybrid", "on-site", "flexible"}

// Profile holds the sender's static professional facts used to personalize
// outreach. It is built once by the wizard or a format loader and treated as
// read-only by every scoring pass; only explicit edit flows mutate it.
type Profile struct {
	Name                 string   `yaml:"name" json:"name"`
	CurrentRole          string   `yaml:"current_role" json:"current_role"`
	YearsExperience      int      `yaml:"years_experience" json:"years_experience"`
	KeySkills            []string `yaml:"key_skills" json:"key_skills"`
	ExperienceSummary    string   `yaml:"experience_summary" json:"experience_summary"`
	Education            []string `yaml:"education,omitempty" json:"education,omitempty"`
	Certifications       []string `yaml:"certifications,omitempty" json:"certifications,omitempty"`
	ValueProposition     string   `yaml:"value_proposition,omitempty" json:"value_proposition,omitempty"`
	TargetRoles          []string `yaml:"target_roles,omitempty" json:"target_roles,omitempty"`
	IndustriesOfInterest []string `yaml:"industries_of_interest,omitempty" json:"industries_of_interest,omitempty"`
	NotableAchievements  []string `yaml:"notable_achievements,omitempty" json:"notable_achievements,omitempty"`
	PortfolioLinks       []string `yaml:"portfolio_links,omitempty" json:"portfolio_links,omitempty"`
	ContactPreference    string   `yaml:"contact_preference,omitempty" json:"contact_preference,omitempty"`
	Availability         string   `yaml:"availability,omitempty" json:"availability,omitempty"`
	Location             string   `yaml:"location,omitempty" json:"location,omitempty"`
	RemotePreference     string   `yaml:"remote_preference,omitempty" json:"remote_preference,omitempty"`
	SalaryExpectation    string   `yaml:"salary_expectation,omitempty" json:"salary_expectation,omitempty"`
}

// ValidationError reports a profile field that failed validation. It is the
// only error kind this package surfaces to scoring callers, and only from
// construction and loading paths.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile: %s: %s", e.Field, e.Reason)
}

// Normalize trims whitespace on scalar fields and lowercases the remote
// preference. Called before Validate on every load path.
func (p *Profile) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.CurrentRole = strings.TrimSpace(p.CurrentRole)
	p.ExperienceSummary = strings.TrimSpace(p.ExperienceSummary)
	p.ValueProposition = strings.TrimSpace(p.ValueProposition)
	p.ContactPreference = strings.TrimSpace(p.ContactPreference)
	p.Availability = strings.TrimSpace(p.Availability)
	p.Location = strings.TrimSpace(p.Location)
	p.SalaryExpectation = strings.TrimSpace(p.SalaryExpectation)
	p.RemotePreference = strings.ToLower(strings.TrimSpace(p.RemotePreference))

	p.KeySkills = trimAll(p.KeySkills)
	p.TargetRoles = trimAll(p.TargetRoles)
	p.IndustriesOfInterest = trimAll(p.IndustriesOfInterest)
	p.NotableAchievements = trimAll(p.NotableAchievements)
	p.PortfolioLinks = trimAll(p.PortfolioLinks)
}

// Validate checks required fields and value ranges. The returned error is
// always a *ValidationError.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	if p.CurrentRole == "" {
		return &ValidationError{Field: "current_role", Reason: "must not be empty"}
	}

	if p.YearsExperience < 0 {
		return &ValidationError{Field: "years_experience", Reason: "must not be negative"}
	}

	if p.YearsExperience > maxYearsExperience {
		return &ValidationError{
			Field:  "years_experience",
			Reason: fmt.Sprintf("must not exceed %d", maxYearsExperience),
		}
	}

	if p.RemotePreference != "" && !validRemotePreference(p.RemotePreference) {
		return &ValidationError{
			Field:  "remote_preference",
			Reason: fmt.Sprintf("must be one of %s", strings.Join(RemotePreferences, ", ")),
		}
	}

	return nil
}

func validRemotePreference(pref string) bool {
	for _, allowed := range RemotePreferences {
		if pref == allowed {
			return true
		}
	}
	return false
}

func trimAll(values []string) []string {
	if len(values) == 0 {
		return values
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
