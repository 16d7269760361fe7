package filtering

import (
	"context"
	"fmt"
	"strings"

	"outreach-responder/internal/profile"
	"outreach-responder/internal/prospect"
	"outreach-responder/internal/scoring"
)

type missingEmailFilter struct{}

// NewMissingEmail creates a filter that removes prospects without a verified
// email address. There is nobody to write to without one.
func NewMissingEmail() Filter {
	return &missingEmailFilter{}
}

func (f *missingEmailFilter) Name() string { return "missing_email" }

func (f *missingEmailFilter) Disable(string) {}

func (f *missingEmailFilter) IsEnabled() bool { return true }

func (f *missingEmailFilter) Validate() error { return nil }

func (f *missingEmailFilter) Apply(_ context.Context, p *prospect.Prospects) (*prospect.Prospects, Step, error) {
	initial := p.Len()

	kept := make([]*prospect.Prospect, 0, initial)
	for _, candidate := range p.Items {
		if strings.TrimSpace(candidate.Email) != "" {
			kept = append(kept, candidate)
		}
	}
	p.Items = kept

	return p, Step{Initial: initial, Dropped: initial - p.Len(), Left: p.Len()}, nil
}

type excludeCompaniesFilter struct {
	companies []string
}

// NewExcludeCompanies creates a filter that removes prospects from companies
// configured as off-limits.
func NewExcludeCompanies(companies []string) Filter {
	return &excludeCompaniesFilter{companies: companies}
}

func (f *excludeCompaniesFilter) Name() string { return "exclude_companies" }

func (f *excludeCompaniesFilter) Disable(string) {}

func (f *excludeCompaniesFilter) IsEnabled() bool { return true }

func (f *excludeCompaniesFilter) Validate() error { return nil }

func (f *excludeCompaniesFilter) Apply(_ context.Context, p *prospect.Prospects) (*prospect.Prospects, Step, error) {
	initial := p.Len()
	if len(f.companies) == 0 {
		return p, Step{Initial: initial, Dropped: 0, Left: p.Len()}, nil
	}

	p.Exclude(prospect.CompanyField, f.companies)

	return p, Step{Initial: initial, Dropped: initial - p.Len(), Left: p.Len()}, nil
}

type contactedFileFilter struct {
	path string
}

// NewContactedFile creates a filter that removes prospects recorded in the
// contacted exclude file.
func NewContactedFile(path string) Filter {
	return &contactedFileFilter{path: strings.TrimSpace(path)}
}

func (f *contactedFileFilter) Name() string { return "contacted_file" }

func (f *contactedFileFilter) Disable(string) {}

func (f *contactedFileFilter) IsEnabled() bool { return true }

func (f *contactedFileFilter) Validate() error { return nil }

func (f *contactedFileFilter) Apply(_ context.Context, p *prospect.Prospects) (*prospect.Prospects, Step, error) {
	initial := p.Len()
	if f.path == "" {
		return p, Step{Initial: initial, Dropped: 0, Left: p.Len()}, nil
	}

	contacted, err := prospect.ContactedFromFile(f.path)
	if err != nil {
		return p, Step{}, fmt.Errorf("getting contacted prospects from file: %w", err)
	}

	p.Exclude(prospect.EmailField, contacted.Emails())

	return p, Step{Initial: initial, Dropped: initial - p.Len(), Left: p.Len()}, nil
}

type relevanceThresholdFilter struct {
	enabled  bool
	reason   string
	minScore float64
	sender   *profile.Profile
}

// NewRelevanceThreshold creates a filter that drops prospects whose best
// achievement relevance plus summary relevance fall below the configured
// floor. Scoring is deterministic and local; no API is called.
func NewRelevanceThreshold(minScore float64, sender *profile.Profile) Filter {
	return &relevanceThresholdFilter{
		enabled:  minScore > 0,
		minScore: minScore,
		sender:   sender,
	}
}

func (f *relevanceThresholdFilter) Name() string { return "relevance_threshold" }

func (f *relevanceThresholdFilter) Disable(reason string) {
	f.enabled = false
	f.reason = reason
}

func (f *relevanceThresholdFilter) IsEnabled() bool { return f.enabled }

func (f *relevanceThresholdFilter) Validate() error {
	if f.sender == nil {
		return fmt.Errorf("sender profile is required for relevance filtering")
	}
	return nil
}

func (f *relevanceThresholdFilter) Apply(_ context.Context, p *prospect.Prospects) (*prospect.Prospects, Step, error) {
	initial := p.Len()

	kept := make([]*prospect.Prospect, 0, initial)
	for _, candidate := range p.Items {
		if f.score(candidate) >= f.minScore {
			kept = append(kept, candidate)
		}
	}
	p.Items = kept

	return p, Step{Initial: initial, Dropped: initial - p.Len(), Left: p.Len()}, nil
}

func (f *relevanceThresholdFilter) score(candidate *prospect.Prospect) float64 {
	best := 0.0
	for _, achievement := range f.sender.NotableAchievements {
		if s := scoring.ScoreAchievement(achievement, candidate); s > best {
			best = s
		}
	}
	return best + scoring.ScoreTextRelevance(f.sender.ExperienceSummary, candidate)
}
