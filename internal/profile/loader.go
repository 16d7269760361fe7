package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a profile from a YAML or JSON file, chosen by extension,
// normalizes it and validates it.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}

	var p Profile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parsing profile yaml %q: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parsing profile json %q: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported profile format %q: expected .yaml, .yml or .json", filepath.Ext(path))
	}

	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Save writes the profile to the given path, YAML or JSON by extension.
func (p *Profile) Save(path string) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(p)
	case ".json":
		data, err = json.MarshalIndent(p, "", "  ")
	default:
		return fmt.Errorf("unsupported profile format %q: expected .yaml, .yml or .json", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing profile file: %w", err)
	}

	return nil
}

// Markdown renders the profile as a human-readable markdown document for
// review in the `profile show` command.
func (p *Profile) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	fmt.Fprintf(&b, "**%s** — %d years of experience\n\n", p.CurrentRole, p.YearsExperience)

	writeList := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&b, "## %s\n\n", title)
		for _, item := range items {
			fmt.Fprintf(&b, "- %s\n", item)
		}
		b.WriteString("\n")
	}

	if p.ExperienceSummary != "" {
		fmt.Fprintf(&b, "%s\n\n", p.ExperienceSummary)
	}

	writeList("Key skills", p.KeySkills)
	writeList("Notable achievements", p.NotableAchievements)
	writeList("Target roles", p.TargetRoles)
	writeList("Industries of interest", p.IndustriesOfInterest)
	writeList("Education", p.Education)
	writeList("Certifications", p.Certifications)
	writeList("Portfolio", p.PortfolioLinks)

	if p.ValueProposition != "" {
		fmt.Fprintf(&b, "## Value proposition\n\n%s\n\n", p.ValueProposition)
	}

	var facts []string
	if p.Location != "" {
		facts = append(facts, "Location: "+p.Location)
	}
	if p.RemotePreference != "" {
		facts = append(facts, "Remote preference: "+p.RemotePreference)
	}
	if p.Availability != "" {
		facts = append(facts, "Availability: "+p.Availability)
	}
	if p.ContactPreference != "" {
		facts = append(facts, "Preferred contact: "+p.ContactPreference)
	}
	if p.SalaryExpectation != "" {
		facts = append(facts, "Salary expectation: "+p.SalaryExpectation)
	}
	if len(facts) > 0 {
		b.WriteString("## Logistics\n\n")
		for _, fact := range facts {
			fmt.Fprintf(&b, "- %s\n", fact)
		}
	}

	return b.String()
}
