package profile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard collects a profile interactively. Every answer is optional except
// name and current role; list answers are comma-separated. The result is
// normalized and validated before it is returned.
func RunWizard() (*Profile, error) {
	p := &Profile{}

	required := func(label string) (string, error) {
		prompt := promptui.Prompt{
			Label: label,
			Validate: func(input string) error {
				if strings.TrimSpace(input) == "" {
					return fmt.Errorf("%s is required", strings.ToLower(label))
				}
				return nil
			},
		}
		return prompt.Run()
	}

	optional := func(label string) (string, error) {
		prompt := promptui.Prompt{Label: label + " (optional)"}
		return prompt.Run()
	}

	list := func(label string) ([]string, error) {
		raw, err := optional(label + ", comma-separated")
		if err != nil {
			return nil, err
		}
		return splitList(raw), nil
	}

	var err error
	if p.Name, err = required("Full name"); err != nil {
		return nil, err
	}
	if p.CurrentRole, err = required("Current role"); err != nil {
		return nil, err
	}

	yearsPrompt := promptui.Prompt{
		Label: "Years of experience",
		Validate: func(input string) error {
			years, err := strconv.Atoi(strings.TrimSpace(input))
			if err != nil {
				return fmt.Errorf("enter a whole number")
			}
			if years < 0 || years > maxYearsExperience {
				return fmt.Errorf("enter a value between 0 and %d", maxYearsExperience)
			}
			return nil
		},
	}
	years, err := yearsPrompt.Run()
	if err != nil {
		return nil, err
	}
	p.YearsExperience, _ = strconv.Atoi(strings.TrimSpace(years))

	if p.KeySkills, err = list("Key skills"); err != nil {
		return nil, err
	}
	if p.ExperienceSummary, err = optional("Experience summary"); err != nil {
		return nil, err
	}
	if p.NotableAchievements, err = list("Notable achievements"); err != nil {
		return nil, err
	}
	if p.TargetRoles, err = list("Target roles"); err != nil {
		return nil, err
	}
	if p.IndustriesOfInterest, err = list("Industries of interest"); err != nil {
		return nil, err
	}
	if p.Education, err = list("Education"); err != nil {
		return nil, err
	}
	if p.Certifications, err = list("Certifications"); err != nil {
		return nil, err
	}
	if p.PortfolioLinks, err = list("Portfolio links"); err != nil {
		return nil, err
	}
	if p.ValueProposition, err = optional("Value proposition"); err != nil {
		return nil, err
	}
	if p.Availability, err = optional("Availability"); err != nil {
		return nil, err
	}
	if p.Location, err = optional("Location"); err != nil {
		return nil, err
	}
	if p.ContactPreference, err = optional("Preferred contact method"); err != nil {
		return nil, err
	}
	if p.SalaryExpectation, err = optional("Salary expectation"); err != nil {
		return nil, err
	}

	remotePrompt := promptui.Select{
		Label: "Remote preference",
		Items: append([]string{"no preference"}, RemotePreferences...),
	}
	_, remote, err := remotePrompt.Run()
	if err != nil {
		return nil, err
	}
	if remote != "no preference" {
		p.RemotePreference = remote
	}

	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
