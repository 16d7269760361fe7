package prospect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	EmailField   = "Email"
	CompanyField = "Company"
	NameField    = "Name"
)

// Prospect is a target contact. It is a read-only input to the scoring
// subsystem.
type Prospect struct {
	Name        string `yaml:"name" json:"name,omitempty"`
	Role        string `yaml:"role" json:"role,omitempty"`
	Company     string `yaml:"company" json:"company,omitempty"`
	LinkedInURL string `yaml:"linkedin_url" json:"linkedin_url,omitempty"`
	Email       string `yaml:"email" json:"email,omitempty"`
	SourceURL   string `yaml:"source_url" json:"source_url,omitempty"`
	Notes       string `yaml:"notes" json:"notes,omitempty"`
}

type Prospects struct {
	Items []*Prospect `yaml:"prospects" json:"prospects"`
}

// FromFile loads a prospect list from a YAML or JSON file, chosen by
// extension.
func FromFile(path string) (*Prospects, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading prospects file: %w", err)
	}

	var prospects Prospects
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &prospects); err != nil {
			return nil, fmt.Errorf("parsing prospects yaml %q: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &prospects); err != nil {
			return nil, fmt.Errorf("parsing prospects json %q: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported prospects format %q: expected .yaml, .yml or .json", filepath.Ext(path))
	}

	return &prospects, nil
}

func (p *Prospects) Len() int {
	return len(p.Items)
}

func (p *Prospects) FindByEmail(email string) *Prospect {
	for _, prospect := range p.Items {
		if strings.EqualFold(prospect.Email, email) {
			return prospect
		}
	}
	return nil
}

func (p *Prospects) FindByName(name string) *Prospect {
	for _, prospect := range p.Items {
		if strings.EqualFold(prospect.Name, name) {
			return prospect
		}
	}
	return nil
}

func (pr *Prospect) GetStringField(name string) string {
	switch name {
	case EmailField:
		return pr.Email
	case CompanyField:
		return pr.Company
	case NameField:
		return pr.Name
	default:
		return ""
	}
}

// Exclude removes prospects whose named field matches any of the targets,
// case-insensitively, and returns the emails of the removed entries.
func (p *Prospects) Exclude(name string, targets []string) []string {
	var excluded []string
	kept := make([]*Prospect, 0, len(p.Items))

	for _, prospect := range p.Items {
		value := prospect.GetStringField(name)
		matched := false
		for _, target := range targets {
			if strings.EqualFold(value, target) {
				matched = true
				break
			}
		}
		if matched {
			excluded = append(excluded, prospect.Email)
			continue
		}
		kept = append(kept, prospect)
	}

	p.Items = kept
	return excluded
}

// ReportByCompany groups prospects by company for the interactive report
// action.
func (p *Prospects) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, prospect := range p.Items {
		report[prospect.Company] = append(report[prospect.Company], map[string]string{
			"name":  prospect.Name,
			"role":  prospect.Role,
			"email": prospect.Email,
			"notes": prospect.Notes,
		})
	}
	return report
}

func (p *Prospects) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "prospects_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	return file.Name(), nil
}
