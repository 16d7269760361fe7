package prospect

import (
	"encoding/json"
	"os"
	"time"
)

// ContactedProspects is the persistent exclude list of prospects that were
// already reached out to, kept in a JSON file next to the campaign config.
type ContactedProspects struct {
	Items []*ContactedProspect
}

type ContactedProspect struct {
	Email       string    `json:"email"`
	Name        string    `json:"name,omitempty"`
	Company     string    `json:"company,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	ContactedAt time.Time `json:"contacted_at"`
}

// ContactedFromFile loads the contacted list from path. A missing or empty
// file yields an empty list.
func ContactedFromFile(path string) (*ContactedProspects, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ContactedProspects{}, nil
		}
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ContactedProspects{}, nil
	}

	var contacted ContactedProspects
	if err := json.NewDecoder(file).Decode(&contacted); err != nil {
		return nil, err
	}
	return &contacted, nil
}

func (c *ContactedProspects) Append(other *ContactedProspects) {
	c.Items = append(c.Items, other.Items...)
}

func (c *ContactedProspects) Add(p *Prospect, reason string) {
	c.Items = append(c.Items, &ContactedProspect{
		Email:       p.Email,
		Name:        p.Name,
		Company:     p.Company,
		Reason:      reason,
		ContactedAt: time.Now().UTC(),
	})
}

func (c *ContactedProspects) Emails() []string {
	emails := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		emails = append(emails, item.Email)
	}
	return emails
}

func (c *ContactedProspects) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
