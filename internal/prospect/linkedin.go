package prospect

import (
	"encoding/json"
	"fmt"
	"os"
)

// LinkedInProfile carries scraped public-profile fields for a prospect.
// Scraping itself happens upstream; the data arrives here as a JSON dump.
type LinkedInProfile struct {
	Headline       string   `json:"headline,omitempty"`
	Summary        string   `json:"summary,omitempty"`
	Location       string   `json:"location,omitempty"`
	Experience     []string `json:"experience,omitempty"`
	Education      []string `json:"education,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	RecentActivity []string `json:"recent_activity,omitempty"`
}

// LinkedInFromFile loads a map of prospect email to scraped profile.
func LinkedInFromFile(path string) (map[string]*LinkedInProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading linkedin dump: %w", err)
	}

	profiles := make(map[string]*LinkedInProfile)
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("parsing linkedin dump %q: %w", path, err)
	}

	return profiles, nil
}
