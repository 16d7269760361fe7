package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Outreach statuses.
const (
	StatusDraft  = "draft"
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// Outreach is one generated email for one prospect.
type Outreach struct {
	ID            int64
	CreatedAt     time.Time
	ProspectName  string
	ProspectEmail string
	Company       string
	Subject       string
	Body          string
	Model         string
	Status        string
	Error         string
}
