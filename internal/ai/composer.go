package ai

import "context"

// Email is a generated outreach message.
type Email struct {
	Subject string
	Body    string
	Raw     string
}

// Composer turns assembled personalization data into an outreach email.
type Composer interface {
	Compose(ctx context.Context, data map[string]string) (*Email, error)
}
