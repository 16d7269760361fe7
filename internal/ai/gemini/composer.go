package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"outreach-responder/internal/ai"
	"outreach-responder/internal/logger"
	"outreach-responder/internal/personalize"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Composer builds an outreach email through Gemini from assembled
// personalization data.
type Composer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewComposer(generator contentGenerator, maxLogLength int, log *zap.Logger) *Composer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &Composer{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

// Compose renders the embedded prompt template with the personalization map
// and parses the JSON response into an email.
func (c *Composer) Compose(ctx context.Context, data map[string]string) (*ai.Email, error) {
	if data == nil {
		return nil, fmt.Errorf("personalization data is required")
	}

	prompt := personalize.RenderTemplate(promptTemplate, data)

	c.logger.Debug("gemini compose request",
		zap.String("prospect_email", data["prospect_email"]),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, c.maxLogLen)),
	)

	raw, err := c.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("gemini compose response",
		zap.String("prospect_email", data["prospect_email"]),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, c.maxLogLen)),
	)

	email, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	email.Raw = raw
	return email, nil
}

func parseResponse(raw string) (*ai.Email, error) {
	cleaned := extractJSON(strings.TrimSpace(raw))

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	subject := coerceString(data["subject"])
	body := coerceString(data["body"])

	if body == "" {
		return nil, fmt.Errorf("gemini response contains no email body")
	}

	return &ai.Email{Subject: subject, Body: body}, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		if v == nil {
			return ""
		}
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}
