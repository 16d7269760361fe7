package personalize

import "regexp"

var placeholderPattern = regexp.MustCompile(`\{([a-z0-9_]+)\}`)

// RenderTemplate substitutes {key} placeholders with values from data.
// Unknown keys render as empty strings; rendering never fails.
func RenderTemplate(template string, data map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		key := match[1 : len(match)-1]
		return data[key]
	})
}

// DefaultEmailTemplate is the built-in fallback used when AI composition is
// disabled. It relies only on keys that are always present in the data map.
const DefaultEmailTemplate = `Hi {prospect_first_name},

{sender_introduction} {skill_connection}

{achievement_highlight} {value_proposition}

{availability_mention} {portfolio_reference}

Would you be open to a short conversation?

Best regards,
{sender_name}`
