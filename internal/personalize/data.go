package personalize

import (
	"fmt"
	"strconv"
	"strings"

	"outreach-responder/internal/profile"
	"outreach-responder/internal/prospect"
)

// Prompt budget limits for assembled fields.
const (
	maxIntroLen    = 150
	maxNotesLen    = 200
	maxSummaryLen  = 300
	maxListLen     = 500
	maxInsightsLen = 800
)

// Inputs bundles everything the assembler may receive. Every field except
// Prospect is optional; absent inputs degrade to empty strings in the
// output, never to an error.
type Inputs struct {
	Prospect   *prospect.Prospect
	LinkedIn   *prospect.LinkedInProfile
	Analysis   AnalysisSource
	Additional map[string]string
	// AIStructured carries CRM-refined fields that take precedence over
	// scraped LinkedIn data for overlapping keys (linkedin_summary,
	// linkedin_headline, linkedin_location).
	AIStructured map[string]string
	Sender       *profile.Profile
}

// Data is the explicit record behind the flat string mapping consumed by
// prompt templates. Keeping named fields here and converting to a map only
// at the template boundary avoids typo-prone string keys in between.
type Data struct {
	ProspectName        string
	ProspectFirstName   string
	ProspectRole        string
	ProspectCompany     string
	ProspectEmail       string
	ProspectLinkedInURL string
	ProspectSourceURL   string
	ProspectNotes       string

	LinkedInHeadline       string
	LinkedInSummary        string
	LinkedInLocation       string
	LinkedInExperience     string
	LinkedInEducation      string
	LinkedInSkills         string
	LinkedInRecentActivity string

	BusinessInsights string
	ProductFeatures  string
	MarketAnalysis   string

	SenderName              string
	SenderRole              string
	SenderYearsExperience   string
	SenderSkills            string
	SenderExperienceSummary string
	SenderEducation         string
	SenderCertifications    string
	SenderValueProposition  string
	SenderTargetRoles       string
	SenderIndustries        string
	SenderAchievements      string
	SenderPortfolio         string
	SenderAvailability      string
	SenderLocation          string
	SenderRemotePreference  string
	SenderContactPreference string

	SenderPrimaryIntroduction string
	SenderRelevantSkills      string
	SenderKeyAchievement      string
	SenderValueConnection     string
	SenderAvailabilityNote    string

	SectionSenderIntroduction   string
	SectionSkillConnection      string
	SectionAchievementHighlight string
	SectionValueProposition     string
	SectionAvailabilityMention  string
	SectionPortfolioReference   string

	additional map[string]string
}

// Assemble merges prospect data, scraped and AI-refined context, the product
// analysis and the sender's selected highlights into one record. It is a
// pure function of its inputs: identical inputs yield identical output.
func Assemble(in Inputs) *Data {
	d := &Data{additional: in.Additional}

	if in.Prospect != nil {
		d.ProspectName = in.Prospect.Name
		d.ProspectFirstName = firstName(in.Prospect.Name)
		d.ProspectRole = in.Prospect.Role
		d.ProspectCompany = in.Prospect.Company
		d.ProspectEmail = in.Prospect.Email
		d.ProspectLinkedInURL = in.Prospect.LinkedInURL
		d.ProspectSourceURL = in.Prospect.SourceURL
		d.ProspectNotes = truncate(in.Prospect.Notes, maxNotesLen)
	}

	if in.LinkedIn != nil {
		d.LinkedInHeadline = in.LinkedIn.Headline
		d.LinkedInSummary = truncate(in.LinkedIn.Summary, maxSummaryLen)
		d.LinkedInLocation = in.LinkedIn.Location
		d.LinkedInExperience = truncate(strings.Join(in.LinkedIn.Experience, "; "), maxListLen)
		d.LinkedInEducation = truncate(strings.Join(in.LinkedIn.Education, "; "), maxListLen)
		d.LinkedInSkills = truncate(strings.Join(in.LinkedIn.Skills, ", "), maxListLen)
		d.LinkedInRecentActivity = truncate(strings.Join(in.LinkedIn.RecentActivity, "; "), maxListLen)
	}

	// CRM-refined data wins over scraped data for overlapping fields.
	if v := strings.TrimSpace(in.AIStructured["linkedin_summary"]); v != "" {
		d.LinkedInSummary = truncate(v, maxSummaryLen)
	}
	if v := strings.TrimSpace(in.AIStructured["linkedin_headline"]); v != "" {
		d.LinkedInHeadline = v
	}
	if v := strings.TrimSpace(in.AIStructured["linkedin_location"]); v != "" {
		d.LinkedInLocation = v
	}

	ctx := NormalizeAnalysis(in.Analysis)
	d.BusinessInsights = truncate(ctx.BusinessInsights, maxInsightsLen)
	d.ProductFeatures = truncate(ctx.ProductFeatures, maxListLen)
	d.MarketAnalysis = truncate(ctx.MarketAnalysis, maxListLen)

	if in.Sender != nil {
		d.SenderName = in.Sender.Name
		d.SenderRole = in.Sender.CurrentRole
		d.SenderYearsExperience = strconv.Itoa(in.Sender.YearsExperience)
		d.SenderSkills = strings.Join(in.Sender.KeySkills, ", ")
		d.SenderExperienceSummary = truncate(in.Sender.ExperienceSummary, maxListLen)
		d.SenderEducation = strings.Join(in.Sender.Education, "; ")
		d.SenderCertifications = strings.Join(in.Sender.Certifications, "; ")
		d.SenderValueProposition = truncate(in.Sender.ValueProposition, maxNotesLen)
		d.SenderTargetRoles = strings.Join(in.Sender.TargetRoles, ", ")
		d.SenderIndustries = strings.Join(in.Sender.IndustriesOfInterest, ", ")
		d.SenderAchievements = truncate(strings.Join(in.Sender.NotableAchievements, "; "), maxListLen)
		d.SenderPortfolio = strings.Join(in.Sender.PortfolioLinks, ", ")
		d.SenderAvailability = in.Sender.Availability
		d.SenderLocation = in.Sender.Location
		d.SenderRemotePreference = in.Sender.RemotePreference
		d.SenderContactPreference = in.Sender.ContactPreference

		highlights := SelectHighlights(in.Sender, in.Prospect, ctx)
		d.SenderPrimaryIntroduction = truncate(highlights.PrimaryIntroduction, maxIntroLen)
		d.SenderRelevantSkills = highlights.RelevantSkills
		d.SenderKeyAchievement = highlights.KeyAchievement
		d.SenderValueConnection = highlights.ValueConnection
		d.SenderAvailabilityNote = highlights.AvailabilityNote

		d.buildSections(in.Sender)
	}

	return d
}

// buildSections pre-phrases the contextual sentences the prompt can splice
// in verbatim. Empty inputs leave the section empty.
func (d *Data) buildSections(sender *profile.Profile) {
	if d.SenderName != "" && d.SenderPrimaryIntroduction != "" {
		d.SectionSenderIntroduction = fmt.Sprintf("I'm %s, %s.", d.SenderName, d.SenderPrimaryIntroduction)
	}

	if d.SenderRelevantSkills != "" {
		d.SectionSkillConnection = fmt.Sprintf("My background in %s seems directly relevant to your work.", d.SenderRelevantSkills)
	}

	if d.SenderKeyAchievement != "" {
		d.SectionAchievementHighlight = fmt.Sprintf("Recently I %s.", lowerFirst(d.SenderKeyAchievement))
	}

	if d.SenderValueConnection != "" {
		d.SectionValueProposition = fmt.Sprintf("%s.", upperFirst(d.SenderValueConnection))
	}

	if d.SenderAvailabilityNote != "" {
		d.SectionAvailabilityMention = fmt.Sprintf("I'm %s.", d.SenderAvailabilityNote)
	}

	if len(sender.PortfolioLinks) > 0 {
		d.SectionPortfolioReference = fmt.Sprintf("You can see examples of my work at %s.", sender.PortfolioLinks[0])
	}
}

// Sections returns the non-empty contextual sections keyed by section name.
func (d *Data) Sections() map[string]string {
	sections := map[string]string{
		"sender_introduction":   d.SectionSenderIntroduction,
		"skill_connection":      d.SectionSkillConnection,
		"achievement_highlight": d.SectionAchievementHighlight,
		"value_proposition":     d.SectionValueProposition,
		"availability_mention":  d.SectionAvailabilityMention,
		"portfolio_reference":   d.SectionPortfolioReference,
	}

	for key, value := range sections {
		if value == "" {
			delete(sections, key)
		}
	}

	return sections
}

// ToMap flattens the record into the string mapping substituted into prompt
// templates. Every key is always present so template formatting never hits
// a missing key; additional context entries are merged without overriding
// named fields.
func (d *Data) ToMap() map[string]string {
	m := map[string]string{
		"prospect_name":         d.ProspectName,
		"prospect_first_name":   d.ProspectFirstName,
		"prospect_role":         d.ProspectRole,
		"prospect_company":      d.ProspectCompany,
		"prospect_email":        d.ProspectEmail,
		"prospect_linkedin_url": d.ProspectLinkedInURL,
		"prospect_source_url":   d.ProspectSourceURL,
		"prospect_notes":        d.ProspectNotes,

		"linkedin_headline":        d.LinkedInHeadline,
		"linkedin_summary":         d.LinkedInSummary,
		"linkedin_location":        d.LinkedInLocation,
		"linkedin_experience":      d.LinkedInExperience,
		"linkedin_education":       d.LinkedInEducation,
		"linkedin_skills":          d.LinkedInSkills,
		"linkedin_recent_activity": d.LinkedInRecentActivity,

		"business_insights": d.BusinessInsights,
		"product_features":  d.ProductFeatures,
		"market_analysis":   d.MarketAnalysis,

		"sender_name":               d.SenderName,
		"sender_role":               d.SenderRole,
		"sender_years_experience":   d.SenderYearsExperience,
		"sender_skills":             d.SenderSkills,
		"sender_experience_summary": d.SenderExperienceSummary,
		"sender_education":          d.SenderEducation,
		"sender_certifications":     d.SenderCertifications,
		"sender_value_proposition":  d.SenderValueProposition,
		"sender_target_roles":       d.SenderTargetRoles,
		"sender_industries":         d.SenderIndustries,
		"sender_achievements":       d.SenderAchievements,
		"sender_portfolio":          d.SenderPortfolio,
		"sender_availability":       d.SenderAvailability,
		"sender_location":           d.SenderLocation,
		"sender_remote_preference":  d.SenderRemotePreference,
		"sender_contact_preference": d.SenderContactPreference,

		"sender_primary_introduction": d.SenderPrimaryIntroduction,
		"sender_relevant_skills":      d.SenderRelevantSkills,
		"sender_key_achievement":      d.SenderKeyAchievement,
		"sender_value_connection":     d.SenderValueConnection,
		"sender_availability_note":    d.SenderAvailabilityNote,

		"sender_introduction":   d.SectionSenderIntroduction,
		"skill_connection":      d.SectionSkillConnection,
		"achievement_highlight": d.SectionAchievementHighlight,
		"value_proposition":     d.SectionValueProposition,
		"availability_mention":  d.SectionAvailabilityMention,
		"portfolio_reference":   d.SectionPortfolioReference,
	}

	for key, value := range d.additional {
		if _, exists := m[key]; !exists {
			m[key] = value
		}
	}

	return m
}

func firstName(full string) string {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = []rune(strings.ToLower(string(runes[0])))[0]
	return string(runes)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
	return string(runes)
}
