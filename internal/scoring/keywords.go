package scoring

// Static keyword tables backing the deterministic scorers. Initialized once;
// never mutated at runtime.

var leadershipVerbs = []string{"led", "managed", "directed", "supervised", "coordinated", "headed"}

var seniorityWords = []string{"senior", "lead", "manager", "director", "head", "vp", "cto", "ceo"}

var buildVerbs = []string{"built", "developed", "implemented", "architected", "designed", "created", "launched"}

var technicalRoleWords = []string{"engineer", "developer", "architect", "technical"}

var scaleVerbs = []string{"scaled", "grew", "increased", "improved", "optimized", "reduced"}

var startupStageWords = []string{"startup", "early", "seed", "series"}

// industrySynonyms expands an industry of interest into terms commonly found
// in company names and role titles.
var industrySynonyms = map[string][]string{
	"saas":          {"software", "platform", "service", "cloud", "api"},
	"fintech":       {"financial", "finance", "payment", "banking", "crypto", "blockchain"},
	"healthtech":    {"health", "medical", "care", "biotech", "pharma", "clinical"},
	"edtech":        {"education", "learning", "school", "university", "course", "training"},
	"ecommerce":     {"commerce", "retail", "marketplace", "shopping", "store", "consumer"},
	"ai":            {"artificial intelligence", "machine learning", "ml", "data", "analytics", "automation"},
	"cybersecurity": {"security", "privacy", "threat", "encryption", "compliance"},
	"gaming":        {"game", "games", "entertainment", "interactive", "studio"},
	"social":        {"social", "community", "network", "media", "creator"},
	"productivity":  {"productivity", "collaboration", "workflow", "tools", "automation"},
}

// industryIndicators is the shared vocabulary used to detect an industry
// overlap between a prospect's company/role text and arbitrary profile text.
var industryIndicators = []string{
	"software", "fintech", "health", "data", "cloud",
	"security", "commerce", "ai", "platform", "analytics",
}

// skillTier groups skill keywords associated with a role keyword by how
// strongly they signal relevance.
type skillTier struct {
	High   []string // 3 points
	Medium []string // 2 points
	Low    []string // 1 point
}

// roleSkillTiers maps keywords found in a prospect's role title to tiers of
// sender skills that resonate with that role.
var roleSkillTiers = map[string]skillTier{
	"engineer": {
		High:   []string{"python", "go", "java", "javascript", "typescript", "react", "system design", "architecture", "api"},
		Medium: []string{"docker", "kubernetes", "aws", "sql", "testing", "ci/cd", "git"},
		Low:    []string{"agile", "communication", "documentation"},
	},
	"developer": {
		High:   []string{"python", "go", "java", "javascript", "typescript", "react", "node", "api", "frontend", "backend"},
		Medium: []string{"docker", "kubernetes", "aws", "sql", "testing", "git"},
		Low:    []string{"agile", "communication", "documentation"},
	},
	"designer": {
		High:   []string{"figma", "ui", "ux", "design systems", "prototyping"},
		Medium: []string{"css", "accessibility", "user research", "illustration"},
		Low:    []string{"branding", "communication"},
	},
	"product": {
		High:   []string{"roadmap", "product strategy", "user research", "analytics", "prioritization"},
		Medium: []string{"agile", "a/b testing", "sql", "stakeholder management"},
		Low:    []string{"communication", "documentation"},
	},
	"marketing": {
		High:   []string{"seo", "content", "campaigns", "growth", "brand"},
		Medium: []string{"analytics", "copywriting", "email", "social media"},
		Low:    []string{"communication", "design"},
	},
	"sales": {
		High:   []string{"negotiation", "crm", "prospecting", "outreach", "closing"},
		Medium: []string{"salesforce", "pipeline", "forecasting"},
		Low:    []string{"communication", "presentation"},
	},
	"data": {
		High:   []string{"python", "sql", "machine learning", "statistics", "pandas", "modeling"},
		Medium: []string{"tableau", "spark", "etl", "airflow", "visualization"},
		Low:    []string{"excel", "reporting"},
	},
	"devops": {
		High:   []string{"kubernetes", "docker", "terraform", "aws", "gcp", "ci/cd"},
		Medium: []string{"linux", "monitoring", "ansible", "networking"},
		Low:    []string{"scripting", "documentation"},
	},
	"security": {
		High:   []string{"penetration testing", "threat modeling", "encryption", "compliance"},
		Medium: []string{"siem", "network security", "incident response"},
		Low:    []string{"audits", "documentation"},
	},
	"manager": {
		High:   []string{"leadership", "team building", "mentoring", "strategy", "hiring"},
		Medium: []string{"agile", "planning", "budgeting", "okrs"},
		Low:    []string{"reporting", "communication"},
	},
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && contains(text, kw) {
			return true
		}
	}
	return false
}
