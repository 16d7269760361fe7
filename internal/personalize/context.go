package personalize

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// StructuredAnalysis is product analysis that arrives with named fields,
// typically produced by an upstream research step.
type StructuredAnalysis struct {
	BusinessInsights string `yaml:"business_insights" json:"business_insights,omitempty"`
	ProductFeatures  string `yaml:"product_features" json:"product_features,omitempty"`
	MarketAnalysis   string `yaml:"market_analysis" json:"market_analysis,omitempty"`
}

// AnalysisSource is a tagged union over the two shapes product analysis can
// take: a structured record or a loosely-typed string mapping. At most one
// variant is set; both nil means no analysis is available.
type AnalysisSource struct {
	Structured *StructuredAnalysis
	Raw        map[string]string
}

// Context is the single internal record every scoring and assembly function
// consumes, regardless of which variant the analysis arrived as.
type Context struct {
	BusinessInsights string
	ProductFeatures  string
	MarketAnalysis   string
}

// NormalizeAnalysis folds either variant into a Context. Missing input
// degrades to an empty Context, never an error.
func NormalizeAnalysis(src AnalysisSource) *Context {
	if src.Structured != nil {
		return &Context{
			BusinessInsights: strings.TrimSpace(src.Structured.BusinessInsights),
			ProductFeatures:  strings.TrimSpace(src.Structured.ProductFeatures),
			MarketAnalysis:   strings.TrimSpace(src.Structured.MarketAnalysis),
		}
	}

	if src.Raw != nil {
		return &Context{
			BusinessInsights: strings.TrimSpace(src.Raw["business_insights"]),
			ProductFeatures:  strings.TrimSpace(src.Raw["product_features"]),
			MarketAnalysis:   strings.TrimSpace(src.Raw["market_analysis"]),
		}
	}

	return &Context{}
}

// AnalysisFromFile loads a raw product-context mapping from a YAML or JSON
// file.
func AnalysisFromFile(path string) (AnalysisSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AnalysisSource{}, fmt.Errorf("reading product context: %w", err)
	}

	raw := make(map[string]string)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return AnalysisSource{}, fmt.Errorf("parsing product context yaml %q: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return AnalysisSource{}, fmt.Errorf("parsing product context json %q: %w", path, err)
		}
	default:
		return AnalysisSource{}, fmt.Errorf("unsupported product context format %q: expected .yaml, .yml or .json", filepath.Ext(path))
	}

	return AnalysisSource{Raw: raw}, nil
}
