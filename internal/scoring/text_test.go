package scoring

import (
	"testing"

	"outreach-responder/internal/prospect"
)

func TestScoreTextRelevanceKeywordHits(t *testing.T) {
	p := &prospect.Prospect{Role: "Platform Engineer", Company: "CloudWorks"}

	score := ScoreTextRelevance("Ten years as a platform engineer building cloud systems", p)
	if score <= 0 {
		t.Fatalf("expected positive score, got %v", score)
	}

	unrelated := ScoreTextRelevance("Weekend chess enthusiast", p)
	if unrelated != 0 {
		t.Fatalf("expected zero score for unrelated text, got %v", unrelated)
	}
}

func TestScoreTextRelevanceIndustryIndicatorBonus(t *testing.T) {
	p := &prospect.Prospect{Role: "Analyst", Company: "Fintech Partners"}

	with := ScoreTextRelevance("Deep fintech background", p)
	without := ScoreTextRelevance("Deep accounting background", p)

	if with <= without {
		t.Fatalf("expected indicator overlap to add a bonus: with=%v without=%v", with, without)
	}
}

func TestScoreTextRelevanceClamped(t *testing.T) {
	p := &prospect.Prospect{
		Role:    "senior platform engineer cloud data security analytics",
		Company: "software fintech health commerce",
	}

	text := "senior platform engineer cloud data security analytics software fintech health commerce"
	if score := ScoreTextRelevance(text, p); score > 1.0 {
		t.Fatalf("score must be clamped to 1.0, got %v", score)
	}
}
