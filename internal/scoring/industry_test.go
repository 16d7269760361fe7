package scoring

import (
	"testing"

	"outreach-responder/internal/prospect"
)

func TestMatchIndustriesSynonym(t *testing.T) {
	industries := []string{"FinTech", "Gaming"}
	p := &prospect.Prospect{Role: "Product Manager", Company: "PaymentTech Inc"}

	got := MatchIndustries(industries, p)
	want := "Interested in FinTech"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestMatchIndustriesDirectBeatsSynonym(t *testing.T) {
	industries := []string{"Gaming", "SaaS"}
	p := &prospect.Prospect{Role: "Engineer", Company: "SaaS game hub"}

	got := MatchIndustries(industries, p)
	want := "Interested in SaaS, Gaming"
	if got != want {
		t.Fatalf("expected direct mention to rank first: want %q, got %q", want, got)
	}
}

func TestMatchIndustriesTopTwo(t *testing.T) {
	industries := []string{"SaaS", "Gaming", "FinTech"}
	p := &prospect.Prospect{Role: "Engineer", Company: "SaaS fintech payments"}

	got := MatchIndustries(industries, p)
	want := "Interested in FinTech, SaaS"
	if got != want {
		t.Fatalf("expected top two industries %q, got %q", want, got)
	}
}

func TestMatchIndustriesNoOverlap(t *testing.T) {
	industries := []string{"Gaming"}
	p := &prospect.Prospect{Role: "Accountant", Company: "Ledger LLC"}

	if got := MatchIndustries(industries, p); got != "" {
		t.Fatalf("expected empty string for no overlap, got %q", got)
	}
}

func TestMatchIndustriesNormalization(t *testing.T) {
	industries := []string{"E-Commerce"}
	p := &prospect.Prospect{Role: "Engineer", Company: "Ecommerce Retail Group"}

	got := MatchIndustries(industries, p)
	want := "Interested in E-Commerce"
	if got != want {
		t.Fatalf("expected hyphen-insensitive match %q, got %q", want, got)
	}
}
