package prospect

import (
	"os"
	"path/filepath"
	"testing"
)

const prospectsYAML = `prospects:
  - name: Jane Smith
    role: Senior Engineering Manager
    company: CloudWorks
    email: jane@cloudworks.example
  - name: John Roe
    role: Designer
    company: PixelCo
    email: john@pixelco.example
`

func loadTestProspects(t *testing.T) *Prospects {
	t.Helper()

	path := filepath.Join(t.TempDir(), "prospects.yaml")
	if err := os.WriteFile(path, []byte(prospectsYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	prospects, err := FromFile(path)
	if err != nil {
		t.Fatalf("loading prospects: %v", err)
	}
	return prospects
}

func TestFromFile(t *testing.T) {
	prospects := loadTestProspects(t)

	if prospects.Len() != 2 {
		t.Fatalf("expected 2 prospects, got %d", prospects.Len())
	}

	jane := prospects.FindByEmail("JANE@cloudworks.example")
	if jane == nil || jane.Name != "Jane Smith" {
		t.Fatalf("case-insensitive email lookup failed, got %+v", jane)
	}

	john := prospects.FindByName("john roe")
	if john == nil || john.Email != "john@pixelco.example" {
		t.Fatalf("case-insensitive name lookup failed, got %+v", john)
	}

	if missing := prospects.FindByEmail("nobody@example.com"); missing != nil {
		t.Fatalf("expected nil for unknown email, got %+v", missing)
	}
}

func TestFromFileUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prospects.csv")
	if err := os.WriteFile(path, []byte("name,email\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := FromFile(path); err == nil {
		t.Fatal("expected an error for unsupported extension")
	}
}

func TestExcludeByCompany(t *testing.T) {
	prospects := loadTestProspects(t)

	excluded := prospects.Exclude(CompanyField, []string{"pixelco"})
	if len(excluded) != 1 || excluded[0] != "john@pixelco.example" {
		t.Fatalf("expected john excluded, got %v", excluded)
	}
	if prospects.Len() != 1 {
		t.Fatalf("expected 1 prospect left, got %d", prospects.Len())
	}
}

func TestExcludeByEmail(t *testing.T) {
	prospects := loadTestProspects(t)

	excluded := prospects.Exclude(EmailField, []string{"jane@cloudworks.example", "unknown@example.com"})
	if len(excluded) != 1 {
		t.Fatalf("expected 1 excluded, got %v", excluded)
	}
	if left := prospects.FindByEmail("jane@cloudworks.example"); left != nil {
		t.Fatal("jane must be gone after exclusion")
	}
}

func TestReportByCompany(t *testing.T) {
	prospects := loadTestProspects(t)

	report := prospects.ReportByCompany()
	if len(report) != 2 {
		t.Fatalf("expected 2 companies, got %d", len(report))
	}
	if entries := report["CloudWorks"]; len(entries) != 1 || entries[0]["name"] != "Jane Smith" {
		t.Fatalf("unexpected CloudWorks entries: %v", entries)
	}
}

func TestContactedRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacted.json")

	contacted, err := ContactedFromFile(path)
	if err != nil {
		t.Fatalf("missing file must yield an empty list, got %v", err)
	}
	if len(contacted.Items) != 0 {
		t.Fatalf("expected empty list, got %d items", len(contacted.Items))
	}

	contacted.Add(&Prospect{Name: "Jane Smith", Email: "jane@cloudworks.example", Company: "CloudWorks"}, "email sent")
	if err := contacted.ToFile(path); err != nil {
		t.Fatalf("writing contacted file: %v", err)
	}

	reloaded, err := ContactedFromFile(path)
	if err != nil {
		t.Fatalf("reloading contacted file: %v", err)
	}

	emails := reloaded.Emails()
	if len(emails) != 1 || emails[0] != "jane@cloudworks.example" {
		t.Fatalf("unexpected emails after round trip: %v", emails)
	}
	if reloaded.Items[0].ContactedAt.IsZero() {
		t.Fatal("contacted timestamp must be set")
	}
}

func TestContactedAppend(t *testing.T) {
	a := &ContactedProspects{}
	a.Add(&Prospect{Email: "one@example.com"}, "sent")

	b := &ContactedProspects{}
	b.Add(&Prospect{Email: "two@example.com"}, "sent")

	a.Append(b)
	if len(a.Emails()) != 2 {
		t.Fatalf("expected 2 emails after append, got %v", a.Emails())
	}
}
