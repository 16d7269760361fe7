package filtering

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach-responder/internal/profile"
	"outreach-responder/internal/prospect"
)

func createTestProspects() *prospect.Prospects {
	return &prospect.Prospects{Items: []*prospect.Prospect{
		{Name: "Jane Smith", Role: "Senior Engineering Manager", Company: "CloudWorks", Email: "jane@cloudworks.example"},
		{Name: "John Roe", Role: "Accountant", Company: "Ledger LLC", Email: "john@ledger.example"},
		{Name: "No Email", Role: "Engineer", Company: "Ghost Inc"},
	}}
}

func createTestSender() *profile.Profile {
	return &profile.Profile{
		Name:                "Alex Doe",
		CurrentRole:         "Backend Engineer",
		YearsExperience:     8,
		NotableAchievements: []string{"Led team that scaled systems to 2 million users"},
	}
}

func TestMissingEmailFilter(t *testing.T) {
	p := createTestProspects()

	left, step, err := NewMissingEmail().Apply(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, 3, step.Initial)
	assert.Equal(t, 1, step.Dropped)
	assert.Equal(t, 2, step.Left)
	assert.Nil(t, left.FindByName("No Email"))
}

func TestExcludeCompaniesFilter(t *testing.T) {
	p := createTestProspects()

	left, step, err := NewExcludeCompanies([]string{"ledger llc"}).Apply(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, 1, step.Dropped)
	assert.Nil(t, left.FindByEmail("john@ledger.example"))
	assert.NotNil(t, left.FindByEmail("jane@cloudworks.example"))
}

func TestExcludeCompaniesFilterNoConfig(t *testing.T) {
	p := createTestProspects()

	_, step, err := NewExcludeCompanies(nil).Apply(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 0, step.Dropped)
}

func TestContactedFileFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacted.json")

	contacted := &prospect.ContactedProspects{}
	contacted.Add(&prospect.Prospect{Email: "jane@cloudworks.example"}, "email sent")
	require.NoError(t, contacted.ToFile(path))

	p := createTestProspects()
	left, step, err := NewContactedFile(path).Apply(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, 1, step.Dropped)
	assert.Nil(t, left.FindByEmail("jane@cloudworks.example"))
}

func TestContactedFileFilterMissingFile(t *testing.T) {
	p := createTestProspects()

	_, step, err := NewContactedFile(filepath.Join(t.TempDir(), "absent.json")).Apply(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 0, step.Dropped)
}

func TestContactedFileFilterCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacted.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, _, err := NewContactedFile(path).Apply(context.Background(), createTestProspects())
	assert.Error(t, err)
}

func TestRelevanceThresholdFilter(t *testing.T) {
	p := createTestProspects()

	filter := NewRelevanceThreshold(0.6, createTestSender())
	require.True(t, filter.IsEnabled())
	require.NoError(t, filter.Validate())

	left, step, err := filter.Apply(context.Background(), p)
	require.NoError(t, err)

	assert.NotNil(t, left.FindByEmail("jane@cloudworks.example"), "senior technical prospect should pass the threshold")
	assert.Nil(t, left.FindByEmail("john@ledger.example"), "unrelated prospect should be dropped")
	assert.Equal(t, step.Initial-step.Left, step.Dropped)
}

func TestRelevanceThresholdFilterDisabledWithoutFloor(t *testing.T) {
	filter := NewRelevanceThreshold(0, createTestSender())
	assert.False(t, filter.IsEnabled())
}

func TestRelevanceThresholdFilterRequiresSender(t *testing.T) {
	filter := NewRelevanceThreshold(0.5, nil)
	assert.Error(t, filter.Validate())
}

func TestRunFiltersSequence(t *testing.T) {
	p := createTestProspects()

	f := New([]Filter{
		NewMissingEmail(),
		NewExcludeCompanies([]string{"Ledger LLC"}),
	}, nil)

	left, err := f.RunFilters(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 1, left.Len())
}

func TestRunFiltersValidatesBeforeApplying(t *testing.T) {
	p := createTestProspects()

	f := New([]Filter{NewRelevanceThreshold(0.5, nil)}, nil)

	_, err := f.RunFilters(context.Background(), p)
	assert.ErrorContains(t, err, "relevance_threshold")
	assert.Equal(t, 3, p.Len(), "no filter may run when validation fails")
}

func TestRunFiltersSkipsDisabled(t *testing.T) {
	p := createTestProspects()

	disabled := NewRelevanceThreshold(0.9, nil)
	disabled.Disable("sender profile unavailable")

	f := New([]Filter{disabled, NewMissingEmail()}, nil)

	left, err := f.RunFilters(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 2, left.Len())
}
