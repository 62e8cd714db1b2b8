package harvestrunner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdata/truck-tyre-scraper/classify"
	"github.com/fleetdata/truck-tyre-scraper/companieshouse"
	"github.com/fleetdata/truck-tyre-scraper/dataset"
	"github.com/fleetdata/truck-tyre-scraper/runner"
)

func newTestRunner() *harvestRunner {
	return &harvestRunner{
		cfg:        &runner.Config{MaxPages: 5, EnrichLimit: 0},
		classifier: classify.New(classify.DefaultRules()),
	}
}

func TestCollect(t *testing.T) {
	r := newTestRunner()

	items := []companieshouse.SearchItem{
		{
			CompanyNumber: "01", Title: "ABC TRUCK TYRE WHOLESALE LTD",
			CompanyStatus: "active", CompanyType: "ltd",
			DateOfCreation: "1998-04-02", AddressSnippet: "Leeds",
			SICCodes: []string{"45310", "46900"},
		},
		// Dissolved companies are skipped.
		{CompanyNumber: "02", Title: "OLD TRUCK TYRES LTD", CompanyStatus: "dissolved"},
		// Off-domain names are skipped.
		{CompanyNumber: "03", Title: "AGRICULTURAL TRUCK TYRES LTD", CompanyStatus: "active"},
		{CompanyNumber: "04", Title: "SMITH HOLDINGS LTD", CompanyStatus: "active"},
	}

	seen := make(map[string]struct{})

	out := r.collect(items, seen)
	require.Len(t, out, 1)

	got := out[0]
	assert.Equal(t, "01", got.CompanyNumber)
	assert.Equal(t, dataset.TypeWholesaler, got.BusinessType)
	assert.Equal(t, "45310, 46900", got.SICCodes)
	assert.Equal(t, dataset.SourceCompaniesHouse, got.Source)

	// The same company surfacing under a later phrase is not re-added.
	out = r.collect(items[:1], seen)
	assert.Empty(t, out)
}

func TestCollectDedupesAcrossPhrases(t *testing.T) {
	r := newTestRunner()
	seen := make(map[string]struct{})

	first := []companieshouse.SearchItem{
		{CompanyNumber: "05", Title: "ANGLIAN TRUCK TYRES", CompanyStatus: "active"},
	}
	second := []companieshouse.SearchItem{
		{CompanyNumber: "05", Title: "ANGLIAN TRUCK TYRES", CompanyStatus: "active"},
		{CompanyNumber: "06", Title: "BARON TRUCK TYRE FITTING", CompanyStatus: "active"},
	}

	require.Len(t, r.collect(first, seen), 1)

	out := r.collect(second, seen)
	require.Len(t, out, 1)
	assert.Equal(t, "06", out[0].CompanyNumber)
}
