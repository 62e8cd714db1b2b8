package mergerunner

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdata/truck-tyre-scraper/dataset"
	"github.com/fleetdata/truck-tyre-scraper/export"
	"github.com/fleetdata/truck-tyre-scraper/runner"
)

func TestMergeRunEndToEnd(t *testing.T) {
	dir := t.TempDir()

	harvest := []dataset.HarvestedCompany{
		{
			Name: "ABC Truck Tyres Ltd", CompanyNumber: "01234567",
			Status: "active", BusinessType: dataset.TypeWholesaler,
			Source: dataset.SourceCompaniesHouse,
		},
	}
	require.NoError(t, export.WriteJSON(filepath.Join(dir, runner.HarvestJSONFile), harvest))

	industry := []dataset.DirectoryCompany{
		// Duplicate of the harvested company: must be discarded.
		{Name: "abc truck tyres ltd", BusinessType: "Truck Tyre Fitter", Phone: "0123"},
		// Passes the loose test on its type label alone.
		{Name: "Midlands Tyres", BusinessType: "Commercial Fleet Tyres", Phone: "0800 1"},
		// No vehicle term anywhere: filtered out.
		{Name: "City Tyre Centre", BusinessType: "Retailer"},
		// Nameless: dropped at ingestion.
		{Name: "", Phone: "0800 2"},
	}
	require.NoError(t, export.WriteJSON(filepath.Join(dir, runner.DirectoryJSONFile), industry))

	cfg := &runner.Config{RunMode: runner.RunModeMerge, OutDir: dir}

	r, err := New(cfg)
	require.NoError(t, err)

	require.NoError(t, r.Run(context.Background()))

	master, err := export.ReadCompanies(filepath.Join(dir, runner.MasterJSONFile))
	require.NoError(t, err)
	require.Len(t, master, 2)

	assert.Equal(t, "ABC Truck Tyres Ltd", master[0].Name)
	assert.Equal(t, dataset.TypeWholesaler, master[0].BusinessType)
	assert.Empty(t, master[0].Phone, "fields are not backfilled from the losing duplicate")

	assert.Equal(t, "Midlands Tyres", master[1].Name)
	assert.Equal(t, "0800 1", master[1].Phone)

	assert.FileExists(t, filepath.Join(dir, runner.MasterCSVFile))
	assert.FileExists(t, filepath.Join(dir, runner.WorkbookFile))
}

func TestMergeRunWithMissingSources(t *testing.T) {
	dir := t.TempDir()

	cfg := &runner.Config{RunMode: runner.RunModeMerge, OutDir: dir}

	r, err := New(cfg)
	require.NoError(t, err)

	// Both inputs missing: a warning, an empty master, never an error.
	require.NoError(t, r.Run(context.Background()))

	master, err := export.ReadCompanies(filepath.Join(dir, runner.MasterJSONFile))
	require.NoError(t, err)
	assert.Empty(t, master)
}
