// Package mergerunner implements the merge run mode: combine the
// Companies House harvest with the industry dataset into the master
// directory and render every export format.
package mergerunner

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fleetdata/truck-tyre-scraper/classify"
	"github.com/fleetdata/truck-tyre-scraper/dataset"
	"github.com/fleetdata/truck-tyre-scraper/export"
	"github.com/fleetdata/truck-tyre-scraper/runner"
)

type mergeRunner struct {
	cfg        *runner.Config
	classifier *classify.Classifier
}

func New(cfg *runner.Config) (runner.Runner, error) {
	rules := classify.DefaultRules()

	if cfg.RulesFile != "" {
		loaded, err := classify.LoadRules(cfg.RulesFile)
		if err != nil {
			return nil, err
		}

		rules = loaded
	}

	return &mergeRunner{
		cfg:        cfg,
		classifier: classify.New(rules),
	}, nil
}

func (r *mergeRunner) Run(ctx context.Context) error {
	primary := r.loadPrimary()
	secondary := r.loadSecondary()

	master := dataset.Merge(primary, secondary)

	jsonPath := filepath.Join(r.cfg.OutDir, runner.MasterJSONFile)
	if err := export.WriteJSON(jsonPath, master); err != nil {
		return err
	}

	csvPath := filepath.Join(r.cfg.OutDir, runner.MasterCSVFile)
	if err := export.WriteMasterCSV(csvPath, master); err != nil {
		return err
	}

	workbookPath := filepath.Join(r.cfg.OutDir, runner.WorkbookFile)
	if err := export.WriteWorkbook(workbookPath, master, primary); err != nil {
		return err
	}

	r.logSummary(master)

	log.Printf("Master files created: %s, %s, %s", jsonPath, csvPath, workbookPath)

	return nil
}

func (r *mergeRunner) Close(context.Context) error {
	return nil
}

// loadPrimary reads the harvest output. A missing file is a loud warning
// but never fatal: the merge proceeds with whatever sources exist.
func (r *mergeRunner) loadPrimary() []dataset.HarvestedCompany {
	path := filepath.Join(r.cfg.OutDir, runner.HarvestJSONFile)

	companies, err := export.ReadHarvestedCompanies(path)
	if err != nil {
		log.Printf("WARNING: no Companies House data (%v) - merge continues without the primary source", err)

		return nil
	}

	log.Printf("Loaded %d companies from Companies House harvest", len(companies))

	return companies
}

// loadSecondary reads the industry dataset and re-applies the loose
// domain-membership test. The curated source carries its own type
// labels, so a label hit counts even when the name has no vehicle term.
func (r *mergeRunner) loadSecondary() []dataset.DirectoryCompany {
	path := filepath.Join(r.cfg.OutDir, runner.DirectoryJSONFile)

	companies, err := export.ReadDirectoryCompanies(path)
	if err != nil {
		log.Printf("WARNING: no industry data (%v) - merge continues without the secondary source", err)

		return nil
	}

	kept := make([]dataset.DirectoryCompany, 0, len(companies))

	for _, c := range companies {
		if c.Name == "" {
			continue
		}

		if !r.classifier.MatchesDomain(c.Name, c.BusinessType) {
			continue
		}

		kept = append(kept, c)
	}

	log.Printf("Loaded %d companies from industry dataset, %d kept after domain filter",
		len(companies), len(kept))

	return kept
}

func (r *mergeRunner) logSummary(master []dataset.Company) {
	withWebsites := 0
	withAddresses := 0
	withNumbers := 0
	wholesalers := 0
	sources := make(map[string]int)

	for _, c := range master {
		if c.Website != "" {
			withWebsites++
		}

		if c.Address != "" {
			withAddresses++
		}

		if c.CompanyNumber != "" {
			withNumbers++
		}

		if c.IsB2BWholesaler {
			wholesalers++
		}

		sources[c.Source]++
	}

	log.Printf("Total companies: %d (websites: %d, addresses: %d, Companies House #: %d, B2B/wholesalers: %d)",
		len(master), withWebsites, withAddresses, withNumbers, wholesalers)

	for _, tc := range export.TypeCounts(master) {
		log.Printf("  %s: %d", tc.Type, tc.Count)
	}

	for source, count := range sources {
		log.Printf("  source %s: %d", source, count)
	}
}
