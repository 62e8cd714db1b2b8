// Package directoryrunner implements the directory run mode: enrich the
// curated industry roster with contact details scraped from each
// company's website and write the secondary dataset.
package directoryrunner

import (
	"context"
	"errors"
	"log"
	"path/filepath"
	"sort"
	"time"

	"github.com/gosom/scrapemate"
	"github.com/gosom/scrapemate/scrapemateapp"

	"github.com/fleetdata/truck-tyre-scraper/dataset"
	"github.com/fleetdata/truck-tyre-scraper/directory"
	"github.com/fleetdata/truck-tyre-scraper/export"
	"github.com/fleetdata/truck-tyre-scraper/runner"
)

type directoryRunner struct {
	cfg *runner.Config
}

func New(cfg *runner.Config) (runner.Runner, error) {
	return &directoryRunner{cfg: cfg}, nil
}

func (r *directoryRunner) Run(ctx context.Context) error {
	seeds := directory.Seeds()

	var (
		jobs     []scrapemate.IJob
		withSite int
		direct   []dataset.DirectoryCompany
	)

	for _, seed := range seeds {
		if seed.Website == "" {
			direct = append(direct, seed)

			continue
		}

		jobs = append(jobs, directory.NewContactJob(seed))
		withSite++
	}

	log.Printf("Enriching %d of %d seeded companies from their websites", withSite, len(seeds))

	writer := directory.NewCompanyWriter()

	companies, err := r.scrape(ctx, writer, jobs)
	if err != nil {
		return err
	}

	companies = append(companies, direct...)

	for i := range companies {
		if companies[i].Source == "" {
			companies[i].Source = dataset.SourceIndustryDatabase
		}
	}

	sort.Slice(companies, func(i, j int) bool {
		return companies[i].Name < companies[j].Name
	})

	jsonPath := filepath.Join(r.cfg.OutDir, runner.DirectoryJSONFile)
	if err := export.WriteJSON(jsonPath, companies); err != nil {
		return err
	}

	log.Printf("Industry dataset complete: %d companies written to %s", len(companies), jsonPath)

	return nil
}

func (r *directoryRunner) Close(context.Context) error {
	return nil
}

// scrape runs the contact jobs one at a time. Concurrency stays at 1 so
// the run respects the same request pacing as the harvest.
func (r *directoryRunner) scrape(ctx context.Context, writer *directory.CompanyWriter, jobs []scrapemate.IJob) ([]dataset.DirectoryCompany, error) {
	if len(jobs) == 0 {
		return nil, nil
	}

	opts := []func(*scrapemateapp.Config) error{
		scrapemateapp.WithConcurrency(1),
		scrapemateapp.WithExitOnInactivity(30 * time.Second),
	}

	writers := []scrapemate.ResultWriter{writer}

	cfg, err := scrapemateapp.NewConfig(writers, opts...)
	if err != nil {
		return nil, err
	}

	app, err := scrapemateapp.NewScrapeMateApp(cfg)
	if err != nil {
		return nil, err
	}
	defer app.Close()

	if err := app.Start(ctx, jobs...); err != nil &&
		!errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		log.Printf("Contact scraping ended early: %v (keeping %d collected records)",
			err, len(writer.Companies()))
	}

	return writer.Companies(), nil
}
