// Package harvestrunner implements the harvest run mode: query Companies
// House with the phrase list, classify and dedupe the hits, enrich the
// top records with profile details and write the harvest dataset.
package harvestrunner

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fleetdata/truck-tyre-scraper/classify"
	"github.com/fleetdata/truck-tyre-scraper/companieshouse"
	"github.com/fleetdata/truck-tyre-scraper/dataset"
	"github.com/fleetdata/truck-tyre-scraper/export"
	"github.com/fleetdata/truck-tyre-scraper/runner"
	"github.com/fleetdata/truck-tyre-scraper/sic"
)

type harvestRunner struct {
	cfg        *runner.Config
	client     *companieshouse.Client
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

	return &harvestRunner{
		cfg:        cfg,
		client:     companieshouse.NewClient(cfg.APIKey),
		classifier: classify.New(rules),
	}, nil
}

func (r *harvestRunner) Run(ctx context.Context) error {
	phrases, err := r.phrases()
	if err != nil {
		return err
	}

	log.Printf("Harvesting Companies House with %d search phrases", len(phrases))

	companies := r.harvest(ctx, phrases)

	log.Printf("Harvest found %d companies, enriching up to %d with profile details",
		len(companies), r.cfg.EnrichLimit)

	r.enrich(ctx, companies)

	dataset.SortHarvested(companies)

	jsonPath := filepath.Join(r.cfg.OutDir, runner.HarvestJSONFile)
	if err := export.WriteJSON(jsonPath, companies); err != nil {
		return err
	}

	csvPath := filepath.Join(r.cfg.OutDir, runner.HarvestCSVFile)
	if err := export.WriteHarvestCSV(csvPath, companies); err != nil {
		return err
	}

	log.Printf("Harvest complete: %d companies written to %s and %s", len(companies), jsonPath, csvPath)

	return nil
}

func (r *harvestRunner) Close(context.Context) error {
	return nil
}

func (r *harvestRunner) phrases() ([]string, error) {
	if r.cfg.InputFile == "" {
		return runner.DefaultSearchPhrases, nil
	}

	f, err := os.Open(r.cfg.InputFile)
	if err != nil {
		return nil, fmt.Errorf("opening phrase file: %w", err)
	}
	defer f.Close()

	phrases, err := runner.LoadPhrases(f)
	if err != nil {
		return nil, fmt.Errorf("reading phrase file: %w", err)
	}

	if len(phrases) == 0 {
		return nil, fmt.Errorf("phrase file %s contains no phrases", r.cfg.InputFile)
	}

	return phrases, nil
}

// harvest pages through every search phrase sequentially. Company
// numbers are deduped across the whole run, not per phrase: "truck tyre"
// and "truck tyre fitter" routinely surface the same company.
func (r *harvestRunner) harvest(ctx context.Context, phrases []string) []dataset.HarvestedCompany {
	seen := make(map[string]struct{})

	var companies []dataset.HarvestedCompany

	for _, phrase := range phrases {
		if ctx.Err() != nil {
			break
		}

		log.Printf("Searching: %q", phrase)

		page, err := r.client.SearchCompanies(ctx, phrase, 0)
		if err != nil {
			log.Printf("Search %q failed: %v (continuing with next phrase)", phrase, err)
			r.pause(ctx)

			continue
		}

		companies = append(companies, r.collect(page.Items, seen)...)

		totalPages := (page.TotalResults + companieshouse.PageSize - 1) / companieshouse.PageSize
		if totalPages > r.cfg.MaxPages {
			totalPages = r.cfg.MaxPages
		}

		for pageNum := 1; pageNum < totalPages; pageNum++ {
			r.pause(ctx)

			if ctx.Err() != nil {
				break
			}

			more, err := r.client.SearchCompanies(ctx, phrase, pageNum*companieshouse.PageSize)
			if err != nil {
				log.Printf("Search %q page %d failed: %v", phrase, pageNum+1, err)

				break
			}

			companies = append(companies, r.collect(more.Items, seen)...)
		}

		r.pause(ctx)
	}

	return companies
}

func (r *harvestRunner) collect(items []companieshouse.SearchItem, seen map[string]struct{}) []dataset.HarvestedCompany {
	var out []dataset.HarvestedCompany

	for _, item := range items {
		if item.CompanyStatus != "active" {
			continue
		}

		if _, ok := seen[item.CompanyNumber]; ok {
			continue
		}

		businessType, ok := r.classifier.Classify(item.Title, item.SICCodes)
		if !ok {
			continue
		}

		seen[item.CompanyNumber] = struct{}{}

		out = append(out, dataset.HarvestedCompany{
			CompanyNumber: item.CompanyNumber,
			Name:          item.Title,
			Status:        item.CompanyStatus,
			CompanyType:   item.CompanyType,
			DateCreated:   item.DateOfCreation,
			Address:       item.AddressSnippet,
			BusinessType:  businessType,
			SICCodes:      joinCodes(item.SICCodes),
			Source:        dataset.SourceCompaniesHouse,
		})
	}

	return out
}

// enrich swaps the address snippet for the full registered office
// address and fills SIC codes and last accounts, best effort: a failed
// lookup leaves the record as harvested.
func (r *harvestRunner) enrich(ctx context.Context, companies []dataset.HarvestedCompany) {
	limit := r.cfg.EnrichLimit
	if limit > len(companies) {
		limit = len(companies)
	}

	for i := 0; i < limit; i++ {
		if ctx.Err() != nil {
			return
		}

		profile, err := r.client.CompanyProfile(ctx, companies[i].CompanyNumber)
		if err != nil {
			log.Printf("Profile lookup for %s failed: %v (keeping search fields)",
				companies[i].CompanyNumber, err)
			r.pause(ctx)

			continue
		}

		if addr := companieshouse.FormatAddress(profile.RegisteredOfficeAddress); addr != "" {
			companies[i].Address = addr
		}

		if len(profile.SICCodes) > 0 {
			companies[i].SICCodes = joinCodes(profile.SICCodes)
			companies[i].SICDescriptions = sic.DescribeAll(profile.SICCodes)
		}

		if profile.Accounts != nil && profile.Accounts.LastAccounts != nil {
			companies[i].LastAccounts = profile.Accounts.LastAccounts.MadeUpTo
		}

		if (i+1)%10 == 0 {
			log.Printf("Enriched %d/%d...", i+1, limit)
		}

		r.pause(ctx)
	}
}

// pause is the unconditional cool-down after every API call, keeping the
// run inside the registry's request-rate ceiling.
func (r *harvestRunner) pause(ctx context.Context) {
	if r.cfg.Delay <= 0 {
		return
	}

	select {
	case <-time.After(r.cfg.Delay):
	case <-ctx.Done():
	}
}

func joinCodes(codes []string) string {
	return strings.Join(codes, ", ")
}
