package directory

import (
	"context"
	"errors"
	"log"

	"github.com/gosom/scrapemate"

	"github.com/fleetdata/truck-tyre-scraper/dataset"
)

var errEmailExcluded = errors.New("email matches an excluded domain or suffix")

// CompanyWriter collects enriched directory records from the scraping
// pipeline.
type CompanyWriter struct {
	companies []dataset.DirectoryCompany
}

func NewCompanyWriter() *CompanyWriter {
	return &CompanyWriter{
		companies: make([]dataset.DirectoryCompany, 0),
	}
}

func (w *CompanyWriter) Run(ctx context.Context, in <-chan scrapemate.Result) error {
	for result := range in {
		company, ok := result.Data.(*dataset.DirectoryCompany)
		if !ok {
			continue
		}

		log.Printf("Collected %s (phone=%q, email=%q)", company.Name, company.Phone, company.Email)

		w.companies = append(w.companies, *company)
	}

	return nil
}

// Companies returns everything collected so far. Call after the
// scrapemate app has drained.
func (w *CompanyWriter) Companies() []dataset.DirectoryCompany {
	return w.companies
}
