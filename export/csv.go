package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/fleetdata/truck-tyre-scraper/dataset"
)

// MasterHeader is the fixed column order of the master CSV.
var MasterHeader = []string{
	"Company Name", "Website", "Phone", "Address", "Business Type",
	"B2B/Wholesaler?", "Service Points", "Region", "Companies House #",
	"Status", "Date Created", "Data Source",
}

// HarvestHeader is the fixed column order of the harvest CSV.
var HarvestHeader = []string{
	"Company Name", "Company Number", "Status", "Business Type",
	"Company Type", "Date Created", "Registered Address", "SIC Codes",
	"Last Accounts", "Source",
}

// WriteMasterCSV renders the canonical merged list as a tabular file.
func WriteMasterCSV(path string, companies []dataset.Company) error {
	rows := make([][]string, 0, len(companies)+1)
	rows = append(rows, MasterHeader)

	for _, c := range companies {
		rows = append(rows, []string{
			c.Name, c.Website, c.Phone, c.Address, string(c.BusinessType),
			yesNo(c.IsB2BWholesaler), c.ServicePoints, c.Region,
			c.CompanyNumber, c.Status, c.DateCreated, c.Source,
		})
	}

	return writeCSV(path, rows)
}

// WriteHarvestCSV renders the Companies House harvest as a tabular file.
func WriteHarvestCSV(path string, companies []dataset.HarvestedCompany) error {
	rows := make([][]string, 0, len(companies)+1)
	rows = append(rows, HarvestHeader)

	for _, c := range companies {
		rows = append(rows, []string{
			c.Name, c.CompanyNumber, c.Status, string(c.BusinessType),
			c.CompanyType, c.DateCreated, c.Address, c.SICCodes,
			c.LastAccounts, c.Source,
		})
	}

	return writeCSV(path, rows)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}

	return "No"
}
