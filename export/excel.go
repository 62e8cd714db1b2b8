package export

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/fleetdata/truck-tyre-scraper/dataset"
)

const (
	masterSheet     = "All Truck Tyre Companies"
	wholesalerSheet = "B2B Wholesalers"
	registrySheet   = "Companies House Verified"
	summarySheet    = "Summary"
)

// WriteWorkbook renders the merged dataset as a four-sheet workbook:
// the full canonical list, the wholesaler subset, the registry-verified
// subset with its extra Companies House columns, and summary counts.
func WriteWorkbook(path string, master []dataset.Company, harvested []dataset.HarvestedCompany) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", masterSheet)

	if err := writeMasterSheet(f, master); err != nil {
		return err
	}

	wholesalers := wholesalerSubset(master)

	if err := writeWholesalerSheet(f, wholesalers); err != nil {
		return err
	}

	if err := writeRegistrySheet(f, harvested); err != nil {
		return err
	}

	if err := writeSummarySheet(f, master, wholesalers, harvested); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}

	return nil
}

func wholesalerSubset(master []dataset.Company) []dataset.Company {
	var out []dataset.Company

	for _, c := range master {
		if c.IsB2BWholesaler {
			out = append(out, c)
		}
	}

	return out
}

func writeMasterSheet(f *excelize.File, master []dataset.Company) error {
	header := []any{
		"Company Name", "Website", "Phone", "Address", "Business Type",
		"B2B/Wholesaler", "Service Points", "Region", "Companies House #",
		"Status", "Date Created", "Data Source",
	}

	rows := make([][]any, 0, len(master)+1)
	rows = append(rows, header)

	for _, c := range master {
		rows = append(rows, []any{
			c.Name, c.Website, c.Phone, c.Address, string(c.BusinessType),
			yesNo(c.IsB2BWholesaler), c.ServicePoints, c.Region,
			c.CompanyNumber, c.Status, c.DateCreated, c.Source,
		})
	}

	widths := []float64{45, 50, 18, 60, 25, 15, 20, 15, 15, 10, 12, 20}

	return fillSheet(f, masterSheet, rows, widths)
}

func writeWholesalerSheet(f *excelize.File, wholesalers []dataset.Company) error {
	header := []any{
		"Company Name", "Website", "Phone", "Address", "Business Type",
		"Service Points", "Region", "Companies House #", "Data Source",
	}

	rows := make([][]any, 0, len(wholesalers)+1)
	rows = append(rows, header)

	for _, c := range wholesalers {
		rows = append(rows, []any{
			c.Name, c.Website, c.Phone, c.Address, string(c.BusinessType),
			c.ServicePoints, c.Region, c.CompanyNumber, c.Source,
		})
	}

	widths := []float64{45, 50, 18, 60, 25, 20, 15, 15, 20}

	return fillSheet(f, wholesalerSheet, rows, widths)
}

func writeRegistrySheet(f *excelize.File, harvested []dataset.HarvestedCompany) error {
	header := []any{
		"Company Name", "Company Number", "Status", "Business Type",
		"Company Type", "Date Created", "Registered Address", "SIC Codes",
		"SIC Descriptions",
	}

	rows := make([][]any, 0, len(harvested)+1)
	rows = append(rows, header)

	for _, c := range harvested {
		rows = append(rows, []any{
			c.Name, c.CompanyNumber, c.Status, string(c.BusinessType),
			c.CompanyType, c.DateCreated, c.Address, c.SICCodes,
			c.SICDescriptions,
		})
	}

	widths := []float64{50, 15, 10, 25, 15, 12, 60, 15, 60}

	return fillSheet(f, registrySheet, rows, widths)
}

func writeSummarySheet(f *excelize.File, master, wholesalers []dataset.Company, harvested []dataset.HarvestedCompany) error {
	withWebsites := 0
	withAddresses := 0

	for _, c := range master {
		if c.Website != "" {
			withWebsites++
		}

		if c.Address != "" {
			withAddresses++
		}
	}

	rows := [][]any{
		{"Category", "Count"},
		{"Total Companies", len(master)},
		{"With Websites", withWebsites},
		{"With Addresses", withAddresses},
		{"B2B/Wholesalers", len(wholesalers)},
		{"Companies House Verified", len(harvested)},
		{"", ""},
		{"--- BY BUSINESS TYPE ---", ""},
	}

	for _, tc := range TypeCounts(master) {
		rows = append(rows, []any{string(tc.Type), tc.Count})
	}

	widths := []float64{35, 10}

	return fillSheet(f, summarySheet, rows, widths)
}

func fillSheet(f *excelize.File, name string, rows [][]any, widths []float64) error {
	if name != masterSheet {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("writing sheet %s row %d: %w", name, i+1, err)
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}

		if err := f.SetColWidth(name, col, col, w); err != nil {
			return fmt.Errorf("setting sheet %s column width: %w", name, err)
		}
	}

	return nil
}

// TypeCount is the number of companies carrying one business type label.
type TypeCount struct {
	Type  dataset.BusinessType
	Count int
}

// TypeCounts tallies companies per business type, ordered by type
// priority; labels outside the fixed set sort last, alphabetically.
func TypeCounts(companies []dataset.Company) []TypeCount {
	counts := make(map[dataset.BusinessType]int)

	for _, c := range companies {
		counts[c.BusinessType]++
	}

	out := make([]TypeCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, TypeCount{Type: t, Count: n})
	}

	sort.Slice(out, func(i, j int) bool {
		pi, pj := dataset.Priority(out[i].Type), dataset.Priority(out[j].Type)
		if pi != pj {
			return pi < pj
		}

		return out[i].Type < out[j].Type
	})

	return out
}
