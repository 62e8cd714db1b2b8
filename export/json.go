package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fleetdata/truck-tyre-scraper/dataset"
)

// WriteJSON serializes a record list to an indented JSON file. The file
// is only written once the stage producing it has fully completed, so a
// partially run pipeline never leaves a truncated dataset behind.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// ReadHarvestedCompanies loads a Companies House harvest output file.
func ReadHarvestedCompanies(path string) ([]dataset.HarvestedCompany, error) {
	var out []dataset.HarvestedCompany
	if err := readJSON(path, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// ReadDirectoryCompanies loads an industry dataset file.
func ReadDirectoryCompanies(path string) ([]dataset.DirectoryCompany, error) {
	var out []dataset.DirectoryCompany
	if err := readJSON(path, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// ReadCompanies loads a merged master dataset file.
func ReadCompanies(path string) ([]dataset.Company, error) {
	var out []dataset.Company
	if err := readJSON(path, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	return nil
}
