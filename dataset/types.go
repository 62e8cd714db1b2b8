package dataset

// HarvestedCompany is a classified record produced by the Companies House
// harvest. It only ever contains companies that passed the strict
// classification gates.
type HarvestedCompany struct {
	CompanyNumber   string       `json:"companyNumber"`
	Name            string       `json:"name"`
	Status          string       `json:"status"`
	CompanyType     string       `json:"type"`
	DateCreated     string       `json:"dateCreated"`
	Address         string       `json:"address"`
	BusinessType    BusinessType `json:"businessType"`
	SICCodes        string       `json:"sicCodes"`
	SICDescriptions string       `json:"sicDescriptions,omitempty"`
	LastAccounts    string       `json:"lastAccounts,omitempty"`
	Source          string       `json:"source"`
}

// DirectoryCompany is a record from the independently curated industry
// dataset. The business type arrives as a free-text label assigned by the
// curator, not one of the fixed types.
type DirectoryCompany struct {
	Name            string `json:"name"`
	Website         string `json:"website"`
	Phone           string `json:"phone"`
	Email           string `json:"email,omitempty"`
	Address         string `json:"address"`
	BusinessType    string `json:"businessType"`
	IsB2BWholesaler string `json:"isB2BWholesaler"`
	ServicePoints   string `json:"servicePoints"`
	Region          string `json:"region"`
	Status          string `json:"status"`
	Source          string `json:"source"`
}

// Company is the canonical merged record: one entry per real-world
// business across both sources.
type Company struct {
	Name            string       `json:"name"`
	CompanyNumber   string       `json:"companyNumber"`
	Address         string       `json:"address"`
	Phone           string       `json:"phone"`
	Website         string       `json:"website"`
	Email           string       `json:"email,omitempty"`
	BusinessType    BusinessType `json:"businessType"`
	IsB2BWholesaler bool         `json:"isB2BWholesaler"`
	ServicePoints   string       `json:"servicePoints"`
	Region          string       `json:"region"`
	Status          string       `json:"status"`
	DateCreated     string       `json:"dateCreated"`
	SICCodes        string       `json:"sicCodes"`
	Source          string       `json:"source"`
}

const (
	SourceCompaniesHouse   = "Companies House API"
	SourceIndustryDatabase = "Industry Database"

	defaultRegion = "UK"
	defaultStatus = "Active"
)
