package companieshouse

// SearchResponse is one page of /search/companies results.
type SearchResponse struct {
	Items        []SearchItem `json:"items"`
	TotalResults int          `json:"total_results"`
}

// SearchItem is a single company as returned by the search endpoint.
type SearchItem struct {
	CompanyNumber  string   `json:"company_number"`
	Title          string   `json:"title"`
	CompanyStatus  string   `json:"company_status"`
	CompanyType    string   `json:"company_type"`
	DateOfCreation string   `json:"date_of_creation"`
	AddressSnippet string   `json:"address_snippet"`
	SICCodes       []string `json:"sic_codes"`
}

// CompanyProfile is the detail record from /company/{number}.
type CompanyProfile struct {
	CompanyNumber           string    `json:"company_number"`
	CompanyName             string    `json:"company_name"`
	RegisteredOfficeAddress *Address  `json:"registered_office_address"`
	SICCodes                []string  `json:"sic_codes"`
	Accounts                *Accounts `json:"accounts"`
}

type Address struct {
	Premises     string `json:"premises"`
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2"`
	Locality     string `json:"locality"`
	Region       string `json:"region"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

type Accounts struct {
	LastAccounts *LastAccounts `json:"last_accounts"`
}

type LastAccounts struct {
	MadeUpTo string `json:"made_up_to"`
}
