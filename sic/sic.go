// Package sic maps UK Standard Industrial Classification codes to
// human-readable descriptions for the codes that tyre trade filings
// actually carry.
package sic

import "strings"

var descriptions = map[string]string{
	"01110": "Growing of cereals (except rice), leguminous crops and oil seeds",
	"01610": "Support activities for crop production",
	"45110": "Sale of cars and light motor vehicles",
	"45190": "Sale of other motor vehicles",
	"45200": "Maintenance and repair of motor vehicles",
	"45310": "Wholesale trade of motor vehicle parts and accessories",
	"45320": "Retail trade of motor vehicle parts and accessories",
	"45400": "Sale, maintenance and repair of motorcycles and related parts and accessories",
	"46690": "Wholesale of other machinery and equipment",
	"46900": "Non-specialised wholesale trade",
	"47300": "Retail sale of automotive fuel in specialised stores",
	"47990": "Other retail sale not in stores, stalls or markets",
	"49410": "Freight transport by road",
	"52100": "Warehousing and storage",
	"52210": "Service activities incidental to land transportation",
	"52290": "Other transportation support activities",
	"66220": "Activities of insurance agents and brokers",
	"70100": "Activities of head offices",
	"70210": "Public relations and communication activities",
	"70229": "Management consultancy activities other than financial management",
	"71200": "Technical testing and analysis",
	"74909": "Other professional, scientific and technical activities n.e.c.",
	"77110": "Renting and leasing of cars and light motor vehicles",
	"77120": "Renting and leasing of trucks",
	"77390": "Renting and leasing of other machinery, equipment and tangible goods n.e.c.",
	"81210": "General cleaning of buildings",
	"82990": "Other business support service activities n.e.c.",
	"95120": "Repair of communication equipment",
	"96090": "Other personal service activities n.e.c.",
}

var prefixDescriptions = map[string]string{
	"01": "Agriculture, forestry and fishing",
	"45": "Wholesale and retail trade; repair of motor vehicles",
	"46": "Wholesale trade, except of motor vehicles",
	"47": "Retail trade, except of motor vehicles",
	"49": "Land transport and transport via pipelines",
	"52": "Warehousing and support activities for transportation",
	"66": "Activities auxiliary to financial services",
	"70": "Activities of head offices; management consultancy",
	"71": "Architectural and engineering activities",
	"74": "Other professional, scientific and technical activities",
	"77": "Rental and leasing activities",
	"81": "Services to buildings and landscape activities",
	"82": "Office administrative and business support activities",
	"95": "Repair of computers and personal and household goods",
	"96": "Other personal service activities",
}

// Describe returns the description for a 5-digit SIC code, falling back
// to the 2-digit division description when the exact code is unknown.
func Describe(code string) string {
	if desc, ok := descriptions[code]; ok {
		return desc
	}

	if len(code) >= 2 {
		if desc, ok := prefixDescriptions[code[:2]]; ok {
			return desc
		}
	}

	return "SIC code " + code
}

// DescribeAll renders "code: description" lines for a code list, joined
// with "; " for single-cell display.
func DescribeAll(codes []string) string {
	if len(codes) == 0 {
		return ""
	}

	parts := make([]string, 0, len(codes))

	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}

		parts = append(parts, code+": "+Describe(code))
	}

	return strings.Join(parts, "; ")
}
