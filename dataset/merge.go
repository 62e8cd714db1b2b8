package dataset

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Merge combines the Companies House harvest with the industry dataset
// into one canonical list. Records are keyed by normalized name and the
// first occurrence wins: the primary source is ingested first, so a
// company present in both keeps its registry-derived fields and nothing
// is backfilled from the secondary record. Records without a name are
// dropped. The result is sorted by business-type priority, then by name.
func Merge(primary []HarvestedCompany, secondary []DirectoryCompany) []Company {
	seen := make(map[string]struct{}, len(primary)+len(secondary))
	out := make([]Company, 0, len(primary)+len(secondary))

	for _, c := range primary {
		key := NormalizeName(c.Name)
		if key == "" {
			continue
		}

		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		out = append(out, fromHarvested(c))
	}

	for _, c := range secondary {
		key := NormalizeName(c.Name)
		if key == "" {
			continue
		}

		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		out = append(out, fromDirectory(c))
	}

	SortCompanies(out)

	return out
}

func fromHarvested(c HarvestedCompany) Company {
	return Company{
		Name:            c.Name,
		CompanyNumber:   c.CompanyNumber,
		Address:         c.Address,
		BusinessType:    defaultType(c.BusinessType),
		IsB2BWholesaler: strings.Contains(string(c.BusinessType), "Wholesaler"),
		Region:          defaultRegion,
		Status:          defaultString(c.Status, defaultStatus),
		DateCreated:     c.DateCreated,
		SICCodes:        c.SICCodes,
		Source:          defaultString(c.Source, SourceCompaniesHouse),
	}
}

func fromDirectory(c DirectoryCompany) Company {
	wholesaler := strings.EqualFold(c.IsB2BWholesaler, "Yes") ||
		strings.Contains(c.BusinessType, "Wholesaler") ||
		strings.Contains(c.BusinessType, "B2B")

	return Company{
		Name:            c.Name,
		Address:         c.Address,
		Phone:           c.Phone,
		Website:         c.Website,
		Email:           c.Email,
		BusinessType:    defaultType(BusinessType(c.BusinessType)),
		IsB2BWholesaler: wholesaler,
		ServicePoints:   c.ServicePoints,
		Region:          defaultString(c.Region, defaultRegion),
		Status:          defaultString(c.Status, defaultStatus),
		Source:          defaultString(c.Source, SourceIndustryDatabase),
	}
}

// SortCompanies orders companies by business-type priority (wholesalers
// first), breaking ties with a case-insensitive British English name
// collation so the output is stable and human-scannable.
func SortCompanies(companies []Company) {
	coll := collate.New(language.BritishEnglish, collate.IgnoreCase)

	sort.SliceStable(companies, func(i, j int) bool {
		pi, pj := Priority(companies[i].BusinessType), Priority(companies[j].BusinessType)
		if pi != pj {
			return pi < pj
		}

		return coll.CompareString(companies[i].Name, companies[j].Name) < 0
	})
}

// SortHarvested orders harvest output the same way as the merged list.
func SortHarvested(companies []HarvestedCompany) {
	coll := collate.New(language.BritishEnglish, collate.IgnoreCase)

	sort.SliceStable(companies, func(i, j int) bool {
		pi, pj := Priority(companies[i].BusinessType), Priority(companies[j].BusinessType)
		if pi != pj {
			return pi < pj
		}

		return coll.CompareString(companies[i].Name, companies[j].Name) < 0
	})
}

func defaultType(t BusinessType) BusinessType {
	if t == "" {
		return TypeSpecialist
	}

	return t
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}
