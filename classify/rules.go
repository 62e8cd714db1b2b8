package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fleetdata/truck-tyre-scraper/dataset"
)

// Rules holds the keyword tables driving classification. The lists are
// jurisdiction- and domain-specific and need tuning without a code
// change, so they can be overridden from a YAML file.
type Rules struct {
	// Exclusions reject a name outright: off-domain tyre businesses
	// (agricultural, passenger car, two-wheeler, leisure).
	Exclusions []string `yaml:"exclusions"`

	// VehicleTerms and ProductTerms form the inclusion gate: a name
	// must contain at least one of each.
	VehicleTerms []string `yaml:"vehicle_terms"`
	ProductTerms []string `yaml:"product_terms"`

	// Categories are evaluated in order; the first rule with a keyword
	// hit assigns the type. Order is the tie-break: a name matching both
	// wholesale and mobile terms is a wholesaler because that rule is
	// listed first.
	Categories []CategoryRule `yaml:"categories"`

	// Fallback is assigned when the gates pass but no category matches.
	Fallback dataset.BusinessType `yaml:"fallback"`

	// TypeLabelTerms relax the inclusion gate for pre-classified
	// secondary-source records: a hit in the record's own type label
	// counts as domain membership.
	TypeLabelTerms []string `yaml:"type_label_terms"`
}

// CategoryRule pairs a business type with the name keywords that select it.
type CategoryRule struct {
	Type     dataset.BusinessType `yaml:"type"`
	Keywords []string             `yaml:"keywords"`
}

// DefaultRules returns the built-in keyword tables for UK commercial
// vehicle tyre businesses.
func DefaultRules() Rules {
	return Rules{
		Exclusions: []string{
			"agricultural", "tractor", "farm", "earthmover", "forklift",
			"bicycle", "motorcycle", "motorbike", "car tyre", "car & van",
			"car and van", "passenger", "pcr", "scooter", "quad", "atv",
			"golf", "lawn", "mower", "garden",
		},
		VehicleTerms: []string{
			"truck", "lorry", "hgv", "commercial", "fleet", "trailer",
			"artic", "heavy goods",
		},
		ProductTerms: []string{"tyre", "tire", "wheel"},
		Categories: []CategoryRule{
			{
				Type:     dataset.TypeWholesaler,
				Keywords: []string{"wholesale", "distribution", "supply", "distributor"},
			},
			{
				Type:     dataset.TypeRetreader,
				Keywords: []string{"retread", "remould", "recap"},
			},
			{
				Type:     dataset.TypeMobileService,
				Keywords: []string{"mobile", "breakdown", "24 hour", "emergency", "roadside"},
			},
			{
				Type:     dataset.TypeFitter,
				Keywords: []string{"fitting", "fitter", "service"},
			},
		},
		Fallback: dataset.TypeSpecialist,
		TypeLabelTerms: []string{
			"truck", "commercial", "hgv", "fleet", "manufacturer", "wholesaler",
		},
	}
}

// LoadRules reads rule tables from a YAML file and validates them.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("reading rules file: %w", err)
	}

	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("parsing rules file: %w", err)
	}

	if err := rules.Validate(); err != nil {
		return Rules{}, fmt.Errorf("invalid rules in %s: %w", path, err)
	}

	return rules, nil
}

// Validate rejects rule tables that would silently classify nothing or
// assign labels outside the fixed business-type set.
func (r Rules) Validate() error {
	if len(r.VehicleTerms) == 0 {
		return fmt.Errorf("vehicle_terms must not be empty")
	}

	if len(r.ProductTerms) == 0 {
		return fmt.Errorf("product_terms must not be empty")
	}

	if len(r.Categories) == 0 {
		return fmt.Errorf("categories must not be empty")
	}

	for i, cat := range r.Categories {
		if !dataset.KnownType(cat.Type) {
			return fmt.Errorf("categories[%d]: unknown business type %q", i, cat.Type)
		}

		if len(cat.Keywords) == 0 {
			return fmt.Errorf("categories[%d] (%s): keywords must not be empty", i, cat.Type)
		}
	}

	if !dataset.KnownType(r.Fallback) {
		return fmt.Errorf("unknown fallback business type %q", r.Fallback)
	}

	return nil
}
