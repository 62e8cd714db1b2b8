// Package classify decides whether a company belongs in the commercial
// vehicle tyre domain and which business type it is. Classification is
// keyword-driven and works on display names; SIC codes are accepted for
// future tightening but names are the deciding signal, since UK filings
// frequently carry generic or missing codes.
package classify

import (
	"strings"

	"github.com/fleetdata/truck-tyre-scraper/dataset"
)

type Classifier struct {
	rules Rules
}

func New(rules Rules) *Classifier {
	return &Classifier{rules: rules}
}

// Classify applies the strict two-stage gate and returns the assigned
// business type. The second return is false when the name is off-domain:
// an exclusion term is present, or either inclusion term set has no hit.
// Exclusions always win, even over a perfect inclusion match.
func (c *Classifier) Classify(name string, sicCodes []string) (dataset.BusinessType, bool) {
	nameLower := strings.ToLower(name)

	if containsAny(nameLower, c.rules.Exclusions) {
		return "", false
	}

	if !containsAny(nameLower, c.rules.VehicleTerms) || !containsAny(nameLower, c.rules.ProductTerms) {
		return "", false
	}

	for _, cat := range c.rules.Categories {
		if containsAny(nameLower, cat.Keywords) {
			return cat.Type, true
		}
	}

	return c.rules.Fallback, true
}

// MatchesDomain is the loose membership test for records that already
// carry a curated type label: a vehicle term in the name OR a domain
// term in the label is enough. Exclusion terms in the name still reject.
func (c *Classifier) MatchesDomain(name, typeLabel string) bool {
	nameLower := strings.ToLower(name)

	if containsAny(nameLower, c.rules.Exclusions) {
		return false
	}

	if containsAny(nameLower, c.rules.VehicleTerms) {
		return true
	}

	return containsAny(strings.ToLower(typeLabel), c.rules.TypeLabelTerms)
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}

	return false
}
