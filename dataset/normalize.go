package dataset

import "strings"

// NormalizeName derives the dedupe key for a company name: lowercase with
// every non-alphanumeric character stripped. "ABC Truck Tyres Ltd." and
// "abc truck tyres ltd" normalize to the same key.
func NormalizeName(name string) string {
	lower := strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(lower))

	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}
