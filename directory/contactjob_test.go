package directory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gosom/scrapemate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdata/truck-tyre-scraper/dataset"
)

const contactPage = `<html><body>
<a href="tel:0800 002 9843">Call us</a>
<a href="mailto:bookings@hgvtyres.example.co.uk">Email us</a>
<a href="mailto:logo.png">broken</a>
<p>Head office: 0191 482 0011</p>
</body></html>`

func TestContactJobProcess(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contactPage))
	require.NoError(t, err)

	job := NewContactJob(dataset.DirectoryCompany{
		Name:         "HGV Tyres",
		Website:      "https://www.hgvtyres.example.co.uk/",
		BusinessType: "Mobile Truck Tyre Service",
	})

	resp := &scrapemate.Response{
		Body:     []byte(contactPage),
		Document: doc,
	}

	result, next, err := job.Process(context.Background(), resp)
	require.NoError(t, err)
	assert.Empty(t, next)

	company, ok := result.(*dataset.DirectoryCompany)
	require.True(t, ok)
	assert.Equal(t, "0800 002 9843", company.Phone)
	assert.Equal(t, "bookings@hgvtyres.example.co.uk", company.Email)
}

func TestContactJobKeepsSeededPhone(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contactPage))
	require.NoError(t, err)

	job := NewContactJob(dataset.DirectoryCompany{
		Name:  "Tructyre ATS",
		Phone: "0191 482 0011",
	})

	resp := &scrapemate.Response{Body: []byte(contactPage), Document: doc}

	result, _, err := job.Process(context.Background(), resp)
	require.NoError(t, err)

	company := result.(*dataset.DirectoryCompany)
	assert.Equal(t, "0191 482 0011", company.Phone)
}

func TestContactJobFetchErrorLeavesSeedUntouched(t *testing.T) {
	seed := dataset.DirectoryCompany{
		Name:         "Emergency Tyre Services",
		Website:      "https://down.example.co.uk/",
		BusinessType: "Emergency Service",
	}

	job := NewContactJob(seed)

	resp := &scrapemate.Response{Error: errors.New("connection refused")}

	result, _, err := job.Process(context.Background(), resp)
	require.NoError(t, err)

	company := result.(*dataset.DirectoryCompany)
	assert.Equal(t, seed, *company)

	assert.True(t, job.ProcessOnFetchError())
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		body     string
		expected string
	}{
		{`<a href="tel:0330 043 3988">call</a>`, "0330 043 3988"},
		{`ring 0800-138-3455 now`, "0800 138 3455"},
		{`+44 191 482 0011`, "+44 191 482 0011"},
		{`no numbers here`, ""},
	}

	for _, test := range tests {
		if got := extractPhone([]byte(test.body)); got != test.expected {
			t.Errorf("extractPhone(%q) = %q, expected %q", test.body, got, test.expected)
		}
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"sales@kirkbytyres.co.uk", true},
		{"header@2x.png", false},
		{"errors@sentry.example.io", false},
		{"not-an-email", false},
	}

	for _, test := range tests {
		_, err := validEmail(test.input)
		if (err == nil) != test.ok {
			t.Errorf("validEmail(%q) error = %v, expected ok=%v", test.input, err, test.ok)
		}
	}
}

func TestSeedsAreWellFormed(t *testing.T) {
	seen := make(map[string]struct{})

	for _, seed := range Seeds() {
		require.NotEmpty(t, seed.Name)
		require.NotEmpty(t, seed.BusinessType, "seed %s needs a type label", seed.Name)

		key := dataset.NormalizeName(seed.Name)

		_, dup := seen[key]
		require.False(t, dup, "duplicate seed %s", seed.Name)

		seen[key] = struct{}{}
	}
}
