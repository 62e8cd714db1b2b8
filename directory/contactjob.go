package directory

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/gosom/scrapemate"
	"github.com/mcnijman/go-emailaddress"

	"github.com/fleetdata/truck-tyre-scraper/dataset"
)

var (
	// UKPhoneRegex matches UK numbers in national (0...) or
	// international (+44...) form with optional grouping.
	UKPhoneRegex = regexp.MustCompile(`(?:\+44\s?\(?0?\)?[\s-]?|0)\d{2,4}[\s-]?\d{3,4}[\s-]?\d{3,4}`)

	telLinkRegex = regexp.MustCompile(`tel:[+\d][\d\s()-]{8,}`)

	excludedEmailDomains  = []string{"sentry", "example", "wix"}
	excludedEmailSuffixes = []string{".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp"}
)

// ContactJob fetches a seeded company's website and fills in the contact
// details the seed lacks. A fetch failure leaves the seed untouched.
type ContactJob struct {
	scrapemate.Job

	Company dataset.DirectoryCompany
}

func NewContactJob(company dataset.DirectoryCompany) *ContactJob {
	const (
		defaultPrio       = scrapemate.PriorityHigh
		defaultMaxRetries = 1
	)

	return &ContactJob{
		Job: scrapemate.Job{
			ID:         uuid.New().String(),
			Method:     http.MethodGet,
			URL:        company.Website,
			MaxRetries: defaultMaxRetries,
			Priority:   defaultPrio,
		},
		Company: company,
	}
}

func (j *ContactJob) Process(ctx context.Context, resp *scrapemate.Response) (any, []scrapemate.IJob, error) {
	defer func() {
		resp.Document = nil
		resp.Body = nil
	}()

	company := j.Company

	if resp.Error != nil {
		return &company, nil, nil
	}

	if company.Phone == "" {
		company.Phone = extractPhone(resp.Body)
	}

	if company.Email == "" {
		if doc, ok := resp.Document.(*goquery.Document); ok {
			company.Email = firstMailtoEmail(doc)
		}

		if company.Email == "" {
			company.Email = firstBodyEmail(resp.Body)
		}
	}

	return &company, nil, nil
}

// ProcessOnFetchError keeps the seed record alive when the site is down.
func (j *ContactJob) ProcessOnFetchError() bool {
	return true
}

func extractPhone(body []byte) string {
	// tel: links are the most reliable phone signal on trade sites.
	if m := telLinkRegex.Find(body); m != nil {
		candidate := strings.TrimPrefix(string(m), "tel:")
		if phone := UKPhoneRegex.FindString(candidate); phone != "" {
			return normalizePhone(phone)
		}
	}

	if phone := UKPhoneRegex.Find(body); phone != nil {
		return normalizePhone(string(phone))
	}

	return ""
}

func normalizePhone(phone string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(phone, "-", " ")), " ")
}

func firstMailtoEmail(doc *goquery.Document) string {
	var found string

	doc.Find("a[href^='mailto:']").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		mailto, ok := s.Attr("href")
		if !ok {
			return true
		}

		email, err := validEmail(strings.TrimPrefix(mailto, "mailto:"))
		if err != nil {
			return true
		}

		found = email

		return false
	})

	return found
}

func firstBodyEmail(body []byte) string {
	for _, addr := range emailaddress.Find(body, false) {
		email, err := validEmail(addr.String())
		if err != nil {
			continue
		}

		return email
	}

	return ""
}

func validEmail(s string) (string, error) {
	email, err := emailaddress.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}

	lower := strings.ToLower(email.String())

	for _, domain := range excludedEmailDomains {
		if strings.Contains(lower, domain) {
			return "", errEmailExcluded
		}
	}

	for _, suffix := range excludedEmailSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return "", errEmailExcluded
		}
	}

	return email.String(), nil
}
