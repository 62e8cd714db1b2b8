// Package companieshouse is a client for the Companies House REST API.
// It covers the two endpoints the harvest needs: company search and the
// company profile lookup used for enrichment.
package companieshouse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.company-information.service.gov.uk"

	searchEndpoint  = "/search/companies"
	companyEndpoint = "/company"

	// PageSize is the number of items requested per search page, the
	// maximum the API allows.
	PageSize = 100

	// rateLimitPause is how long to back off after a 429. Companies
	// House allows 600 requests per 5 minute window.
	rateLimitPause = 60 * time.Second

	maxRateLimitRetries = 3
)

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client

	// pause inserted after a 429 response. Overridable for tests.
	retryPause time.Duration
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		retryPause: rateLimitPause,
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				DisableKeepAlives:   false,
				MaxIdleConnsPerHost: 2,
			},
		},
	}
}

// SearchCompanies fetches one page of search results for the query,
// starting at startIndex. A 429 triggers a fixed pause and an identical
// retry, up to a bounded number of attempts; any other failure is
// returned to the caller, which treats it as zero results for the query.
func (c *Client) SearchCompanies(ctx context.Context, query string, startIndex int) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("items_per_page", strconv.Itoa(PageSize))
	params.Set("start_index", strconv.Itoa(startIndex))

	searchURL := fmt.Sprintf("%s%s?%s", c.baseURL, searchEndpoint, params.Encode())

	body, err := c.get(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	var resp SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	return &resp, nil
}

// CompanyProfile fetches the detail record for a company number.
func (c *Client) CompanyProfile(ctx context.Context, companyNumber string) (*CompanyProfile, error) {
	profileURL := fmt.Sprintf("%s%s/%s", c.baseURL, companyEndpoint, url.PathEscape(companyNumber))

	body, err := c.get(ctx, profileURL)
	if err != nil {
		return nil, err
	}

	var profile CompanyProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("decoding company profile: %w", err)
	}

	return &profile, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}

		// The API key is the basic auth username with a blank password.
		req.SetBasicAuth(c.apiKey, "")
		req.Header.Set("Accept", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("executing request: %w", err)
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests {
			if attempt >= maxRateLimitRetries {
				return nil, fmt.Errorf("rate limited after %d retries: %s", attempt, rawURL)
			}

			log.Printf("Companies House rate limit hit, waiting %s before retry %d/%d",
				c.retryPause, attempt+1, maxRateLimitRetries)

			select {
			case <-time.After(c.retryPause):
			case <-ctx.Done():
				return nil, ctx.Err()
			}

			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			log.Printf("Companies House API error: status %d, body: %s, url: %s",
				resp.StatusCode, string(body), rawURL)

			return nil, fmt.Errorf("api error: status %d", resp.StatusCode)
		}

		if readErr != nil {
			return nil, fmt.Errorf("reading response: %w", readErr)
		}

		return body, nil
	}
}

// FormatAddress joins the populated parts of a registered office address
// with ", ", in registry field order.
func FormatAddress(addr *Address) string {
	if addr == nil {
		return ""
	}

	parts := []string{
		addr.Premises,
		addr.AddressLine1,
		addr.AddressLine2,
		addr.Locality,
		addr.Region,
		addr.PostalCode,
		addr.Country,
	}

	nonEmpty := make([]string, 0, len(parts))

	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}

	return strings.Join(nonEmpty, ", ")
}
