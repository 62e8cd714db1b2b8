package companieshouse

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	c := NewClient("test-key")
	c.baseURL = serverURL
	c.retryPause = time.Millisecond

	return c
}

func TestSearchCompanies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok, "request must carry basic auth")
		assert.Equal(t, "test-key", user)
		assert.Empty(t, pass)

		assert.Equal(t, "/search/companies", r.URL.Path)
		assert.Equal(t, "truck tyre", r.URL.Query().Get("q"))
		assert.Equal(t, "100", r.URL.Query().Get("items_per_page"))
		assert.Equal(t, "200", r.URL.Query().Get("start_index"))

		resp := SearchResponse{
			TotalResults: 342,
			Items: []SearchItem{
				{
					CompanyNumber:  "01234567",
					Title:          "ABC TRUCK TYRES LTD",
					CompanyStatus:  "active",
					CompanyType:    "ltd",
					DateOfCreation: "1998-04-02",
					AddressSnippet: "1 Depot Road, Leeds, LS1 1AA",
				},
			},
		}

		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	resp, err := c.SearchCompanies(context.Background(), "truck tyre", 200)
	require.NoError(t, err)
	assert.Equal(t, 342, resp.TotalResults)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "ABC TRUCK TYRES LTD", resp.Items[0].Title)
}

func TestSearchCompaniesRetriesOnRateLimit(t *testing.T) {
	var calls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++

		if calls <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)

			return
		}

		_ = json.NewEncoder(w).Encode(SearchResponse{TotalResults: 1})
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	resp, err := c.SearchCompanies(context.Background(), "hgv tyre", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, calls, "the same request is retried after each 429")
	assert.Equal(t, 1, resp.TotalResults)
}

func TestSearchCompaniesGivesUpAfterMaxRetries(t *testing.T) {
	var calls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	_, err := c.SearchCompanies(context.Background(), "hgv tyre", 0)
	require.Error(t, err)
	assert.Equal(t, maxRateLimitRetries+1, calls)
}

func TestSearchCompaniesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	_, err := c.SearchCompanies(context.Background(), "truck tyre", 0)
	require.Error(t, err)
}

func TestCompanyProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/company/01234567", r.URL.Path)

		profile := CompanyProfile{
			CompanyNumber: "01234567",
			CompanyName:   "ABC TRUCK TYRES LTD",
			RegisteredOfficeAddress: &Address{
				Premises:     "Unit 4",
				AddressLine1: "Depot Road",
				Locality:     "Leeds",
				PostalCode:   "LS1 1AA",
				Country:      "England",
			},
			SICCodes: []string{"45310"},
			Accounts: &Accounts{LastAccounts: &LastAccounts{MadeUpTo: "2024-12-31"}},
		}

		_ = json.NewEncoder(w).Encode(profile)
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	profile, err := c.CompanyProfile(context.Background(), "01234567")
	require.NoError(t, err)
	assert.Equal(t, []string{"45310"}, profile.SICCodes)
	assert.Equal(t, "2024-12-31", profile.Accounts.LastAccounts.MadeUpTo)
}

func TestFormatAddress(t *testing.T) {
	tests := []struct {
		addr     *Address
		expected string
	}{
		{
			&Address{
				Premises:     "Unit 4",
				AddressLine1: "Depot Road",
				Locality:     "Leeds",
				PostalCode:   "LS1 1AA",
				Country:      "England",
			},
			"Unit 4, Depot Road, Leeds, LS1 1AA, England",
		},
		{
			&Address{AddressLine1: "1 High Street", Locality: "Luton"},
			"1 High Street, Luton",
		},
		{&Address{}, ""},
		{nil, ""},
	}

	for _, test := range tests {
		if got := FormatAddress(test.addr); got != test.expected {
			t.Errorf("FormatAddress() = %q, expected %q", got, test.expected)
		}
	}
}
