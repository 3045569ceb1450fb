// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/topic-scout/internal/httputil"
	"github.com/pdiddy/topic-scout/pkg/types"
)

// crossrefAPIBase is the Crossref works endpoint. Declared as a var so
// tests can substitute an httptest server.
var crossrefAPIBase = "https://api.crossref.org/works"

// CrossrefProvider queries the Crossref REST API.
type CrossrefProvider struct {
	Client    *http.Client
	UserAgent string

	// Email is sent as the mailto parameter. Crossref routes requests
	// carrying a contact address to its polite pool.
	Email string

	// Log receives per-variation warnings. Nil means discard.
	Log io.Writer
}

// Name returns the provider identifier.
func (p *CrossrefProvider) Name() string { return string(types.SourceCrossref) }

// Search issues one request per query variation, splitting maxResults
// across them, and merges the responses. A failed variation is logged and
// skipped; the call errors only when every variation failed.
func (p *CrossrefProvider) Search(ctx context.Context, query string, maxResults int) ([]types.SearchRecord, error) {
	variations := Variations(query)
	budget := variationBudget(maxResults, len(variations))

	var all []types.SearchRecord
	var lastErr error
	failed := 0
	for _, v := range variations {
		records, err := p.fetch(ctx, v, budget)
		if err != nil {
			failed++
			lastErr = err
			fmt.Fprintf(p.log(), "warning: crossref query %q failed: %v\n", v, err)
			continue
		}
		all = append(all, records...)
	}
	if failed == len(variations) {
		return nil, fmt.Errorf("all %d Crossref query variations failed: %w", failed, lastErr)
	}

	return dedupeByTitle(all), nil
}

func (p *CrossrefProvider) fetch(ctx context.Context, query string, maxResults int) ([]types.SearchRecord, error) {
	params := url.Values{
		"query": {query},
		"rows":  {fmt.Sprintf("%d", maxResults)},
	}
	if p.Email != "" {
		params.Set("mailto", p.Email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, crossrefAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", p.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, p.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("Crossref API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Crossref API returned HTTP %d", resp.StatusCode)
	}

	var cr crossrefResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("parsing Crossref response: %w", err)
	}

	var records []types.SearchRecord
	for _, item := range cr.Message.Items {
		if len(item.Title) == 0 || strings.TrimSpace(item.Title[0]) == "" {
			continue
		}

		r := types.SearchRecord{
			Title:   strings.TrimSpace(item.Title[0]),
			Summary: strings.TrimSpace(item.Abstract),
			URL:     item.URL,
			Source:  types.SourceCrossref,
		}
		if r.Summary == "" {
			r.Summary = types.NoSummary
		}

		var authors []string
		for _, a := range item.Author {
			name := strings.TrimSpace(strings.TrimSpace(a.Given) + " " + strings.TrimSpace(a.Family))
			if name != "" {
				authors = append(authors, name)
			}
		}
		r.Authors = strings.Join(authors, ", ")

		r.Published = formatDateParts(item.Created.DateParts)

		records = append(records, r)
	}
	return records, nil
}

func (p *CrossrefProvider) log() io.Writer {
	if p.Log == nil {
		return io.Discard
	}
	return p.Log
}

// formatDateParts renders Crossref's date-parts array as "YYYY-MM-DD",
// "YYYY" when only the year is known, or "" when absent.
func formatDateParts(parts [][]int) string {
	if len(parts) == 0 || len(parts[0]) == 0 {
		return ""
	}
	p := parts[0]
	if len(p) >= 3 {
		return fmt.Sprintf("%04d-%02d-%02d", p[0], p[1], p[2])
	}
	return fmt.Sprintf("%d", p[0])
}

// Crossref API JSON structures.
type crossrefResponse struct {
	Message crossrefMessage `json:"message"`
}

type crossrefMessage struct {
	Items []crossrefItem `json:"items"`
}

type crossrefItem struct {
	Title    []string        `json:"title"`
	Author   []crossrefName  `json:"author"`
	Abstract string          `json:"abstract"`
	URL      string          `json:"URL"`
	Created  crossrefCreated `json:"created"`
}

type crossrefName struct {
	Given  string `json:"given"`
	Family string `json:"family"`
}

type crossrefCreated struct {
	DateParts [][]int `json:"date-parts"`
}
