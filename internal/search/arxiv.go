// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/topic-scout/pkg/types"
)

// arxivAPIBase is the arXiv search endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// ArxivProvider queries the arXiv Atom feed.
type ArxivProvider struct {
	Client    *http.Client
	UserAgent string

	// Log receives per-variation warnings. Nil means discard.
	Log io.Writer
}

// Name returns the provider identifier.
func (p *ArxivProvider) Name() string { return string(types.SourceArxiv) }

// Search issues one request per query variation, splitting maxResults
// across them, and merges the responses. A failed variation is logged and
// skipped; the call errors only when every variation failed.
func (p *ArxivProvider) Search(ctx context.Context, query string, maxResults int) ([]types.SearchRecord, error) {
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
			fmt.Fprintf(p.log(), "warning: arxiv query %q failed: %v\n", v, err)
			continue
		}
		all = append(all, records...)
	}
	if failed == len(variations) {
		return nil, fmt.Errorf("all %d arXiv query variations failed: %w", failed, lastErr)
	}

	return dedupeByTitle(all), nil
}

func (p *ArxivProvider) fetch(ctx context.Context, query string, maxResults int) ([]types.SearchRecord, error) {
	params := url.Values{
		"search_query": {"all:" + query},
		"start":        {"0"},
		"max_results":  {fmt.Sprintf("%d", maxResults)},
		"sortBy":       {"relevance"},
		"sortOrder":    {"descending"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, arxivAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", p.UserAgent)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	var records []types.SearchRecord
	for _, entry := range feed.Entries {
		title := strings.Join(strings.Fields(entry.Title), " ")
		if title == "" {
			continue
		}

		r := types.SearchRecord{
			Title:   title,
			Summary: strings.TrimSpace(entry.Summary),
			Source:  types.SourceArxiv,
			URL:     entry.PDFLink(),
		}
		if r.Summary == "" {
			r.Summary = types.NoSummary
		}

		var authors []string
		for _, a := range entry.Authors {
			if name := strings.TrimSpace(a.Name); name != "" {
				authors = append(authors, name)
			}
		}
		r.Authors = strings.Join(authors, ", ")

		if t, parseErr := time.Parse(time.RFC3339, entry.Published); parseErr == nil {
			r.Published = t.Format("2006-01-02")
		} else {
			r.Published = entry.Published
		}

		records = append(records, r)
	}
	return records, nil
}

func (p *ArxivProvider) log() io.Writer {
	if p.Log == nil {
		return io.Discard
	}
	return p.Log
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID        string        `xml:"id"`
	Title     string        `xml:"title"`
	Summary   string        `xml:"summary"`
	Published string        `xml:"published"`
	Authors   []arxivAuthor `xml:"author"`
	Links     []arxivLink   `xml:"link"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

type arxivLink struct {
	Href  string `xml:"href,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

// PDFLink returns the entry's PDF link when present, falling back to the
// abstract page URL.
func (e arxivEntry) PDFLink() string {
	for _, l := range e.Links {
		if l.Title == "pdf" || l.Type == "application/pdf" {
			return l.Href
		}
	}
	return e.ID
}
