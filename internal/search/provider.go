// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search adapts external academic APIs and the internal dataset
// to a common provider contract and fans a topic query out to all of them.
package search

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/topic-scout/pkg/types"
)

// Provider searches a single source. Each adapter (arXiv, Crossref, the
// internal dataset) implements this interface per the Strategy pattern.
// Adapters recover from per-variation transport failures internally and
// return an error only when every variation failed.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string, maxResults int) ([]types.SearchRecord, error)
}

// FetchAll queries all providers concurrently and returns one record set
// per provider, in the order the providers were passed. That fixed order,
// not response arrival order, decides dedup precedence downstream, so
// results stay deterministic under the parallel fan-out. A failed provider
// yields an empty set and a warning on w; FetchAll itself never fails.
func FetchAll(ctx context.Context, providers []Provider, query string, maxResults int, w io.Writer) [][]types.SearchRecord {
	sets := make([][]types.SearchRecord, len(providers))

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range providers {
		i, p := i, p
		g.Go(func() error {
			records, err := p.Search(ctx, query, maxResults)
			if err != nil {
				mu.Lock()
				fmt.Fprintf(w, "warning: provider %s failed: %v\n", p.Name(), err)
				mu.Unlock()
				return nil
			}
			sets[i] = records
			return nil
		})
	}
	g.Wait()

	return sets
}

// variationBudget splits a result budget evenly across query variations,
// rounding up so every variation gets at least one slot.
func variationBudget(maxResults, variations int) int {
	if variations <= 0 {
		return maxResults
	}
	budget := (maxResults + variations - 1) / variations
	if budget < 1 {
		budget = 1
	}
	return budget
}

// dedupeByTitle removes records whose lowercased title was already seen,
// keeping the first occurrence. Records without a title are dropped.
func dedupeByTitle(records []types.SearchRecord) []types.SearchRecord {
	seen := make(map[string]bool, len(records))
	var out []types.SearchRecord
	for _, r := range records {
		key := strings.ToLower(strings.TrimSpace(r.Title))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}
