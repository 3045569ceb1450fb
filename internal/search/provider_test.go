// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/topic-scout/pkg/types"
)

// --- mock provider ---

type mockProvider struct {
	name    string
	results []types.SearchRecord
	err     error
	delay   time.Duration
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) Search(_ context.Context, _ string, _ int) ([]types.SearchRecord, error) {
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	return m.results, m.err
}

func TestFetchAllPreservesProviderOrder(t *testing.T) {
	// The slow provider finishes last but was passed first; its set must
	// still come first so dedup precedence is independent of arrival
	// order.
	slow := &mockProvider{
		name:    "slow",
		delay:   50 * time.Millisecond,
		results: []types.SearchRecord{{Title: "From The Slow Provider", Source: types.SourceArxiv}},
	}
	fast := &mockProvider{
		name:    "fast",
		results: []types.SearchRecord{{Title: "From The Fast Provider", Source: types.SourceCrossref}},
	}

	sets := FetchAll(context.Background(), []Provider{slow, fast}, "query", 5, new(bytes.Buffer))
	if len(sets) != 2 {
		t.Fatalf("len(sets) = %d, want 2", len(sets))
	}
	if len(sets[0]) != 1 || sets[0][0].Source != types.SourceArxiv {
		t.Errorf("sets[0] = %+v, want slow provider's records", sets[0])
	}
	if len(sets[1]) != 1 || sets[1][0].Source != types.SourceCrossref {
		t.Errorf("sets[1] = %+v, want fast provider's records", sets[1])
	}
}

func TestFetchAllDegradesOnProviderFailure(t *testing.T) {
	var warnings bytes.Buffer
	broken := &mockProvider{name: "broken", err: errors.New("connection refused")}
	ok := &mockProvider{
		name:    "ok",
		results: []types.SearchRecord{{Title: "Surviving Provider Record", Source: types.SourceCrossref}},
	}

	sets := FetchAll(context.Background(), []Provider{broken, ok}, "query", 5, &warnings)
	if sets[0] != nil {
		t.Errorf("failed provider should yield an empty set, got %+v", sets[0])
	}
	if len(sets[1]) != 1 {
		t.Errorf("healthy provider's records lost: %+v", sets[1])
	}
	if !strings.Contains(warnings.String(), "warning: provider broken failed") {
		t.Errorf("missing warning, got %q", warnings.String())
	}
}

func TestFetchAllAllProvidersFail(t *testing.T) {
	var warnings bytes.Buffer
	providers := []Provider{
		&mockProvider{name: "a", err: errors.New("down")},
		&mockProvider{name: "b", err: errors.New("also down")},
	}

	sets := FetchAll(context.Background(), providers, "query", 5, &warnings)
	for i, set := range sets {
		if len(set) != 0 {
			t.Errorf("sets[%d] = %+v, want empty", i, set)
		}
	}
}

func TestVariationBudget(t *testing.T) {
	tests := []struct {
		maxResults, variations, want int
	}{
		{10, 4, 3},
		{8, 4, 2},
		{5, 4, 2},
		{2, 4, 1},
		{0, 4, 1},
		{10, 1, 10},
		{10, 0, 10},
	}
	for _, tt := range tests {
		if got := variationBudget(tt.maxResults, tt.variations); got != tt.want {
			t.Errorf("variationBudget(%d, %d) = %d, want %d", tt.maxResults, tt.variations, got, tt.want)
		}
	}
}

func TestDedupeByTitle(t *testing.T) {
	records := []types.SearchRecord{
		{Title: "Attention Is All You Need", Source: types.SourceArxiv},
		{Title: "attention is all you need", Source: types.SourceCrossref},
		{Title: "", Source: types.SourceArxiv},
		{Title: "A Different Paper", Source: types.SourceArxiv},
	}

	out := dedupeByTitle(records)
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	if out[0].Source != types.SourceArxiv {
		t.Errorf("first occurrence should win, got %q", out[0].Source)
	}
}
