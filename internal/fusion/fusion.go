// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fusion pools search records from every provider into a single
// deduplicated, scored, ranked list.
package fusion

import (
	"sort"
	"strings"
	"unicode"

	"github.com/pdiddy/topic-scout/internal/keywords"
	"github.com/pdiddy/topic-scout/pkg/types"
)

// Merge concatenates the record sets in order, drops records whose
// normalized title is shorter than types.MinTitleLength, deduplicates by
// normalized title (first occurrence wins, keeping the first source's
// provenance even when a later duplicate carries richer metadata), scores
// the survivors for completeness, and returns the top maxTotal by score.
//
// Set order is the tie-breaking contract: callers pass provider sets in a
// fixed priority order, so the outcome does not depend on which provider
// answered first.
func Merge(recordSets [][]types.SearchRecord, maxTotal int) []types.SearchRecord {
	seen := make(map[string]bool)
	var merged []types.SearchRecord
	var scores []float64

	for _, set := range recordSets {
		for _, r := range set {
			key := normalizeTitle(r.Title)
			if len(key) < types.MinTitleLength || seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, r)

			// Records carrying a topic-relevance score keep it as
			// their sort key; the rest get the coarser completeness
			// score. The two scales are never written to the same
			// field.
			if r.Scored {
				scores = append(scores, r.RelevanceScore)
			} else {
				scores = append(scores, float64(Completeness(r)))
			}
		}
	}

	idx := make([]int, len(merged))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})

	out := make([]types.SearchRecord, 0, len(idx))
	for _, i := range idx {
		out = append(out, merged[i])
	}

	if maxTotal > 0 && len(out) > maxTotal {
		out = out[:maxTotal]
	}
	return out
}

// Completeness scores how well-formed a record is, independent of any
// topic: 2 points per keyword extracted from the record's own title that
// appears in the title, plus 1 each for a real summary, a non-empty
// author list, and a URL. This measures how complete a record is, not
// how relevant; the relevance package owns the latter scale.
func Completeness(r types.SearchRecord) int {
	score := 0
	lower := strings.ToLower(r.Title)
	for _, kw := range keywords.ExtractDefault(r.Title) {
		if strings.Contains(lower, kw) {
			score += 2
		}
	}
	if r.Summary != "" && r.Summary != types.NoSummary {
		score++
	}
	if r.Authors != "" {
		score++
	}
	if r.URL != "" {
		score++
	}
	return score
}

// Blend combines LLM-generated candidates with provider hits under an
// explicit precedence rule: synthesized suggestions at or above the
// relevance floor go first, then provider hits fill the remaining slots,
// deduplicated across both lists, up to total entries.
func Blend(llm, provider []types.SearchRecord, total int, floor float64) []types.SearchRecord {
	if total <= 0 {
		return nil
	}

	seen := make(map[string]bool)
	out := make([]types.SearchRecord, 0, total)
	add := func(r types.SearchRecord) {
		key := normalizeTitle(r.Title)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, r)
	}

	for _, r := range llm {
		if r.Scored && r.RelevanceScore < floor {
			continue
		}
		add(r)
		if len(out) == total {
			return out
		}
	}
	for _, r := range provider {
		add(r)
		if len(out) == total {
			break
		}
	}
	return out
}

// normalizeTitle returns a lowercased, punctuation-stripped version of
// the title with whitespace collapsed. It is the dedup key and the basis
// of the minimum-length filter.
func normalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
