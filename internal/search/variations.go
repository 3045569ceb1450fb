// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"strings"

	"github.com/pdiddy/topic-scout/internal/keywords"
)

// Variations expands a topic query into alternate search strings to widen
// provider recall. The original query is always first. With fewer than two
// extracted keywords there is nothing to recombine and only the original
// is returned. External adapters run every variation and merge, rather
// than picking one at random, so repeated calls stay deterministic.
func Variations(query string) []string {
	variations := []string{query}

	kws := keywords.ExtractDefault(query)
	if len(kws) < 2 {
		return variations
	}

	variations = append(variations, strings.Join(kws, " AND "))

	head := kws
	if len(head) > 3 {
		head = head[:3]
	}
	variations = append(variations, strings.Join(head, " "))

	return append(variations, strings.Join(kws, " OR "))
}
