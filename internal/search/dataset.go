// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"

	"github.com/pdiddy/topic-scout/internal/dataset"
	"github.com/pdiddy/topic-scout/internal/keywords"
	"github.com/pdiddy/topic-scout/pkg/types"
)

// DatasetProvider adapts the internal fair-project dataset to the
// Provider contract. Unlike the external adapters it runs no query
// variations: the dataset match count already scores every keyword.
type DatasetProvider struct {
	Store *dataset.Store
}

// Name returns the provider identifier.
func (p *DatasetProvider) Name() string { return string(types.SourceDataset) }

// Search extracts keywords from the query and returns dataset rows whose
// titles contain at least one of them, best match first.
func (p *DatasetProvider) Search(ctx context.Context, query string, maxResults int) ([]types.SearchRecord, error) {
	kws := keywords.ExtractDefault(query)
	if len(kws) == 0 {
		return nil, nil
	}
	return p.Store.Search(ctx, kws, maxResults)
}
