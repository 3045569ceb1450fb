// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the topic-scout pipeline.
package types

// Source identifies where a SearchRecord came from. It is set when the
// record is created and never overwritten, even when a duplicate of the
// same title arrives later from another source.
type Source string

const (
	SourceArxiv    Source = "arxiv"
	SourceCrossref Source = "crossref"
	SourceDataset  Source = "dataset"
	SourceLLM      Source = "llm"
)

// NoSummary is the sentinel stored in Summary when a provider returned no
// abstract. The fusion completeness score treats it as an absent summary.
const NoSummary = "no summary available"

// MinTitleLength is the shortest normalized title admitted into fusion
// output. Anything shorter is too generic to trust as a dedup key.
const MinTitleLength = 10

// SearchRecord is the canonical unit flowing through the pipeline: one
// candidate topic or paper from a provider, the internal dataset, or the
// LLM. The lowercased title is the sole deduplication key.
type SearchRecord struct {
	// Title is the record title as returned by the source. Required;
	// records without a title are dropped at the adapter boundary.
	Title string `json:"title" yaml:"title"`

	// Authors is a comma-joined author list. May be empty.
	Authors string `json:"authors" yaml:"authors"`

	// Summary is the abstract or description, or NoSummary when the
	// source had none.
	Summary string `json:"summary" yaml:"summary"`

	// Published is a free-form date or year string. May be empty.
	Published string `json:"published,omitempty" yaml:"published,omitempty"`

	// URL points at the source page or PDF. May be empty.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Source identifies the provider that created this record.
	Source Source `json:"source" yaml:"source"`

	// RelevanceScore is a value between 0.0 and 1.0. It is meaningful
	// only when Scored is true, and is assigned at most once per
	// scoring pass.
	RelevanceScore float64 `json:"relevance_score" yaml:"relevance_score"`

	// Scored reports whether RelevanceScore has been assigned.
	Scored bool `json:"-" yaml:"-"`

	// LLMGenerated marks records synthesized from LLM text rather than
	// fetched from a provider. Set at creation, immutable.
	LLMGenerated bool `json:"llm_generated,omitempty" yaml:"llm_generated,omitempty"`
}

// SetScore assigns the relevance score once. Subsequent calls within the
// same pass are ignored so a record is never re-scored.
func (r *SearchRecord) SetScore(score float64) {
	if r.Scored {
		return
	}
	r.RelevanceScore = score
	r.Scored = true
}
