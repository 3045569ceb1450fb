// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/pdiddy/topic-scout/pkg/types"
)

// --- mock judge ---

type mockJudge struct {
	response string
	err      error
	calls    int
}

func (m *mockJudge) Complete(_ context.Context, _ string) (string, error) {
	m.calls++
	return m.response, m.err
}

func TestScoreFastPathSkipsJudge(t *testing.T) {
	judge := &mockJudge{response: "0.1"}
	s := &Scorer{Judge: judge}

	// Topic has 5 keywords; 2 appear in the title: ratio 0.4, exactly
	// at the short-circuit boundary.
	topic := "deep climate ocean coral reef"
	rec := types.SearchRecord{Title: "Deep Climate Trends"}

	got := s.Score(context.Background(), topic, rec)
	want := 0.7 + 0.4*0.3
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Score() = %f, want %f", got, want)
	}
	if judge.calls != 0 {
		t.Errorf("judge called %d times on the fast path, want 0", judge.calls)
	}
}

func TestScoreFastPathRange(t *testing.T) {
	s := &Scorer{}
	topic := "climate modeling"
	rec := types.SearchRecord{Title: "Climate Modeling Advances"}

	got := s.Score(context.Background(), topic, rec)
	if got < 0.7 || got > 1.0 {
		t.Errorf("fast-path score %f outside [0.7, 1.0]", got)
	}
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("full overlap should score 1.0, got %f", got)
	}
}

func TestScoreSlowPath(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
		want     float64
	}{
		{"bare number", "0.8", nil, 0.8},
		{"number embedded in prose", "I'd rate this 0.65 overall.", nil, 0.65},
		{"integer response", "1", nil, 1.0},
		{"clamped above one", "7.5", nil, 1.0},
		{"clamped below zero", "-0.3", nil, 0.0},
		{"no number at all", "not relevant", nil, NeutralScore},
		{"empty response", "", nil, NeutralScore},
		{"judge error", "", errors.New("boom"), NeutralScore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Scorer{Judge: &mockJudge{response: tt.response, err: tt.err}}
			rec := types.SearchRecord{Title: "Unrelated Paper About Pottery", Summary: types.NoSummary}

			got := s.Score(context.Background(), "quantum error correction", rec)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score() = %f, want %f", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("Score() = %f outside [0.0, 1.0]", got)
			}
		})
	}
}

func TestScoreNilJudge(t *testing.T) {
	s := &Scorer{}
	rec := types.SearchRecord{Title: "Unrelated Paper About Pottery"}

	if got := s.Score(context.Background(), "quantum error correction", rec); got != NeutralScore {
		t.Errorf("Score() = %f, want neutral %f without a judge", got, NeutralScore)
	}
}

func TestFilterAndRankDropsBelowThreshold(t *testing.T) {
	s := &Scorer{}
	records := []types.SearchRecord{
		{Title: "Kept Record", RelevanceScore: 0.9, Scored: true},
		{Title: "Dropped Record", RelevanceScore: 0.3, Scored: true},
		{Title: "Boundary Record", RelevanceScore: 0.5, Scored: true},
	}

	out := s.FilterAndRank(context.Background(), "topic", records, 0.5, 8)
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	for _, r := range out {
		if r.RelevanceScore < 0.5 {
			t.Errorf("record %q below threshold survived", r.Title)
		}
	}
}

func TestFilterAndRankStableDescending(t *testing.T) {
	s := &Scorer{}
	records := []types.SearchRecord{
		{Title: "Tie A", RelevanceScore: 0.8, Scored: true},
		{Title: "High", RelevanceScore: 0.95, Scored: true},
		{Title: "Tie B", RelevanceScore: 0.8, Scored: true},
		{Title: "Tie C", RelevanceScore: 0.8, Scored: true},
	}

	out := s.FilterAndRank(context.Background(), "topic", records, 0.5, 8)
	for i := 1; i < len(out); i++ {
		if out[i].RelevanceScore > out[i-1].RelevanceScore {
			t.Errorf("output not non-increasing at %d", i)
		}
	}
	if out[0].Title != "High" {
		t.Errorf("out[0] = %q, want highest score first", out[0].Title)
	}
	// Equal scores keep input order.
	if out[1].Title != "Tie A" || out[2].Title != "Tie B" || out[3].Title != "Tie C" {
		t.Errorf("tie order = %q, %q, %q; want input order", out[1].Title, out[2].Title, out[3].Title)
	}
}

func TestFilterAndRankScoresFastPathBoundary(t *testing.T) {
	s := &Scorer{}
	topic := "deep climate ocean coral reef"
	records := []types.SearchRecord{
		{Title: "Deep Climate Trends", Summary: types.NoSummary},
	}

	out := s.FilterAndRank(context.Background(), topic, records, 0.5, 8)
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	if math.Abs(out[0].RelevanceScore-0.82) > 1e-9 {
		t.Errorf("score = %f, want 0.82", out[0].RelevanceScore)
	}
}

func TestFilterAndRankDoesNotRescore(t *testing.T) {
	judge := &mockJudge{response: "0.9"}
	s := &Scorer{Judge: judge}
	records := []types.SearchRecord{
		{Title: "Already Scored Record", RelevanceScore: 0.6, Scored: true},
	}

	out := s.FilterAndRank(context.Background(), "unrelated topic entirely", records, 0.5, 8)
	if judge.calls != 0 {
		t.Errorf("judge called %d times for a pre-scored record, want 0", judge.calls)
	}
	if out[0].RelevanceScore != 0.6 {
		t.Errorf("score = %f, want the original 0.6", out[0].RelevanceScore)
	}
}

func TestFilterAndRankTruncates(t *testing.T) {
	s := &Scorer{}
	var records []types.SearchRecord
	for i := 0; i < 12; i++ {
		records = append(records, types.SearchRecord{
			Title:          "Candidate Record",
			RelevanceScore: 0.9 - float64(i)*0.01,
			Scored:         true,
		})
	}

	out := s.FilterAndRank(context.Background(), "topic", records, 0.5, 8)
	if len(out) != 8 {
		t.Errorf("len(out) = %d, want 8", len(out))
	}
}
