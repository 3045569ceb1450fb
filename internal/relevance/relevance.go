// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package relevance scores search records against the user's topic and
// filters and ranks them. Scoring is two-tier: a cheap keyword-overlap
// heuristic short-circuits the expensive LLM judge whenever lexical
// evidence is already strong.
package relevance

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"text/template"

	"github.com/pdiddy/topic-scout/internal/keywords"
	"github.com/pdiddy/topic-scout/pkg/types"
)

const (
	// FastPathThreshold is the keyword match ratio at or above which
	// the heuristic score is trusted and no judge call is made.
	FastPathThreshold = 0.4

	// NeutralScore is returned when the judge fails or its response
	// cannot be parsed.
	NeutralScore = 0.5

	// DefaultThreshold drops records scoring below it in FilterAndRank.
	DefaultThreshold = 0.5

	// DefaultCap truncates the ranked list in FilterAndRank.
	DefaultCap = 8
)

// Judge abstracts the completion service used for the slow scoring path,
// so tests can supply a mock.
type Judge interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// judgePromptTmpl asks the model for a bare numeric relevance rating.
var judgePromptTmpl = template.Must(template.New("judge").Parse(`Rate how relevant the following search result is to the research topic "{{.Topic}}".

Title: {{.Title}}
Summary: {{.Summary}}

Respond with a single number between 0.0 (unrelated) and 1.0 (highly relevant). Do not include any other text.`))

// numberPattern matches the first integer or floating-point token in the
// judge's response.
var numberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// Scorer assigns topic-relevance scores to search records.
type Scorer struct {
	// Judge is consulted only when the fast path is inconclusive.
	// A nil Judge degrades to the neutral score.
	Judge Judge

	// Log receives judge-failure warnings. Nil means discard.
	Log io.Writer
}

// Score returns a relevance score in [0.0, 1.0] for rec against topic.
// When at least FastPathThreshold of the topic's keywords appear in the
// record title, the heuristic score 0.7 + ratio*0.3 is returned without
// calling the judge. Judge errors and unparseable responses yield
// NeutralScore, never an error.
func (s *Scorer) Score(ctx context.Context, topic string, rec types.SearchRecord) float64 {
	kws := keywords.ExtractDefault(topic)
	ratio := keywords.MatchRatio(kws, rec.Title)
	if ratio >= FastPathThreshold {
		return 0.7 + ratio*0.3
	}

	if s.Judge == nil {
		return NeutralScore
	}

	var prompt bytes.Buffer
	err := judgePromptTmpl.Execute(&prompt, map[string]string{
		"Topic":   topic,
		"Title":   rec.Title,
		"Summary": rec.Summary,
	})
	if err != nil {
		return NeutralScore
	}

	resp, err := s.Judge.Complete(ctx, prompt.String())
	if err != nil {
		fmt.Fprintf(s.log(), "warning: relevance judge failed for %q: %v\n", rec.Title, err)
		return NeutralScore
	}

	return parseJudgeScore(resp)
}

// FilterAndRank scores every unscored record, drops those below
// threshold, and returns the rest sorted by descending relevance,
// truncated to limit. The sort is stable: equal scores keep their input
// order. Zero threshold and limit use the defaults.
func (s *Scorer) FilterAndRank(ctx context.Context, topic string, records []types.SearchRecord, threshold float64, limit int) []types.SearchRecord {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if limit <= 0 {
		limit = DefaultCap
	}

	kept := make([]types.SearchRecord, 0, len(records))
	for _, r := range records {
		if !r.Scored {
			r.SetScore(s.Score(ctx, topic, r))
		}
		if r.RelevanceScore < threshold {
			continue
		}
		kept = append(kept, r)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].RelevanceScore > kept[j].RelevanceScore
	})

	if len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}

func (s *Scorer) log() io.Writer {
	if s.Log == nil {
		return io.Discard
	}
	return s.Log
}

// parseJudgeScore extracts the first numeric token from the judge's
// response and clamps it to [0.0, 1.0]. Anything unparseable yields
// NeutralScore.
func parseJudgeScore(resp string) float64 {
	match := numberPattern.FindString(resp)
	if match == "" {
		return NeutralScore
	}
	score, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return NeutralScore
	}
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
