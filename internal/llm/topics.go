// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/topic-scout/pkg/types"
)

const (
	// DefaultSimilarCount is the number of similar topics requested.
	DefaultSimilarCount = 5

	// DefaultNicheCount is the number of niche topics requested.
	DefaultNicheCount = 4
)

// topicLinePattern matches one numbered list entry: "1. Title" or "3) Title".
var topicLinePattern = regexp.MustCompile(`^\s*\d+[.)]\s+(.+)$`)

// titleSeparators split a list entry into title and description, tried in
// order.
var titleSeparators = []string{" - ", " – ", " — ", ": "}

// GenerateSimilarTopics asks the completion service for count topics
// similar to topic and parses the response into candidate records. The
// completion error is returned as-is so systemic service failures
// (ErrService) surface to the user.
func GenerateSimilarTopics(ctx context.Context, c Completer, topic string, count int) ([]types.SearchRecord, error) {
	if count <= 0 {
		count = DefaultSimilarCount
	}
	prompt, err := renderTopicPrompt(similarTopicsTmpl, topic, count)
	if err != nil {
		return nil, err
	}
	text, err := c.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return ParseTopics(text), nil
}

// AnalyzeTopic returns the completion service's structured analysis of
// topic as raw text.
func AnalyzeTopic(ctx context.Context, c Completer, topic string) (string, error) {
	prompt, err := renderTopicPrompt(analyzeTmpl, topic, 0)
	if err != nil {
		return "", err
	}
	return c.Complete(ctx, prompt)
}

// GenerateNicheTopics asks for count under-explored topics adjacent to
// topic and returns both the raw text and the parsed candidates.
func GenerateNicheTopics(ctx context.Context, c Completer, topic string, count int) (string, []types.SearchRecord, error) {
	if count <= 0 {
		count = DefaultNicheCount
	}
	prompt, err := renderTopicPrompt(nicheTopicsTmpl, topic, count)
	if err != nil {
		return "", nil, err
	}
	text, err := c.Complete(ctx, prompt)
	if err != nil {
		return "", nil, err
	}
	return text, ParseTopics(text), nil
}

// GeneratePaperOutline returns a full paper structure for topic as raw
// markdown-ish text.
func GeneratePaperOutline(ctx context.Context, c Completer, topic string) (string, error) {
	prompt, err := renderTopicPrompt(outlineTmpl, topic, 0)
	if err != nil {
		return "", err
	}
	return c.Complete(ctx, prompt)
}

// ParseTopics is a best-effort extractor for numbered topic lists in LLM
// free text. Each "N. Title - description" line becomes one record with
// Source llm; a missing description becomes the no-summary sentinel.
// Malformed lines are skipped, so the result may hold fewer items than
// were prompted for. It never fails.
func ParseTopics(text string) []types.SearchRecord {
	var records []types.SearchRecord
	for _, line := range strings.Split(text, "\n") {
		m := topicLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		title, description := splitEntry(m[1])
		title = cleanMarkup(title)
		if title == "" {
			continue
		}

		r := types.SearchRecord{
			Title:        title,
			Summary:      types.NoSummary,
			Source:       types.SourceLLM,
			LLMGenerated: true,
		}
		if description = strings.TrimSpace(description); description != "" {
			r.Summary = description
		}
		records = append(records, r)
	}
	return records
}

// FormatCandidates writes parsed candidates as a numbered list, the
// inverse of ParseTopics, for progress output.
func FormatCandidates(records []types.SearchRecord) string {
	var b strings.Builder
	for i, r := range records {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r.Title)
	}
	return b.String()
}

// splitEntry separates a list entry into title and description at the
// first known separator.
func splitEntry(entry string) (title, description string) {
	for _, sep := range titleSeparators {
		if idx := strings.Index(entry, sep); idx > 0 {
			return entry[:idx], entry[idx+len(sep):]
		}
	}
	return entry, ""
}

// cleanMarkup strips the markdown emphasis and stray quotes models wrap
// titles in.
func cleanMarkup(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "*_\"'`")
	return strings.TrimSpace(s)
}
