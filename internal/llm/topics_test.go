// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pdiddy/topic-scout/pkg/types"
)

type mockCompleter struct {
	response string
	err      error
	prompt   string
}

func (m *mockCompleter) Complete(_ context.Context, prompt string) (string, error) {
	m.prompt = prompt
	return m.response, m.err
}

func TestParseTopics(t *testing.T) {
	text := `Here are some suggestions:

1. Microbial Degradation of Ocean Microplastics - Investigates plastic-eating bacteria in marine environments.
2. **Urban Heat Island Mitigation via Green Roofs** - Studies rooftop vegetation as passive cooling.
3) Low-Cost Bioacoustic Pollinator Monitoring
Some trailing commentary the model added.`

	records := ParseTopics(text)
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}

	if records[0].Title != "Microbial Degradation of Ocean Microplastics" {
		t.Errorf("title[0] = %q", records[0].Title)
	}
	if !strings.HasPrefix(records[0].Summary, "Investigates") {
		t.Errorf("summary[0] = %q", records[0].Summary)
	}
	if records[1].Title != "Urban Heat Island Mitigation via Green Roofs" {
		t.Errorf("markdown emphasis not stripped: %q", records[1].Title)
	}
	// Entry without a description gets the explicit sentinel, not an
	// omitted field.
	if records[2].Summary != types.NoSummary {
		t.Errorf("summary[2] = %q, want sentinel", records[2].Summary)
	}

	for _, r := range records {
		if r.Source != types.SourceLLM || !r.LLMGenerated {
			t.Errorf("record %q missing llm provenance", r.Title)
		}
	}
}

func TestParseTopicsMalformedText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"prose only", "The model refused to make a list.", 0},
		{"partial list", "1. Valid Topic Title Here\nnot a list line\n2 missing dot", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(ParseTopics(tt.text)); got != tt.want {
				t.Errorf("len = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGenerateSimilarTopics(t *testing.T) {
	c := &mockCompleter{response: "1. Candidate Alpha - first\n2. Candidate Bravo - second"}

	records, err := GenerateSimilarTopics(context.Background(), c, "climate modeling", 2)
	if err != nil {
		t.Fatalf("GenerateSimilarTopics: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if !strings.Contains(c.prompt, "climate modeling") {
		t.Errorf("prompt missing topic: %q", c.prompt)
	}
	if !strings.Contains(c.prompt, "2") {
		t.Errorf("prompt missing count: %q", c.prompt)
	}
}

func TestGenerateSimilarTopicsSurfacesServiceError(t *testing.T) {
	c := &mockCompleter{err: ErrService}

	_, err := GenerateSimilarTopics(context.Background(), c, "anything", 3)
	if !errors.Is(err, ErrService) {
		t.Errorf("err = %v, want ErrService to surface", err)
	}
}

func TestGenerateNicheTopicsReturnsRawAndParsed(t *testing.T) {
	raw := "1. Niche Topic One - reason\n2. Niche Topic Two - reason"
	c := &mockCompleter{response: raw}

	text, records, err := GenerateNicheTopics(context.Background(), c, "ecology", 0)
	if err != nil {
		t.Fatalf("GenerateNicheTopics: %v", err)
	}
	if text != raw {
		t.Errorf("raw text not passed through")
	}
	if len(records) != 2 {
		t.Errorf("len(records) = %d, want 2", len(records))
	}
}

func TestNewOpenAIClientRequiresKey(t *testing.T) {
	_, err := NewOpenAIClient(types.LLMConfig{})
	if !errors.Is(err, ErrService) {
		t.Errorf("err = %v, want ErrService for missing key", err)
	}
}
