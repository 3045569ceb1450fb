// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session holds the per-user state of one topic-selection run.
// The state object is passed explicitly through the pipeline; there are
// no package-level variables, so concurrent sessions never share state.
package session

import (
	"fmt"
	"io"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/topic-scout/pkg/types"
)

// Session owns every record produced while the user explores one topic.
// It is created when the user submits a topic and discarded (or Reset)
// when they restart or pick a new one.
type Session struct {
	// Topic is the user's free-text research topic.
	Topic string `yaml:"topic"`

	// StartedAt records session creation time.
	StartedAt time.Time `yaml:"started_at"`

	// Keywords extracted from Topic.
	Keywords []string `yaml:"keywords,omitempty"`

	// Variations are the expanded provider query strings.
	Variations []string `yaml:"variations,omitempty"`

	// DatasetMatches are internal-dataset rows similar to Topic.
	DatasetMatches []types.SearchRecord `yaml:"dataset_matches,omitempty"`

	// Candidates is the fused, ranked suggestion list shown to the user.
	Candidates []types.SearchRecord `yaml:"candidates,omitempty"`

	// SelectedTopic is the candidate the user picked, empty until then.
	SelectedTopic string `yaml:"selected_topic,omitempty"`

	// Analysis is the raw topic-analysis text.
	Analysis string `yaml:"analysis,omitempty"`

	// Outline is the generated paper structure.
	Outline string `yaml:"outline,omitempty"`

	// NicheTopics are parsed niche-topic proposals.
	NicheTopics []types.SearchRecord `yaml:"niche_topics,omitempty"`
}

// New starts a session for topic.
func New(topic string) *Session {
	return &Session{
		Topic:     topic,
		StartedAt: time.Now().UTC(),
	}
}

// Reset clears everything and restarts the session with a new topic.
// Old records do not survive a topic change.
func (s *Session) Reset(topic string) {
	*s = *New(topic)
}

// Select marks a candidate title as the chosen topic.
func (s *Session) Select(title string) {
	s.SelectedTopic = title
}

// ExportYAML writes the session to w as YAML. This is an explicit export
// artifact; the session itself lives only in memory.
func (s *Session) ExportYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	return nil
}
