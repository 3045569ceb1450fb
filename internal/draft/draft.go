// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package draft stores generated paper outlines as markdown files.
package draft

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

// slugPattern keeps letters, digits, and hyphens in file names.
var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

const maxSlugLength = 60

// Slug turns a topic title into a file-name-safe slug.
func Slug(topic string) string {
	s := slugPattern.ReplaceAllString(strings.ToLower(topic), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "untitled"
	}
	if len(s) > maxSlugLength {
		s = strings.Trim(s[:maxSlugLength], "-")
	}
	return s
}

// Save writes the outline for topic to dir as <slug>.md with a small
// header recording the topic and generation time. It returns the written
// path.
func Save(dir, topic, outline string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating drafts directory: %w", err)
	}

	path := filepath.Join(dir, Slug(topic)+".md")

	var b strings.Builder
	fmt.Fprintf(&b, "<!-- topic: %s -->\n", topic)
	fmt.Fprintf(&b, "<!-- generated: %s -->\n\n", time.Now().UTC().Format(time.RFC3339))
	b.WriteString(strings.TrimSpace(outline))
	b.WriteString("\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing draft %s: %w", path, err)
	}
	return path, nil
}

// List returns the markdown draft paths in dir, sorted by name. A missing
// directory yields an empty list.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading drafts directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
