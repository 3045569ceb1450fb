// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/topic-scout/internal/session"
	"github.com/pdiddy/topic-scout/pkg/types"
)

// renderTable writes the session's candidates as a human-readable table.
func renderTable(sess *session.Session, w io.Writer) {
	fmt.Fprintf(w, "Topic: %s\n", sess.Topic)
	if len(sess.Keywords) > 0 {
		fmt.Fprintf(w, "Keywords: %s\n", strings.Join(sess.Keywords, ", "))
	}
	fmt.Fprintln(w)

	if len(sess.Candidates) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-6s  %-8s  %s\n", "Rank", "Title", "Score", "Source", "Published")
	fmt.Fprintln(w, strings.Repeat("-", 96))

	for i, r := range sess.Candidates {
		title := r.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-6.2f  %-8s  %s\n",
			i+1, title, r.RelevanceScore, r.Source, r.Published)
	}

	fmt.Fprintf(w, "\n%d candidates", len(sess.Candidates))
	if n := len(sess.DatasetMatches); n > 0 {
		fmt.Fprintf(w, " (%d from the internal dataset)", n)
	}
	fmt.Fprintln(w)
}

// renderJSON writes records as indented JSON.
func renderJSON(records []types.SearchRecord, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
