// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package keywords derives salient search terms from free text. Query
// variation generation and the title-matching scorers both build on it.
package keywords

import (
	"strings"
	"unicode"
)

const (
	// DefaultMinLength is the shortest token kept as a keyword.
	DefaultMinLength = 3

	// DefaultMaxKeywords bounds the number of keywords returned.
	DefaultMaxKeywords = 7
)

// stopwords is the fixed set of tokens never treated as keywords.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true,
	"at": true, "be": true, "by": true, "for": true, "from": true,
	"has": true, "have": true, "how": true, "in": true, "is": true,
	"it": true, "its": true, "of": true, "on": true, "or": true,
	"that": true, "the": true, "this": true, "to": true, "was": true,
	"what": true, "when": true, "where": true, "which": true,
	"will": true, "with": true,
}

// Extract returns up to maxKeywords lowercased terms from text, in their
// original order. Punctuation is stripped, stopwords and tokens shorter
// than minLength are dropped. It never fails; empty input yields nil.
func Extract(text string, minLength, maxKeywords int) []string {
	if minLength <= 0 {
		minLength = DefaultMinLength
	}
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}

	var keywords []string
	for _, token := range strings.Fields(stripPunct(strings.ToLower(text))) {
		if len(token) < minLength || stopwords[token] {
			continue
		}
		keywords = append(keywords, token)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

// ExtractDefault extracts keywords with the default length and count limits.
func ExtractDefault(text string) []string {
	return Extract(text, DefaultMinLength, DefaultMaxKeywords)
}

// MatchRatio reports the fraction of kws found as substrings of the
// lowercased title. A nil keyword list yields 0.
func MatchRatio(kws []string, title string) float64 {
	if len(kws) == 0 {
		return 0
	}
	lower := strings.ToLower(title)
	matched := 0
	for _, kw := range kws {
		if strings.Contains(lower, kw) {
			matched++
		}
	}
	return float64(matched) / float64(len(kws))
}

// stripPunct replaces punctuation and symbol runes with spaces so that
// hyphenated or quoted terms still split into clean tokens.
func stripPunct(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return ' '
		}
		return r
	}, s)
}
