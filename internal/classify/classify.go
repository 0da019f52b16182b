// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides whether an author affiliation string names a
// commercial organization rather than a university, hospital, or research
// institute. It is a fixed-keyword heuristic over a constant rule table:
// deterministic, pure, and with no error path — ambiguity always resolves
// to a definite verdict.
package classify

import (
	"strings"
	"unicode"
)

type verdict int

const (
	academic verdict = iota
	corporate
)

// rule matches a lowercase marker either as a whole word or as a substring
// of the affiliation text.
type rule struct {
	marker    string
	wholeWord bool
	verdict   verdict
}

// rules is evaluated in order; the first match wins. Academic markers come
// first so that they veto corporate suffixes: "Stanford University School
// of Medicine" stays academic even when a hospital spin-off adds "LLC".
// Short corporate tokens match whole words only, so "Princeton" does not
// contain "inc". The word lists are tunable; known false negatives include
// corporate R&D units named "... Institute".
var rules = []rule{
	{marker: "university", verdict: academic},
	{marker: "univerzita", verdict: academic},
	{marker: "college", verdict: academic},
	{marker: "institute", verdict: academic},
	{marker: "institut", wholeWord: true, verdict: academic},
	{marker: "school", verdict: academic},
	{marker: "hospital", verdict: academic},
	{marker: "academy", verdict: academic},
	{marker: "faculty", verdict: academic},
	{marker: "clinic", verdict: academic},
	{marker: "dept", verdict: academic},
	{marker: "department", verdict: academic},
	{marker: "national institutes", verdict: academic},

	{marker: "pharma", verdict: corporate}, // also pharmaceutical(s)
	{marker: "biotech", verdict: corporate},
	{marker: "therapeutics", verdict: corporate},
	{marker: "diagnostics", verdict: corporate},
	{marker: "biosciences", verdict: corporate},
	{marker: "laboratories", verdict: corporate},
	{marker: "labs", wholeWord: true, verdict: corporate},
	{marker: "inc", wholeWord: true, verdict: corporate},
	{marker: "ltd", wholeWord: true, verdict: corporate},
	{marker: "llc", wholeWord: true, verdict: corporate},
	{marker: "corp", wholeWord: true, verdict: corporate},
	{marker: "gmbh", wholeWord: true, verdict: corporate},
	{marker: "ag", wholeWord: true, verdict: corporate},
	{marker: "plc", wholeWord: true, verdict: corporate},
	// Leading space keeps "Mexico." from matching.
	{marker: " co.", verdict: corporate},
}

// NonAcademic reports whether the affiliation text names a commercial
// organization. Blank input classifies academic: without text there is
// nothing to assert a corporate affiliation on.
func NonAcademic(affiliation string) bool {
	text := strings.ToLower(strings.TrimSpace(affiliation))
	if text == "" {
		return false
	}
	words := tokenize(text)
	for _, r := range rules {
		if r.matches(text, words) {
			return r.verdict == corporate
		}
	}
	return false
}

// Company returns the affiliation string to report in the company column
// and whether the affiliation classified as non-academic. The string is the
// trimmed source text; no canonicalization is attempted, so the same
// organization can appear under several spellings across papers.
func Company(affiliation string) (string, bool) {
	if !NonAcademic(affiliation) {
		return "", false
	}
	return strings.TrimSpace(affiliation), true
}

func (r rule) matches(text string, words map[string]bool) bool {
	if r.wholeWord {
		return words[r.marker]
	}
	return strings.Contains(text, r.marker)
}

func tokenize(text string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.FieldsFunc(text, func(c rune) bool {
		return !unicode.IsLetter(c) && !unicode.IsDigit(c)
	}) {
		words[w] = true
	}
	return words
}
