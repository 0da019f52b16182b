// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline composes the retrieval, parse, and classification stages
// into one run: query → identifiers → raw document → papers → filtered
// papers. Each stage completes before the next begins; a retrieval failure
// aborts the run, while individually malformed records are absorbed by the
// parser. Runs share no mutable state, so independent runs are safe from
// concurrent goroutines.
package pipeline

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/meshintel/pharmascout/internal/classify"
	"github.com/meshintel/pharmascout/internal/eutils"
	"github.com/meshintel/pharmascout/internal/medline"
	"github.com/meshintel/pharmascout/pkg/types"
)

// Retriever is the network layer the pipeline drives: one search call
// producing record identifiers and one batched fetch producing the raw
// detail document. *eutils.Client implements it; tests substitute stubs.
type Retriever interface {
	Search(ctx context.Context, query string) ([]string, error)
	Fetch(ctx context.Context, pmids []string) ([]byte, error)
}

// Result is the outcome of one pipeline run. Papers holds the filtered
// records in document order; it is not mutated after Run returns.
type Result struct {
	Papers []types.Paper

	// Scanned counts the records parsed from the fetch document; Matched
	// counts those that passed the affiliation filter.
	Scanned int
	Matched int
}

// Run executes the pipeline for one query. Search and fetch errors
// propagate unchanged as *eutils.RetrievalError; a query matching nothing
// returns an empty Result without a fetch call. A paper is kept iff at
// least one of its authors' affiliations classifies as non-academic.
func Run(ctx context.Context, r Retriever, query string, log zerolog.Logger) (Result, error) {
	pmids, err := r.Search(ctx, query)
	if err != nil {
		return Result{}, err
	}
	log.Debug().Int("identifiers", len(pmids)).Msg("search complete")
	if len(pmids) == 0 {
		return Result{}, nil
	}

	doc, err := r.Fetch(ctx, pmids)
	if err != nil {
		return Result{}, err
	}

	papers, err := medline.Parse(doc, log)
	if err != nil {
		// A document that cannot be decoded at all means the fetch stage
		// delivered a malformed body.
		return Result{}, &eutils.RetrievalError{Stage: eutils.StageFetch, Err: err}
	}

	res := Result{Scanned: len(papers)}
	for _, p := range papers {
		names, companies := nonAcademic(p.Authors)
		if len(companies) == 0 {
			continue
		}
		p.NonAcademicAuthors = names
		p.CompanyAffiliations = companies
		res.Papers = append(res.Papers, p)
	}
	res.Matched = len(res.Papers)

	log.Info().Int("scanned", res.Scanned).Int("matched", res.Matched).
		Msg("pipeline complete")
	return res, nil
}

// nonAcademic classifies every affiliation of every author and returns the
// sorted, deduplicated non-academic author names and company affiliation
// strings.
func nonAcademic(authors []types.Author) (names, companies []string) {
	nameSet := make(map[string]bool)
	companySet := make(map[string]bool)

	for _, a := range authors {
		for _, aff := range a.Affiliations {
			company, ok := classify.Company(aff)
			if !ok {
				continue
			}
			companySet[company] = true
			if a.Name != "" {
				nameSet[a.Name] = true
			}
		}
	}

	for n := range nameSet {
		names = append(names, n)
	}
	for c := range companySet {
		companies = append(companies, c)
	}
	sort.Strings(names)
	sort.Strings(companies)
	return names, companies
}
