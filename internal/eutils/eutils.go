// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package eutils is the retrieval layer for the pipeline: it submits a
// free-text query to the NCBI E-utilities search endpoint and fetches the
// detailed XML document for the matching record identifiers. One Client,
// two calls, no state shared between runs.
package eutils

import (
	"fmt"
	"net/http"

	"github.com/meshintel/pharmascout/pkg/types"
)

// DefaultBaseURL is the base URL for the NCBI E-utilities API.
const DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

const (
	// dbName is the fixed upstream database queried by both endpoints.
	dbName = "pubmed"

	// DefaultMaxResults bounds the identifier list when the config does not.
	DefaultMaxResults = 100

	// maxResultsLimit is the hard cap the API enforces per request.
	maxResultsLimit = 10000

	// maxBodyBytes bounds how much of a response body is read.
	maxBodyBytes = 10 << 20
)

// Stage identifies which retrieval stage produced an error.
type Stage string

const (
	StageSearch Stage = "search"
	StageFetch  Stage = "fetch"
)

// RetrievalError wraps a failure to reach or decode an E-utilities
// endpoint. Stage errors are fatal to the current run; the pipeline
// propagates them to the caller unchanged, with no partial result.
type RetrievalError struct {
	Stage Stage
	Err   error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// Client calls the esearch and efetch endpoints. BaseURL is a field rather
// than a constant so tests can substitute an httptest server.
type Client struct {
	HTTP    *http.Client
	BaseURL string

	cfg types.EutilsConfig
}

// New creates a Client from cfg, applying defaults for unset fields.
func New(cfg types.EutilsConfig) *Client {
	if cfg.Tool == "" {
		cfg.Tool = "pharmascout"
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	if cfg.MaxResults > maxResultsLimit {
		cfg.MaxResults = maxResultsLimit
	}
	return &Client{
		HTTP:    &http.Client{Timeout: cfg.Timeout},
		BaseURL: DefaultBaseURL,
		cfg:     cfg,
	}
}

// identification returns the tool/email/api_key parameters NCBI policy
// requires on every request.
func (c *Client) identification() map[string]string {
	params := map[string]string{
		"tool":  c.cfg.Tool,
		"email": c.cfg.Email,
	}
	if c.cfg.APIKey != "" {
		params["api_key"] = c.cfg.APIKey
	}
	return params
}
