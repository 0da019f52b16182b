// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/meshintel/pharmascout/internal/httputil"
)

// Fetch retrieves the detailed XML document for a batch of record
// identifiers in a single request and returns the raw bytes. An empty
// identifier list short-circuits to nil without a network call: the
// endpoint rejects requests with no IDs and there is nothing to fetch.
//
// The upstream may silently omit deleted or retracted records; absence of a
// requested identifier in the returned document is not an error here or
// downstream. All failures are reported as a *RetrievalError for StageFetch.
//
// The request is a POST with a form body so that large identifier batches
// do not run into URL length limits.
func (c *Client) Fetch(ctx context.Context, pmids []string) ([]byte, error) {
	if len(pmids) == 0 {
		return nil, nil
	}

	form := url.Values{
		"db":      {dbName},
		"id":      {strings.Join(pmids, ",")},
		"retmode": {"xml"},
	}
	for k, v := range c.identification() {
		form.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/efetch.fcgi", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &RetrievalError{Stage: StageFetch, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, c.cfg.MaxRetries)
	if err != nil {
		return nil, &RetrievalError{Stage: StageFetch, Err: fmt.Errorf("efetch request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &RetrievalError{Stage: StageFetch, Err: fmt.Errorf("efetch returned HTTP %d", resp.StatusCode)}
	}

	doc, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &RetrievalError{Stage: StageFetch, Err: fmt.Errorf("reading efetch response: %w", err)}
	}
	return doc, nil
}
