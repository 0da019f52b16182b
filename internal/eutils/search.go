// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/meshintel/pharmascout/internal/httputil"
)

// esearch JSON structures. Only the fields the pipeline needs.
type esearchResponse struct {
	Result *esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
}

// Search submits the query to the esearch endpoint and returns the matching
// record identifiers in upstream ranking order. The result is capped at the
// configured MaxResults; an empty identifier list is a valid outcome, not an
// error. All failures are reported as a *RetrievalError for StageSearch.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &RetrievalError{Stage: StageSearch, Err: errors.New("empty query")}
	}

	params := url.Values{
		"db":      {dbName},
		"term":    {query},
		"retmode": {"json"},
		"retmax":  {strconv.Itoa(c.cfg.MaxResults)},
	}
	for k, v := range c.identification() {
		params.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/esearch.fcgi?"+params.Encode(), nil)
	if err != nil {
		return nil, &RetrievalError{Stage: StageSearch, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, c.cfg.MaxRetries)
	if err != nil {
		return nil, &RetrievalError{Stage: StageSearch, Err: fmt.Errorf("esearch request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &RetrievalError{Stage: StageSearch, Err: fmt.Errorf("esearch returned HTTP %d", resp.StatusCode)}
	}

	var esr esearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&esr); err != nil {
		return nil, &RetrievalError{Stage: StageSearch, Err: fmt.Errorf("parsing esearch response: %w", err)}
	}

	// A response without the esearchresult object is malformed. A present
	// object with no idlist just means zero matches.
	if esr.Result == nil {
		return nil, &RetrievalError{Stage: StageSearch, Err: errors.New("esearch response missing esearchresult")}
	}
	return esr.Result.IDList, nil
}
