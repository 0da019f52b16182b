// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pharmascout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// EutilsConfig holds settings for the NCBI E-utilities client.
type EutilsConfig struct {
	HTTPConfig `yaml:",inline"`

	// Tool is the client identifier sent with every request, per NCBI usage
	// policy.
	Tool string `json:"tool" yaml:"tool"`

	// Email is the contact address sent with every request, per NCBI usage
	// policy. Required.
	Email string `json:"email" yaml:"email"`

	// APIKey is an optional NCBI API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxResults caps the number of identifiers a search returns
	// (default 100, API maximum 10000).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// MaxRetries is the retry budget for rate-limited requests (default 3).
	// Retrying is a transport concern; the pipeline itself never retries.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}
