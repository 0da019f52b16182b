// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/meshintel/pharmascout/internal/pipeline"
	"github.com/meshintel/pharmascout/pkg/types"
)

// ResultFile is the on-disk snapshot of one run: the query, the settings
// that produced the result, the filtered papers, and summary counts. It
// records a run for later inspection; it is never fed back into the
// pipeline.
type ResultFile struct {
	Query   string        `yaml:"query"`
	Config  RunSettings   `yaml:"config"`
	Papers  []types.Paper `yaml:"papers"`
	Summary RunSummary    `yaml:"summary"`
}

// RunSettings stores the client settings worth reproducing a run with.
type RunSettings struct {
	MaxResults int    `yaml:"max_results"`
	Email      string `yaml:"email,omitempty"`
}

// RunSummary stores result counts and a timestamp.
type RunSummary struct {
	Scanned   int       `yaml:"scanned"`
	Matched   int       `yaml:"matched"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteResultFile saves the run snapshot to a YAML file.
func WriteResultFile(path, query string, cfg types.EutilsConfig, res pipeline.Result) error {
	rf := ResultFile{
		Query: query,
		Config: RunSettings{
			MaxResults: cfg.MaxResults,
			Email:      cfg.Email,
		},
		Papers: res.Papers,
		Summary: RunSummary{
			Scanned:   res.Scanned,
			Matched:   res.Matched,
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously saved result file from disk.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &rf, nil
}
