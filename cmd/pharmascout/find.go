package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meshintel/pharmascout/internal/eutils"
	"github.com/meshintel/pharmascout/internal/pipeline"
	"github.com/meshintel/pharmascout/internal/report"
	"github.com/meshintel/pharmascout/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "pharmascout/0.1"
	toolName         = "pharmascout"
)

var findCmd = &cobra.Command{
	Use:   `find "<query>"`,
	Short: "Find papers with pharma or biotech affiliated authors",
	Long: `Find submits a free-text query to PubMed, fetches the matching records,
and keeps papers with at least one author whose affiliation looks
commercial (pharma, biotech, and similar) rather than academic.

By default results are printed as a table. --file writes CSV to a path;
--format switches the stdout rendering; --save and --sqlite additionally
write a YAML snapshot or a SQLite results file.`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().StringP("email", "e", "", "contact email sent to NCBI (required)")
	findCmd.Flags().StringP("file", "f", "", "write results as CSV to this path")
	findCmd.Flags().String("format", "table", "stdout format: table, csv, or json")
	findCmd.Flags().String("save", "", "also save a YAML result file to this path")
	findCmd.Flags().String("sqlite", "", "also export results to a SQLite file at this path")
	findCmd.Flags().Int("max-results", 0, "maximum identifiers to retrieve (default 100)")
	findCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	findCmd.Flags().BoolP("debug", "d", false, "enable debug logging")

	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(args[0])
	if query == "" {
		return fmt.Errorf("query must not be empty")
	}

	email, _ := cmd.Flags().GetString("email")
	if email == "" {
		email = viper.GetString("email")
	}
	email = secretDefault("contact-email", email)
	if email == "" {
		return fmt.Errorf("a contact email is required: use --email, the config file, PHARMASCOUT_EMAIL, or .secrets/contact-email")
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults == 0 {
		maxResults = viper.GetInt("max_results")
	}

	debug, _ := cmd.Flags().GetBool("debug")
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger().Level(level)

	cfg := types.EutilsConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		Tool:       toolName,
		Email:      email,
		APIKey:     secretDefault("ncbi-api-key", viper.GetString("api_key")),
		MaxResults: maxResults,
	}

	log.Debug().Str("query", query).Int("max_results", cfg.MaxResults).Msg("starting run")

	res, err := pipeline.Run(cmd.Context(), eutils.New(cfg), query, log)
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := report.WriteResultFile(path, query, cfg, res); err != nil {
			return err
		}
		log.Info().Str("path", path).Msg("result file saved")
	}
	if path, _ := cmd.Flags().GetString("sqlite"); path != "" {
		if err := report.ExportSQLite(path, query, res); err != nil {
			return err
		}
		log.Info().Str("path", path).Msg("SQLite export written")
	}

	if path, _ := cmd.Flags().GetString("file"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		if err := report.WriteCSV(f, res); err != nil {
			return err
		}
		log.Info().Str("path", path).Int("papers", res.Matched).Msg("CSV written")
		return nil
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "csv":
		return report.WriteCSV(os.Stdout, res)
	case "json":
		return report.WriteJSON(os.Stdout, res)
	case "table":
		report.Table(os.Stdout, res)
		return nil
	default:
		return fmt.Errorf("unknown format %q: use table, csv, or json", format)
	}
}
