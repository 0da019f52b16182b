// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders a pipeline result for its consumers: a console
// table, CSV, JSON, a YAML result file, and a SQLite export. One row per
// paper; the column set is the structural contract toward downstream tools.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/meshintel/pharmascout/internal/pipeline"
	"github.com/meshintel/pharmascout/pkg/types"
)

// Columns lists the output columns in order.
var Columns = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

// listSep joins multi-valued columns inside a single cell.
const listSep = "; "

const maxTitleWidth = 60

// Table writes a human-readable result table to w, followed by a one-line
// summary of how many fetched records matched.
func Table(w io.Writer, res pipeline.Result) {
	if len(res.Papers) == 0 {
		fmt.Fprintln(w, "No matching papers found.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := table.Row{}
	for _, c := range Columns {
		header = append(header, c)
	}
	t.AppendHeader(header)

	for _, p := range res.Papers {
		t.AppendRow(row(p, truncate(p.Title, maxTitleWidth)))
	}
	t.Render()

	fmt.Fprintf(w, "%d of %d fetched records matched\n", res.Matched, res.Scanned)
}

// WriteCSV writes a header row plus one row per paper.
func WriteCSV(w io.Writer, res pipeline.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, p := range res.Papers {
		rec := []string{
			p.PMID,
			p.Title,
			p.PubDate,
			strings.Join(p.NonAcademicAuthors, listSep),
			strings.Join(p.CompanyAffiliations, listSep),
			p.CorrespondingEmail,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", p.PMID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the filtered papers as an indented JSON array.
func WriteJSON(w io.Writer, res pipeline.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res.Papers)
}

func row(p types.Paper, title string) table.Row {
	return table.Row{
		p.PMID,
		title,
		p.PubDate,
		strings.Join(p.NonAcademicAuthors, listSep),
		strings.Join(p.CompanyAffiliations, listSep),
		p.CorrespondingEmail,
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
