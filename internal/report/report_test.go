// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshintel/pharmascout/internal/pipeline"
	"github.com/meshintel/pharmascout/pkg/types"
)

func sampleResult() pipeline.Result {
	return pipeline.Result{
		Papers: []types.Paper{
			{
				PMID:                "11111111",
				Title:               "CAR-T cell persistence after anti-CD19 therapy",
				PubDate:             "2023-03-15",
				NonAcademicAuthors:  []string{"Anna Keller"},
				CompanyAffiliations: []string{"Novartis Pharma AG, Basel, Switzerland"},
				CorrespondingEmail:  "anna.keller@novartis.com",
			},
			{
				PMID:                "22222222",
				Title:               "Antibody stability under thermal stress",
				PubDate:             "2024",
				NonAcademicAuthors:  []string{"Yui Tanaka", "Zoe Park"},
				CompanyAffiliations: []string{"Chugai Pharmaceutical Co., Ltd., Tokyo", "Moderna Inc., Cambridge, MA"},
			},
		},
		Scanned: 5,
		Matched: 2,
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleResult()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Columns, records[0])
	assert.Equal(t, []string{
		"11111111",
		"CAR-T cell persistence after anti-CD19 therapy",
		"2023-03-15",
		"Anna Keller",
		"Novartis Pharma AG, Basel, Switzerland",
		"anna.keller@novartis.com",
	}, records[1])

	// Multi-valued cells are joined, not split into extra columns.
	assert.Equal(t, "Yui Tanaka; Zoe Park", records[2][3])
	assert.Equal(t, "", records[2][5])
}

func TestWriteCSVEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, pipeline.Result{}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
	assert.Equal(t, Columns, records[0])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var papers []types.Paper
	require.NoError(t, json.Unmarshal(buf.Bytes(), &papers))
	require.Len(t, papers, 2)
	assert.Equal(t, "11111111", papers[0].PMID)
	assert.Equal(t, []string{"Yui Tanaka", "Zoe Park"}, papers[1].NonAcademicAuthors)
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, sampleResult())

	out := buf.String()
	assert.Contains(t, out, "PubmedID")
	assert.Contains(t, out, "11111111")
	assert.Contains(t, out, "22222222")
	assert.Contains(t, out, "2 of 5 fetched records matched")
}

func TestTableEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, pipeline.Result{})

	assert.Equal(t, "No matching papers found.\n", buf.String())
}

func TestTableTruncatesLongTitles(t *testing.T) {
	res := pipeline.Result{
		Papers: []types.Paper{{
			PMID:                "33333333",
			Title:               strings.Repeat("x", 200),
			PubDate:             "2022",
			CompanyAffiliations: []string{"Acme Biotech"},
		}},
		Scanned: 1,
		Matched: 1,
	}

	var buf bytes.Buffer
	Table(&buf, res)

	assert.NotContains(t, buf.String(), strings.Repeat("x", 100))
	assert.Contains(t, buf.String(), "...")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 60))
	long := strings.Repeat("a", 80)
	got := truncate(long, 60)
	assert.Len(t, got, 60)
	assert.True(t, strings.HasSuffix(got, "..."))
}
