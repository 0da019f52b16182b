// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/meshintel/pharmascout/internal/pipeline"
)

const schema = `
CREATE TABLE IF NOT EXISTS papers (
	pmid                 TEXT PRIMARY KEY,
	title                TEXT NOT NULL,
	pub_date             TEXT NOT NULL,
	non_academic_authors TEXT NOT NULL,
	company_affiliations TEXT NOT NULL,
	corresponding_email  TEXT,
	query                TEXT NOT NULL,
	retrieved_at         TEXT NOT NULL
);`

// ExportSQLite writes the result set to a SQLite database at path, one row
// per paper with the same columns as the CSV output plus the query and a
// retrieval timestamp. The file is a single-run output artifact like the
// CSV; re-running with the same path replaces rows by PMID.
func ExportSQLite(path, query string, res pipeline.Result) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating papers table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO papers
		(pmid, title, pub_date, non_academic_authors, company_affiliations, corresponding_email, query, retrieved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, p := range res.Papers {
		_, err := stmt.Exec(
			p.PMID,
			p.Title,
			p.PubDate,
			strings.Join(p.NonAcademicAuthors, listSep),
			strings.Join(p.CompanyAffiliations, listSep),
			p.CorrespondingEmail,
			query,
			now,
		)
		if err != nil {
			return fmt.Errorf("inserting paper %s: %w", p.PMID, err)
		}
	}
	return tx.Commit()
}
