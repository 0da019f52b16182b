// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package medline decodes the nested XML document returned by the efetch
// endpoint into per-paper records. The walk is tolerant: missing fields
// degrade to placeholders or empty lists, and a record that cannot be used
// at all is skipped with a diagnostic rather than sinking the whole batch.
package medline

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/meshintel/pharmascout/pkg/types"
)

// Placeholders substituted when a record omits the field entirely.
const (
	NoTitle = "(no title)"
	NoDate  = "unknown"
)

var emailRe = regexp.MustCompile(`[\w.\-]+@[\w.\-]+`)

// Parse decodes an efetch document into papers, one per PubmedArticle node,
// document order preserved. Records without a PMID are skipped with a Warn
// diagnostic. A document that is not well-formed XML at the top level is an
// error; an empty document yields an empty slice.
func Parse(doc []byte, log zerolog.Logger) ([]types.Paper, error) {
	if len(doc) == 0 {
		return nil, nil
	}

	var set articleSet
	if err := xml.Unmarshal(doc, &set); err != nil {
		return nil, fmt.Errorf("decoding article set: %w", err)
	}

	papers := make([]types.Paper, 0, len(set.Articles))
	for i, a := range set.Articles {
		pmid := strings.TrimSpace(a.Citation.PMID)
		if pmid == "" {
			log.Warn().Int("position", i).Str("reason", "missing PMID").
				Msg("skipping unparseable record")
			continue
		}

		p := types.Paper{
			PMID:    pmid,
			Title:   strings.TrimSpace(a.Citation.Article.Title),
			PubDate: formatPubDate(a.Citation.Article.Journal.Issue.PubDate),
		}
		if p.Title == "" {
			p.Title = NoTitle
		}

		if al := a.Citation.Article.AuthorList; al != nil {
			for _, au := range al.Authors {
				name := authorName(au)
				if name == "" && au.ValidYN != "N" {
					log.Debug().Str("pmid", pmid).Msg("author node without a usable name")
				}
				if name == "" || au.ValidYN == "N" {
					continue
				}
				affs := affiliations(au)
				p.Authors = append(p.Authors, types.Author{Name: name, Affiliations: affs})
				if p.CorrespondingEmail == "" {
					p.CorrespondingEmail = findEmail(affs)
				}
			}
		}

		papers = append(papers, p)
	}
	return papers, nil
}

// authorName returns the display name: "ForeName LastName", falling back to
// the collective group name when individual name parts are absent.
func authorName(a author) string {
	name := strings.TrimSpace(strings.TrimSpace(a.ForeName) + " " + strings.TrimSpace(a.LastName))
	if name != "" {
		return name
	}
	return strings.TrimSpace(a.CollectiveName)
}

// affiliations merges the modern AffiliationInfo list with the legacy
// direct Affiliation element, dropping blanks.
func affiliations(a author) []string {
	var affs []string
	for _, info := range a.AffiliationInfo {
		if s := strings.TrimSpace(info.Affiliation); s != "" {
			affs = append(affs, s)
		}
	}
	if s := strings.TrimSpace(a.Affiliation); s != "" {
		affs = append(affs, s)
	}
	return affs
}

// findEmail returns the first email-shaped substring in the affiliation
// texts. Affiliations often end with "Electronic address: x@y.org." so a
// trailing period is stripped from the match.
func findEmail(affs []string) string {
	for _, aff := range affs {
		if m := emailRe.FindString(aff); m != "" {
			return strings.TrimRight(m, ".")
		}
	}
	return ""
}

// monthNames maps textual month abbreviations and names to numerics.
var monthNames = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// formatPubDate renders the structured date fields as "2006-01-02",
// degrading to "2006-01" or "2006" as fields go missing. A MedlineDate
// contributes its leading year. No date information at all yields the
// placeholder.
func formatPubDate(d pubDate) string {
	year, err := strconv.Atoi(strings.TrimSpace(d.Year))
	if err == nil && year > 0 {
		month := parseMonth(d.Month)
		if month == 0 {
			return fmt.Sprintf("%04d", year)
		}
		day, dayErr := strconv.Atoi(strings.TrimSpace(d.Day))
		if dayErr != nil || day < 1 || day > 31 {
			return fmt.Sprintf("%04d-%02d", year, month)
		}
		return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	}

	if d.MedlineDate != "" {
		if year := medlineYear(d.MedlineDate); year > 0 {
			return fmt.Sprintf("%04d", year)
		}
	}
	return NoDate
}

// parseMonth accepts a numeral ("3") or a name ("Mar", "March") and returns
// 0 when the month is absent or unrecognized.
func parseMonth(month string) time.Month {
	month = strings.TrimSpace(month)
	if month == "" {
		return 0
	}
	if m, err := strconv.Atoi(month); err == nil && m >= 1 && m <= 12 {
		return time.Month(m)
	}
	if m, ok := monthNames[strings.ToLower(month)]; ok {
		return m
	}
	return 0
}

// medlineYear pulls the leading year out of a free-form MedlineDate such as
// "2020 Jan-Feb", "2020 Spring", or "1998-1999".
func medlineYear(s string) int {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	yearStr, _, _ := strings.Cut(fields[0], "-")
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0
	}
	return year
}
