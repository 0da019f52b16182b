// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package medline

import "encoding/xml"

// PubMed efetch XML structures, trimmed to the fields the pipeline reads.
// The full record format is documented at
// https://www.nlm.nih.gov/bsd/licensee/elements_descriptions.html.

type articleSet struct {
	XMLName  xml.Name  `xml:"PubmedArticleSet"`
	Articles []article `xml:"PubmedArticle"`
}

type article struct {
	Citation citation `xml:"MedlineCitation"`
}

type citation struct {
	PMID    string        `xml:"PMID"`
	Article articleDetail `xml:"Article"`
}

type articleDetail struct {
	Title      string      `xml:"ArticleTitle"`
	Journal    journal     `xml:"Journal"`
	AuthorList *authorList `xml:"AuthorList"`
}

type journal struct {
	Issue journalIssue `xml:"JournalIssue"`
}

type journalIssue struct {
	PubDate pubDate `xml:"PubDate"`
}

// pubDate carries either structured Year/Month/Day fields or a free-form
// MedlineDate string ("2020 Jan-Feb", "1998-1999"). Month may be a numeral
// or a three-letter abbreviation.
type pubDate struct {
	Year        string `xml:"Year"`
	Month       string `xml:"Month"`
	Day         string `xml:"Day"`
	MedlineDate string `xml:"MedlineDate"`
}

type authorList struct {
	Authors []author `xml:"Author"`
}

type author struct {
	ValidYN        string `xml:"ValidYN,attr"`
	LastName       string `xml:"LastName"`
	ForeName       string `xml:"ForeName"`
	CollectiveName string `xml:"CollectiveName"`

	// AffiliationInfo is the per-author form used since 2014; Affiliation is
	// the legacy element that earlier records attach directly to the author.
	// Both occur in the wild, so the parser reads both.
	AffiliationInfo []affiliationInfo `xml:"AffiliationInfo"`
	Affiliation     string            `xml:"Affiliation"`
}

type affiliationInfo struct {
	Affiliation string `xml:"Affiliation"`
}
