// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pharmascout pipeline.
package types

// Author is one entry of a paper's author list together with the affiliation
// strings the source record attaches to it. An author with no affiliation
// data carries an empty slice, never a nil-pointer sentinel.
type Author struct {
	// Name is the display name: "ForeName LastName" for individuals, or the
	// collective group name when the record has no individual name parts.
	Name string `json:"name" yaml:"name"`

	// Affiliations lists the free-text affiliation strings in record order.
	Affiliations []string `json:"affiliations,omitempty" yaml:"affiliations,omitempty"`
}

// Paper holds the fields extracted from one PubMed article record, plus the
// classification results the filter stage attaches before output.
type Paper struct {
	// PMID is the PubMed identifier of the record.
	PMID string `json:"pmid" yaml:"pmid"`

	// Title is the article title, or a placeholder when the record has none.
	Title string `json:"title" yaml:"title"`

	// PubDate is the best-effort publication date: "2006-01-02", "2006-01",
	// "2006", or a placeholder when the record carries no date at all.
	PubDate string `json:"pub_date" yaml:"pub_date"`

	// Authors lists the paper authors in record order.
	Authors []Author `json:"authors" yaml:"authors"`

	// NonAcademicAuthors are the names of authors whose affiliation
	// classified as commercial, sorted and deduplicated.
	NonAcademicAuthors []string `json:"non_academic_authors,omitempty" yaml:"non_academic_authors,omitempty"`

	// CompanyAffiliations are the matching affiliation strings, sorted and
	// deduplicated. Non-empty exactly when the paper passed the filter.
	CompanyAffiliations []string `json:"company_affiliations,omitempty" yaml:"company_affiliations,omitempty"`

	// CorrespondingEmail is the first email address found in any affiliation
	// text. Best-effort; may be empty.
	CorrespondingEmail string `json:"corresponding_email,omitempty" yaml:"corresponding_email,omitempty"`
}

// HasNonAcademicAuthor reports whether at least one author affiliation
// classified as commercial. True for every paper in a filtered result set.
func (p Paper) HasNonAcademicAuthor() bool {
	return len(p.CompanyAffiliations) > 0
}
