package store

import "time"

// Source is a bitmask recording which data origins have contributed to a
// docket. Merging the imported corpus ORs SourceCorpus into the mask.
type Source int64

const (
	SourceDefault Source = 0
	SourceScraper Source = 1
	SourceRECAP   Source = 2
	SourceCorpus  Source = 4
)

// Has reports whether the mask includes origin.
func (s Source) Has(origin Source) bool {
	return s&origin != 0
}

// OpinionTypeCombined tags the synthetic opinion created when the imported
// casebody cannot be aligned against the cluster's existing opinions; it
// holds the entire imported markup verbatim.
const OpinionTypeCombined = "combined"

// Docket is the parent record of a cluster: the court filing the case
// belongs to.
type Docket struct {
	ID           int64
	DocketNumber string
	Source       Source
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Cluster is one judicial decision: the authoritative case record the merge
// engine reconciles imported corpus data into.
type Cluster struct {
	ID                     int64
	DocketID               int64
	CaseName               string
	CaseNameFull           string
	Judges                 string
	DateFiled              string
	DateFiledIsApproximate bool
	OtherDates             string
	Attorneys              string
	Syllabus               string
	Summary                string
	History                string
	Headnotes              string
	Correction             string
	CrossReference         string
	Disposition            string
	// ImportPath locates the imported corpus JSON for this cluster,
	// empty when no corpus document has been discovered for it.
	ImportPath string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Opinion is one opinion within a cluster. Body text lives in one of the
// representation fields; BodySource lists them in consultation priority.
type Opinion struct {
	ID                int64
	ClusterID         int64
	Position          int
	Type              string
	AuthorStr         string
	AuthorID          *int64
	HTMLWithCitations string
	HTML              string
	HTMLLawbox        string
	PlainText         string
	ImportedXML       string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ClusterColumn names a writable text column on a cluster row. The set is
// closed: merge code addresses fields through these constants, never
// through runtime strings.
type ClusterColumn int

const (
	ColCaseName ClusterColumn = iota
	ColCaseNameFull
	ColJudges
	ColOtherDates
	ColAttorneys
	ColSyllabus
	ColSummary
	ColHistory
	ColHeadnotes
	ColCorrection
	ColCrossReference
	ColDisposition
)

var clusterColumnNames = map[ClusterColumn]string{
	ColCaseName:       "case_name",
	ColCaseNameFull:   "case_name_full",
	ColJudges:         "judges",
	ColOtherDates:     "other_dates",
	ColAttorneys:      "attorneys",
	ColSyllabus:       "syllabus",
	ColSummary:        "summary",
	ColHistory:        "history",
	ColHeadnotes:      "headnotes",
	ColCorrection:     "correction",
	ColCrossReference: "cross_reference",
	ColDisposition:    "disposition",
}

func (c ClusterColumn) String() string {
	if name, ok := clusterColumnNames[c]; ok {
		return name
	}
	return "unknown"
}

// Value reads the column's current value from a cluster.
func (c ClusterColumn) Value(cluster *Cluster) string {
	switch c {
	case ColCaseName:
		return cluster.CaseName
	case ColCaseNameFull:
		return cluster.CaseNameFull
	case ColJudges:
		return cluster.Judges
	case ColOtherDates:
		return cluster.OtherDates
	case ColAttorneys:
		return cluster.Attorneys
	case ColSyllabus:
		return cluster.Syllabus
	case ColSummary:
		return cluster.Summary
	case ColHistory:
		return cluster.History
	case ColHeadnotes:
		return cluster.Headnotes
	case ColCorrection:
		return cluster.Correction
	case ColCrossReference:
		return cluster.CrossReference
	case ColDisposition:
		return cluster.Disposition
	default:
		return ""
	}
}
