// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Status is the normalized review outcome for a paper.
type Status string

const (
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusWithdrawn Status = "withdrawn"
	StatusUnknown   Status = "unknown"
)

// Paper holds one row of the merged metadata table.
type Paper struct {
	// Title is the whitespace-normalized paper title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Venue is the uppercase conference or journal identifier (e.g. "ICML").
	Venue string `json:"venue" yaml:"venue"`

	// Year is the publication year, derived from the source filename.
	Year int `json:"year" yaml:"year"`

	// Countries lists author-affiliated countries; may be empty.
	Countries []string `json:"countries" yaml:"countries"`

	// Institutions lists author affiliations; may be empty.
	Institutions []string `json:"institutions,omitempty" yaml:"institutions,omitempty"`

	// Subfield is the research-area label derived from Venue.
	Subfield string `json:"subfield" yaml:"subfield"`

	// Status is the normalized review outcome.
	Status Status `json:"status" yaml:"status"`

	// RawStatus is the status string as published by the source
	// (e.g. "Poster", "Desk Reject").
	RawStatus string `json:"raw_status,omitempty" yaml:"raw_status,omitempty"`

	// Track is the submission track, when the source records one.
	Track string `json:"track,omitempty" yaml:"track,omitempty"`

	// Citations is the citation count; 0 when unknown.
	Citations int `json:"citations" yaml:"citations"`
}

// rejectedMarkers and withdrawnMarkers match the raw strings the source
// data uses for non-accepted papers. Venue-specific long forms (e.g.
// "NeurIPS 2023 Conference Withdrawn Submission") are matched by substring.
var (
	rejectedMarkers  = []string{"desk reject", "reject"}
	withdrawnMarkers = []string{"withdraw"}
)

// NormalizeStatus maps a raw status string to a Status. Empty input maps
// to unknown; any other unrecognized value counts as accepted, because the
// source venues only annotate papers that did not make it in.
func NormalizeStatus(raw string) Status {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return StatusUnknown
	}
	for _, m := range withdrawnMarkers {
		if strings.Contains(s, m) {
			return StatusWithdrawn
		}
	}
	for _, m := range rejectedMarkers {
		if strings.Contains(s, m) {
			return StatusRejected
		}
	}
	return StatusAccepted
}
