// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package filter evaluates search criteria against the in-memory paper
// table. Queries are a single linear scan: the table is loaded once,
// queries are infrequent relative to its size, and no index earns its keep.
package filter

import (
	"strings"

	"github.com/pdiddy/paper-atlas/pkg/types"
)

// Criteria holds the active predicates for one query. Zero values mean
// "no constraint"; all supplied predicates must hold (AND semantics).
type Criteria struct {
	// TitleQuery matches case-insensitively as a substring of the title.
	TitleQuery string

	// AuthorQuery matches case-insensitively as a substring of any author.
	AuthorQuery string

	// Countries, when non-empty, requires at least one record country to
	// be in the set.
	Countries []string

	// Venues, when non-empty, requires the record venue to be in the set
	// (case-insensitive).
	Venues []string

	// Subfields, when non-empty, requires the record subfield to be in
	// the set.
	Subfields []string

	// YearMin and YearMax bound the year inclusively; zero means
	// unbounded on that side.
	YearMin int
	YearMax int

	// AcceptedOnly excludes rejected and withdrawn papers.
	AcceptedOnly bool
}

// IsEmpty reports whether no predicate is active.
func (c Criteria) IsEmpty() bool {
	return c.TitleQuery == "" && c.AuthorQuery == "" &&
		len(c.Countries) == 0 && len(c.Venues) == 0 && len(c.Subfields) == 0 &&
		c.YearMin == 0 && c.YearMax == 0 && !c.AcceptedOnly
}

// Search scans papers in order and returns the records satisfying every
// active predicate, preserving load order. An empty result is not an
// error; an inverted year range simply matches nothing.
func Search(papers []types.Paper, c Criteria) []types.Paper {
	var matched []types.Paper
	for _, p := range papers {
		if Matches(p, c) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Matches reports whether a single record satisfies every active predicate.
func Matches(p types.Paper, c Criteria) bool {
	if c.TitleQuery != "" && !containsFold(p.Title, c.TitleQuery) {
		return false
	}
	if c.AuthorQuery != "" && !anyContainsFold(p.Authors, c.AuthorQuery) {
		return false
	}
	if len(c.Countries) > 0 && !intersects(p.Countries, c.Countries) {
		return false
	}
	if len(c.Venues) > 0 && !containsVenue(c.Venues, p.Venue) {
		return false
	}
	if len(c.Subfields) > 0 && !containsString(c.Subfields, p.Subfield) {
		return false
	}
	if c.YearMin != 0 && p.Year < c.YearMin {
		return false
	}
	if c.YearMax != 0 && p.Year > c.YearMax {
		return false
	}
	if c.AcceptedOnly && (p.Status == types.StatusRejected || p.Status == types.StatusWithdrawn) {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func anyContainsFold(items []string, substr string) bool {
	for _, item := range items {
		if containsFold(item, substr) {
			return true
		}
	}
	return false
}

func intersects(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

func containsVenue(set []string, venue string) bool {
	for _, v := range set {
		if strings.EqualFold(v, venue) {
			return true
		}
	}
	return false
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
