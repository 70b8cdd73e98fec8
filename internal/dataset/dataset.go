// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset loads the merged paper table into memory and exposes it
// as an immutable, load-ordered collection with facet accessors. The table
// is read once at startup and never reloaded.
package dataset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/paper-atlas/pkg/types"
)

// ListSeparator joins multi-valued fields (authors, countries,
// institutions) in flat files.
const ListSeparator = "; "

// LoadError reports a missing or malformed data file. It is fatal: the
// process cannot serve without a loaded table.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading dataset %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Table is the in-memory paper collection. It is immutable after
// construction, so concurrent readers need no locking.
type Table struct {
	papers []types.Paper
}

// New builds a Table from papers in load order. The slice is owned by the
// Table afterwards.
func New(papers []types.Paper) *Table {
	return &Table{papers: papers}
}

// Papers returns all records in load order. Callers must not mutate the
// returned slice.
func (t *Table) Papers() []types.Paper { return t.papers }

// Len returns the record count.
func (t *Table) Len() int { return len(t.papers) }

// Countries returns the sorted set of countries appearing in any record.
func (t *Table) Countries() []string {
	seen := make(map[string]bool)
	for _, p := range t.papers {
		for _, c := range p.Countries {
			seen[c] = true
		}
	}
	return sortedKeys(seen)
}

// Venues returns the sorted set of venue identifiers.
func (t *Table) Venues() []string {
	seen := make(map[string]bool)
	for _, p := range t.papers {
		seen[p.Venue] = true
	}
	return sortedKeys(seen)
}

// VenuesBySubfield groups the venue set by subfield label, each group
// sorted, for the search page facet list.
func (t *Table) VenuesBySubfield() map[string][]string {
	seen := make(map[string]map[string]bool)
	for _, p := range t.papers {
		if seen[p.Subfield] == nil {
			seen[p.Subfield] = make(map[string]bool)
		}
		seen[p.Subfield][p.Venue] = true
	}
	grouped := make(map[string][]string, len(seen))
	for subfield, venues := range seen {
		grouped[subfield] = sortedKeys(venues)
	}
	return grouped
}

// YearRange returns the minimum and maximum year in the table, or (0, 0)
// for an empty table.
func (t *Table) YearRange() (min, max int) {
	for i, p := range t.papers {
		if i == 0 || p.Year < min {
			min = p.Year
		}
		if p.Year > max {
			max = p.Year
		}
	}
	return min, max
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SplitList parses a separator-joined multi-valued field, dropping empty
// entries. Both ";" and the canonical "; " are accepted.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinList is the inverse of SplitList.
func JoinList(items []string) string {
	return strings.Join(items, ListSeparator)
}
