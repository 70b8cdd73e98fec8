// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"testing"

	"github.com/pdiddy/paper-atlas/pkg/types"
)

var corpus = []types.Paper{
	{
		Title:     "Deep Nets",
		Authors:   []string{"Alice Smith"},
		Venue:     "ICML",
		Year:      2019,
		Countries: []string{"United States"},
		Subfield:  "Artificial Intelligence",
		Status:    types.StatusAccepted,
	},
	{
		Title:     "Graph Theory",
		Authors:   []string{"Carol Wu", "Thabo Nkosi"},
		Venue:     "NeurIPS",
		Year:      2021,
		Countries: []string{"South Africa"},
		Subfield:  "Artificial Intelligence",
		Status:    types.StatusAccepted,
	},
	{
		Title:     "Scene Flow Estimation",
		Authors:   []string{"Dieter Braun"},
		Venue:     "CVPR",
		Year:      2020,
		Countries: []string{"Germany", "United States"},
		Subfield:  "Computer Vision and Pattern Recognition",
		Status:    types.StatusRejected,
	},
}

func titles(papers []types.Paper) []string {
	out := make([]string, len(papers))
	for i, p := range papers {
		out[i] = p.Title
	}
	return out
}

func equalTitles(got []types.Paper, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, p := range got {
		if p.Title != want[i] {
			return false
		}
	}
	return true
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name string
		c    Criteria
		want []string
	}{
		{"empty criteria match all", Criteria{},
			[]string{"Deep Nets", "Graph Theory", "Scene Flow Estimation"}},
		{"title substring case-insensitive", Criteria{TitleQuery: "deep"},
			[]string{"Deep Nets"}},
		{"title no match", Criteria{TitleQuery: "quantum"}, nil},
		{"author substring case-insensitive", Criteria{AuthorQuery: "NKOSI"},
			[]string{"Graph Theory"}},
		{"country exact", Criteria{Countries: []string{"United States"}},
			[]string{"Deep Nets", "Scene Flow Estimation"}},
		{"country intersect any", Criteria{Countries: []string{"Germany", "South Africa"}},
			[]string{"Graph Theory", "Scene Flow Estimation"}},
		{"venue case-insensitive", Criteria{Venues: []string{"neurips"}},
			[]string{"Graph Theory"}},
		{"unknown venue set", Criteria{Venues: []string{"AAAI"}}, nil},
		{"subfield exact", Criteria{Subfields: []string{"Computer Vision and Pattern Recognition"}},
			[]string{"Scene Flow Estimation"}},
		{"year min inclusive", Criteria{YearMin: 2020},
			[]string{"Graph Theory", "Scene Flow Estimation"}},
		{"year max inclusive", Criteria{YearMax: 2019},
			[]string{"Deep Nets"}},
		{"year range both bounds", Criteria{YearMin: 2020, YearMax: 2020},
			[]string{"Scene Flow Estimation"}},
		{"inverted year range matches nothing", Criteria{YearMin: 2022, YearMax: 2019}, nil},
		{"accepted only", Criteria{AcceptedOnly: true},
			[]string{"Deep Nets", "Graph Theory"}},
		{"conjunction", Criteria{YearMin: 2020, Countries: []string{"United States"}},
			[]string{"Scene Flow Estimation"}},
		{"conjunction no match", Criteria{TitleQuery: "deep", YearMin: 2020}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(corpus, tt.c)
			if !equalTitles(got, tt.want...) {
				t.Errorf("Search = %v, want %v", titles(got), tt.want)
			}
		})
	}
}

func TestSearchYearBoundOnTwoRecords(t *testing.T) {
	papers := []types.Paper{
		{Title: "Deep Nets", Venue: "ICML", Year: 2019, Countries: []string{"United States"}},
		{Title: "Graph Theory", Venue: "NeurIPS", Year: 2021, Countries: []string{"South Africa"}},
	}
	got := Search(papers, Criteria{YearMin: 2020})
	if !equalTitles(got, "Graph Theory") {
		t.Errorf("Search = %v, want only Graph Theory", titles(got))
	}
}

func TestSearchPreservesOrder(t *testing.T) {
	got := Search(corpus, Criteria{Subfields: []string{"Artificial Intelligence"}})
	if !equalTitles(got, "Deep Nets", "Graph Theory") {
		t.Errorf("order = %v", titles(got))
	}
}

func TestMatchesUnknownStatusSurvivesAcceptedOnly(t *testing.T) {
	p := types.Paper{Title: "Mystery", Status: types.StatusUnknown}
	if !Matches(p, Criteria{AcceptedOnly: true}) {
		t.Error("unknown status should not be excluded by AcceptedOnly")
	}
}

func TestIsEmpty(t *testing.T) {
	if !(Criteria{}).IsEmpty() {
		t.Error("zero Criteria should be empty")
	}
	if (Criteria{YearMin: 2020}).IsEmpty() {
		t.Error("YearMin should make Criteria non-empty")
	}
	if (Criteria{AcceptedOnly: true}).IsEmpty() {
		t.Error("AcceptedOnly should make Criteria non-empty")
	}
}
