// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"reflect"
	"testing"

	"github.com/pdiddy/paper-atlas/pkg/types"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"United States", []string{"United States"}},
		{"United States; Canada", []string{"United States", "Canada"}},
		{"United States;Canada", []string{"United States", "Canada"}},
		{"a; ; b", []string{"a", "b"}},
		{";;", nil},
	}
	for _, tt := range tests {
		if got := SplitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestJoinListRoundTrip(t *testing.T) {
	items := []string{"Alice Smith", "Bob Jones", "Carol Wu"}
	if got := SplitList(JoinList(items)); !reflect.DeepEqual(got, items) {
		t.Errorf("round trip = %v, want %v", got, items)
	}
}

func sampleTable() *Table {
	return New([]types.Paper{
		{Title: "Deep Nets", Venue: "ICML", Year: 2019, Subfield: "Artificial Intelligence",
			Countries: []string{"United States"}},
		{Title: "Graph Theory", Venue: "NeurIPS", Year: 2021, Subfield: "Artificial Intelligence",
			Countries: []string{"South Africa", "United States"}},
		{Title: "Scene Flow", Venue: "CVPR", Year: 2020, Subfield: "Computer Vision and Pattern Recognition",
			Countries: []string{"Germany"}},
	})
}

func TestTableFacets(t *testing.T) {
	table := sampleTable()

	if table.Len() != 3 {
		t.Fatalf("Len = %d, want 3", table.Len())
	}

	wantCountries := []string{"Germany", "South Africa", "United States"}
	if got := table.Countries(); !reflect.DeepEqual(got, wantCountries) {
		t.Errorf("Countries = %v, want %v", got, wantCountries)
	}

	wantVenues := []string{"CVPR", "ICML", "NeurIPS"}
	if got := table.Venues(); !reflect.DeepEqual(got, wantVenues) {
		t.Errorf("Venues = %v, want %v", got, wantVenues)
	}

	grouped := table.VenuesBySubfield()
	if got := grouped["Artificial Intelligence"]; !reflect.DeepEqual(got, []string{"ICML", "NeurIPS"}) {
		t.Errorf("VenuesBySubfield[AI] = %v", got)
	}
	if got := grouped["Computer Vision and Pattern Recognition"]; !reflect.DeepEqual(got, []string{"CVPR"}) {
		t.Errorf("VenuesBySubfield[CV] = %v", got)
	}

	min, max := table.YearRange()
	if min != 2019 || max != 2021 {
		t.Errorf("YearRange = (%d, %d), want (2019, 2021)", min, max)
	}
}

func TestYearRangeEmpty(t *testing.T) {
	min, max := New(nil).YearRange()
	if min != 0 || max != 0 {
		t.Errorf("YearRange on empty table = (%d, %d), want (0, 0)", min, max)
	}
}

func TestPapersLoadOrder(t *testing.T) {
	table := sampleTable()
	papers := table.Papers()
	want := []string{"Deep Nets", "Graph Theory", "Scene Flow"}
	for i, p := range papers {
		if p.Title != want[i] {
			t.Errorf("papers[%d].Title = %q, want %q", i, p.Title, want[i])
		}
	}
}
