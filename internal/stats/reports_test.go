// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stats

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/paper-atlas/pkg/types"
)

func TestCountryTemporal(t *testing.T) {
	papers := []types.Paper{
		{Year: 2019, Countries: []string{"South Africa"}},
		{Year: 2020, Countries: []string{"South Africa", "Kenya"}},
		{Year: 2020, Countries: []string{"Kenya"}},
		{Year: 2020, Countries: []string{"Germany"}},      // outside the set
		{Year: 2015, Countries: []string{"South Africa"}}, // outside the range
	}

	r := CountryTemporal(papers, []string{"South Africa", "Kenya", "Egypt"}, 2019, 2021)

	if !reflect.DeepEqual(r.Years, []int{2019, 2020, 2021}) {
		t.Fatalf("Years = %v", r.Years)
	}
	if len(r.Rows) != 2 {
		t.Fatalf("Rows = %+v", r.Rows)
	}

	// South Africa has 2 papers; the 2020 multi-country paper is attributed
	// to its first in-set country, not to Kenya.
	if r.Rows[0].Country != "South Africa" || r.Rows[0].Total != 2 {
		t.Errorf("Rows[0] = %+v", r.Rows[0])
	}
	if !reflect.DeepEqual(r.Rows[0].ByYear, []int{1, 1, 0}) {
		t.Errorf("Rows[0].ByYear = %v", r.Rows[0].ByYear)
	}
	if r.Rows[1].Country != "Kenya" || r.Rows[1].Total != 1 {
		t.Errorf("Rows[1] = %+v", r.Rows[1])
	}
}

func TestCountryTemporalTieBreak(t *testing.T) {
	papers := []types.Paper{
		{Year: 2020, Countries: []string{"Kenya"}},
		{Year: 2020, Countries: []string{"Egypt"}},
	}
	r := CountryTemporal(papers, []string{"Kenya", "Egypt"}, 2020, 2020)
	if r.Rows[0].Country != "Egypt" || r.Rows[1].Country != "Kenya" {
		t.Errorf("tie break order = %+v", r.Rows)
	}
}

func TestTemporalWriteCSV(t *testing.T) {
	r := TemporalReport{
		Years: []int{2019, 2020},
		Rows:  []TemporalRow{{Country: "South Africa", ByYear: []int{1, 2}, Total: 3}},
	}

	var buf bytes.Buffer
	if err := r.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "Country,2019,2020,Total" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "South Africa,1,2,3" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestResearchAreas(t *testing.T) {
	papers := []types.Paper{
		{Subfield: "Artificial Intelligence"},
		{Subfield: "Artificial Intelligence"},
		{Subfield: "Computer Vision and Pattern Recognition"},
	}

	r := ResearchAreas(papers)
	if r.Total != 3 || len(r.Rows) != 2 {
		t.Fatalf("report = %+v", r)
	}
	if r.Rows[0].Area != "Artificial Intelligence" || r.Rows[0].Papers != 2 {
		t.Errorf("Rows[0] = %+v", r.Rows[0])
	}
	if r.Rows[0].Percentage != 66.7 {
		t.Errorf("Percentage = %v, want 66.7", r.Rows[0].Percentage)
	}
	// The long subfield label is shortened for display.
	if r.Rows[1].Area != "Computer Vision" {
		t.Errorf("Rows[1].Area = %q", r.Rows[1].Area)
	}
}

func TestAreaWriteCSV(t *testing.T) {
	r := AreaReport{Total: 2, Rows: []AreaRow{{Area: "Robotics", Papers: 2, Percentage: 100}}}

	var buf bytes.Buffer
	if err := r.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "Research_Area,Papers,Percentage" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Robotics,2,100.0" {
		t.Errorf("row = %q", lines[1])
	}
}
