// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/pdiddy/paper-atlas/internal/classify"
	"github.com/pdiddy/paper-atlas/pkg/types"
)

// TemporalRow is one country's paper counts over the report years.
type TemporalRow struct {
	Country string
	ByYear  []int
	Total   int
}

// TemporalReport breaks papers down by country and year. Each paper is
// attributed to its primary country: the first of its countries that lies
// in the report's country set.
type TemporalReport struct {
	Years []int
	Rows  []TemporalRow
}

// CountryTemporal builds a temporal report for the inclusive year range
// [fromYear, toYear], restricted to the given country set. Papers whose
// countries all fall outside the set are dropped.
func CountryTemporal(papers []types.Paper, countrySet []string, fromYear, toYear int) TemporalReport {
	inSet := make(map[string]bool, len(countrySet))
	for _, c := range countrySet {
		inSet[c] = true
	}

	years := make([]int, 0, toYear-fromYear+1)
	for y := fromYear; y <= toYear; y++ {
		years = append(years, y)
	}

	perCountry := map[string][]int{}
	for _, p := range papers {
		if p.Year < fromYear || p.Year > toYear {
			continue
		}
		primary := ""
		for _, c := range p.Countries {
			if inSet[c] {
				primary = c
				break
			}
		}
		if primary == "" {
			continue
		}
		if perCountry[primary] == nil {
			perCountry[primary] = make([]int, len(years))
		}
		perCountry[primary][p.Year-fromYear]++
	}

	rows := make([]TemporalRow, 0, len(perCountry))
	for country, byYear := range perCountry {
		total := 0
		for _, n := range byYear {
			total += n
		}
		rows = append(rows, TemporalRow{Country: country, ByYear: byYear, Total: total})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].Country < rows[j].Country
	})

	return TemporalReport{Years: years, Rows: rows}
}

// WriteCSV writes the report with one column per year plus a total.
func (r TemporalReport) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"Country"}
	for _, y := range r.Years {
		header = append(header, strconv.Itoa(y))
	}
	header = append(header, "Total")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, row := range r.Rows {
		rec := []string{row.Country}
		for _, n := range row.ByYear {
			rec = append(rec, strconv.Itoa(n))
		}
		rec = append(rec, strconv.Itoa(row.Total))
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// AreaRow is one research area's share of the report papers.
type AreaRow struct {
	Area       string
	Papers     int
	Percentage float64
}

// AreaReport breaks papers down by subfield.
type AreaReport struct {
	Total int
	Rows  []AreaRow
}

// ResearchAreas counts papers by subfield, with percentages rounded to
// one decimal place and display names shortened for charts.
func ResearchAreas(papers []types.Paper) AreaReport {
	counts := map[string]int{}
	for _, p := range papers {
		counts[p.Subfield]++
	}

	report := AreaReport{Total: len(papers)}
	for area, n := range counts {
		pct := 0.0
		if report.Total > 0 {
			pct = math.Round(float64(n)/float64(report.Total)*1000) / 10
		}
		report.Rows = append(report.Rows, AreaRow{
			Area:       classify.DisplayName(area),
			Papers:     n,
			Percentage: pct,
		})
	}
	sort.Slice(report.Rows, func(i, j int) bool {
		if report.Rows[i].Papers != report.Rows[j].Papers {
			return report.Rows[i].Papers > report.Rows[j].Papers
		}
		return report.Rows[i].Area < report.Rows[j].Area
	})
	return report
}

// WriteCSV writes the research-area breakdown.
func (r AreaReport) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Research_Area", "Papers", "Percentage"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range r.Rows {
		rec := []string{
			row.Area,
			strconv.Itoa(row.Papers),
			strconv.FormatFloat(row.Percentage, 'f', 1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
