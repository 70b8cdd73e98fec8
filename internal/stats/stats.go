// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stats computes summary statistics and regional reports over the
// merged paper table.
package stats

import (
	"fmt"
	"io"
	"sort"

	"github.com/pdiddy/paper-atlas/pkg/types"
)

// Count pairs a label with an occurrence count.
type Count struct {
	Name string
	N    int
}

// Summary holds the dataset-wide statistics shown by the summary command.
type Summary struct {
	Total         int
	YearMin       int
	YearMax       int
	Venues        []Count
	Years         []Count
	Statuses      []Count
	Subfields     []Count
	Countries     []Count
	Tracks        []Count
	CitationTotal int
	CitationMax   int
	CitationMean  float64
	ZeroCitations int
}

// Summarize computes a Summary in one pass over the table.
func Summarize(papers []types.Paper) Summary {
	var (
		s         = Summary{Total: len(papers)}
		venues    = map[string]int{}
		years     = map[string]int{}
		statuses  = map[string]int{}
		subfields = map[string]int{}
		countries = map[string]int{}
		tracks    = map[string]int{}
	)

	for i, p := range papers {
		venues[p.Venue]++
		years[fmt.Sprintf("%d", p.Year)]++
		statuses[string(p.Status)]++
		subfields[p.Subfield]++
		for _, c := range p.Countries {
			countries[c]++
		}
		if p.Track != "" {
			tracks[p.Track]++
		}

		s.CitationTotal += p.Citations
		if p.Citations > s.CitationMax {
			s.CitationMax = p.Citations
		}
		if p.Citations == 0 {
			s.ZeroCitations++
		}

		if i == 0 || p.Year < s.YearMin {
			s.YearMin = p.Year
		}
		if p.Year > s.YearMax {
			s.YearMax = p.Year
		}
	}

	if s.Total > 0 {
		s.CitationMean = float64(s.CitationTotal) / float64(s.Total)
	}

	s.Venues = byCountDesc(venues)
	s.Years = byNameAsc(years)
	s.Statuses = byCountDesc(statuses)
	s.Subfields = byCountDesc(subfields)
	s.Countries = byCountDesc(countries)
	s.Tracks = byCountDesc(tracks)
	return s
}

// Format writes the summary as a human-readable report.
func (s Summary) Format(w io.Writer) {
	fmt.Fprintf(w, "Total papers: %d\n", s.Total)
	if s.Total == 0 {
		return
	}
	fmt.Fprintf(w, "Year range: %d-%d\n", s.YearMin, s.YearMax)

	fmt.Fprintf(w, "\nVenues (%d):\n", len(s.Venues))
	writeCounts(w, topN(s.Venues, 10))

	fmt.Fprintln(w, "\nPapers per year:")
	writeCounts(w, s.Years)

	fmt.Fprintln(w, "\nStatus:")
	writeCounts(w, s.Statuses)

	fmt.Fprintln(w, "\nSubfields:")
	writeCounts(w, s.Subfields)

	fmt.Fprintf(w, "\nCountries (%d):\n", len(s.Countries))
	writeCounts(w, topN(s.Countries, 10))

	if len(s.Tracks) > 0 {
		fmt.Fprintln(w, "\nTracks:")
		writeCounts(w, topN(s.Tracks, 10))
	}

	fmt.Fprintf(w, "\nCitations: total %d, mean %.2f, max %d, zero %d\n",
		s.CitationTotal, s.CitationMean, s.CitationMax, s.ZeroCitations)
}

func writeCounts(w io.Writer, counts []Count) {
	for _, c := range counts {
		fmt.Fprintf(w, "  %-40s  %d\n", c.Name, c.N)
	}
}

func topN(counts []Count, n int) []Count {
	if len(counts) > n {
		return counts[:n]
	}
	return counts
}

// byCountDesc sorts descending by count, breaking ties by name for
// deterministic output.
func byCountDesc(m map[string]int) []Count {
	counts := collect(m)
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].N != counts[j].N {
			return counts[i].N > counts[j].N
		}
		return counts[i].Name < counts[j].Name
	})
	return counts
}

func byNameAsc(m map[string]int) []Count {
	counts := collect(m)
	sort.Slice(counts, func(i, j int) bool { return counts[i].Name < counts[j].Name })
	return counts
}

func collect(m map[string]int) []Count {
	counts := make([]Count, 0, len(m))
	for name, n := range m {
		counts = append(counts, Count{Name: name, N: n})
	}
	return counts
}
