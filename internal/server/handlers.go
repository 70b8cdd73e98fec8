// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/paper-atlas/internal/classify"
	"github.com/pdiddy/paper-atlas/internal/dataset"
	"github.com/pdiddy/paper-atlas/internal/filter"
	"github.com/pdiddy/paper-atlas/pkg/types"
)

// searchResponse is the JSON envelope for query results.
type searchResponse struct {
	Results []types.Paper `json:"results"`
	Total   int           `json:"total"`
}

type pageData struct {
	Countries        []string
	VenuesBySubfield map[string][]string
	Continents       map[string][]string
	YearMin          int
	YearMax          int
	TotalPapers      int
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	yearMin, yearMax := s.table.YearRange()
	data := pageData{
		Countries:        s.table.Countries(),
		VenuesBySubfield: s.table.VenuesBySubfield(),
		Continents:       classify.Continents(),
		YearMin:          yearMin,
		YearMax:          yearMax,
		TotalPapers:      s.table.Len(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		http.Error(w, fmt.Sprintf("rendering page: %v", err), http.StatusInternalServerError)
	}
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	results := filter.Search(s.table.Papers(), criteria)

	w.Header().Set("Content-Type", "application/json")
	resp := searchResponse{Results: results, Total: len(results)}
	if resp.Results == nil {
		resp.Results = []types.Paper{}
	}
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	results := filter.Search(s.table.Papers(), criteria)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="papers.csv"`)
	if err := dataset.WriteExport(w, results); err != nil {
		// Headers are already out; nothing useful left to send.
		return
	}
}

// parseCriteria validates query parameters once at the boundary. Absent
// parameters mean "no constraint"; non-numeric years are a client error.
func parseCriteria(q url.Values) (filter.Criteria, error) {
	yearMin, err := parseYear(q.Get("year_min"), "year_min")
	if err != nil {
		return filter.Criteria{}, err
	}
	yearMax, err := parseYear(q.Get("year_max"), "year_max")
	if err != nil {
		return filter.Criteria{}, err
	}

	return filter.Criteria{
		TitleQuery:   q.Get("title"),
		AuthorQuery:  q.Get("author"),
		Countries:    multiValue(q, "countries"),
		Venues:       multiValue(q, "venues"),
		Subfields:    multiValue(q, "subfields"),
		YearMin:      yearMin,
		YearMax:      yearMax,
		AcceptedOnly: q.Get("accepted_only") == "true" || q.Get("accepted_only") == "1",
	}, nil
}

func parseYear(s, name string) (int, error) {
	if s == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be a year", name, s)
	}
	return year, nil
}

// multiValue reads repeated parameters in both the bare and the
// PHP-style bracket form the original page sends (countries[]=...).
func multiValue(q url.Values, name string) []string {
	var out []string
	for _, v := range append(append([]string{}, q[name+"[]"]...), q[name]...) {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
