// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/paper-atlas/pkg/types"
)

// flatColumns is the column order of the merged flat file.
var flatColumns = []string{
	"Title", "Year", "Conference", "Subfield", "Authors", "Author_Institutions",
	"Author_Countries", "Status", "Track", "Citations",
}

// requiredColumns must be present in the header for a file to load.
var requiredColumns = []string{"Title", "Year", "Conference"}

// exportColumns is the fixed column order of query-result CSV exports.
var exportColumns = []string{
	"Title", "Authors", "Venue", "Year", "Countries", "Status", "Subfield", "Citations",
}

// LoadCSV reads the merged flat file at path into a Table. A missing file
// or a header without the required columns yields a *LoadError.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	papers, err := readFlat(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return New(papers), nil
}

func readFlat(r io.Reader) ([]types.Paper, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var papers []types.Paper
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		year, err := strconv.Atoi(strings.TrimSpace(field(row, "Year")))
		if err != nil {
			return nil, fmt.Errorf("line %d: non-numeric year %q", line, field(row, "Year"))
		}

		raw := field(row, "Status")
		papers = append(papers, types.Paper{
			Title:        field(row, "Title"),
			Authors:      SplitList(field(row, "Authors")),
			Venue:        field(row, "Conference"),
			Year:         year,
			Countries:    SplitList(field(row, "Author_Countries")),
			Institutions: SplitList(field(row, "Author_Institutions")),
			Subfield:     field(row, "Subfield"),
			Status:       types.NormalizeStatus(raw),
			RawStatus:    raw,
			Track:        field(row, "Track"),
			Citations:    parseCitations(field(row, "Citations")),
		})
	}
	return papers, nil
}

// parseCitations tolerates blank and malformed counts; the source uses -1
// for unknown, which maps to 0.
func parseCitations(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// WriteFlat writes papers in the merged flat-file format.
func WriteFlat(w io.Writer, papers []types.Paper) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(flatColumns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, p := range papers {
		row := []string{
			p.Title,
			strconv.Itoa(p.Year),
			p.Venue,
			p.Subfield,
			JoinList(p.Authors),
			JoinList(p.Institutions),
			JoinList(p.Countries),
			p.RawStatus,
			p.Track,
			strconv.Itoa(p.Citations),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteExport writes query results as CSV in the fixed export column
// order. Multi-valued fields are flattened with ListSeparator; no other
// transformation is applied.
func WriteExport(w io.Writer, papers []types.Paper) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportColumns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, p := range papers {
		row := []string{
			p.Title,
			JoinList(p.Authors),
			p.Venue,
			strconv.Itoa(p.Year),
			JoinList(p.Countries),
			string(p.Status),
			p.Subfield,
			strconv.Itoa(p.Citations),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
