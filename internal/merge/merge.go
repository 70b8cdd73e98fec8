// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge combines per-venue JSON exports into the single flat
// table the rest of the system serves. Each subdirectory of the data
// directory is one venue; each file in it is one year's export, with the
// year encoded in the filename (e.g. aistats1997.json).
package merge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/paper-atlas/internal/catalog"
	"github.com/pdiddy/paper-atlas/internal/classify"
	"github.com/pdiddy/paper-atlas/internal/dataset"
	"github.com/pdiddy/paper-atlas/pkg/types"
)

// rawPaper mirrors the fields of the upstream per-venue exports that the
// flat table keeps.
type rawPaper struct {
	Title            string      `json:"title"`
	Author           string      `json:"author"`
	Aff              string      `json:"aff"`
	AffCountryUnique string      `json:"aff_country_unique"`
	Status           string      `json:"status"`
	Track            string      `json:"track"`
	GsCitation       json.Number `json:"gs_citation"`
}

// Summary holds counts from a merge run.
type Summary struct {
	Files   int
	Papers  int
	Skipped int
	Failed  int
}

// Run merges every venue export under cfg.DataDir into cfg.OutputPath,
// assigning subfields via cls. Files without a recognizable year or with
// malformed JSON are skipped or counted as failed; the run continues.
// When cfg.CatalogPath is set the merged table is also mirrored into a
// SQLite catalog.
func Run(ctx context.Context, cfg types.MergeConfig, cls *classify.Classifier, w io.Writer) (Summary, error) {
	entries, err := os.ReadDir(cfg.DataDir)
	if err != nil {
		return Summary{}, fmt.Errorf("reading data directory %s: %w", cfg.DataDir, err)
	}

	var summary Summary
	var papers []types.Paper

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		venue := strings.ToUpper(entry.Name())
		fmt.Fprintf(w, "processing %s\n", venue)

		files, err := filepath.Glob(filepath.Join(cfg.DataDir, entry.Name(), "*.json"))
		if err != nil {
			return summary, fmt.Errorf("listing %s: %w", entry.Name(), err)
		}
		sort.Strings(files)

		for _, file := range files {
			select {
			case <-ctx.Done():
				return summary, ctx.Err()
			default:
			}

			year := yearFromFilename(filepath.Base(file))
			if year == 0 {
				fmt.Fprintf(w, "skipped %s: no year in filename\n", filepath.Base(file))
				summary.Skipped++
				continue
			}

			batch, err := readExport(file, venue, year, cls)
			if err != nil {
				fmt.Fprintf(w, "failed  %s: %v\n", filepath.Base(file), err)
				summary.Failed++
				continue
			}
			papers = append(papers, batch...)
			summary.Files++
			summary.Papers += len(batch)
		}
	}

	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		return summary, fmt.Errorf("creating %s: %w", cfg.OutputPath, err)
	}
	defer out.Close()

	if err := dataset.WriteFlat(out, papers); err != nil {
		return summary, fmt.Errorf("writing %s: %w", cfg.OutputPath, err)
	}

	if cfg.CatalogPath != "" {
		store, err := catalog.Open(cfg.CatalogPath)
		if err != nil {
			return summary, err
		}
		defer store.Close()
		if err := store.Replace(ctx, papers); err != nil {
			return summary, fmt.Errorf("writing catalog %s: %w", cfg.CatalogPath, err)
		}
	}

	fmt.Fprintf(w, "\nfiles: %d, papers: %d, skipped: %d, failed: %d\n",
		summary.Files, summary.Papers, summary.Skipped, summary.Failed)
	return summary, nil
}

func readExport(path, venue string, year int, cls *classify.Classifier) ([]types.Paper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raws []rawPaper
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	papers := make([]types.Paper, 0, len(raws))
	for _, r := range raws {
		papers = append(papers, types.Paper{
			Title:        cleanText(r.Title),
			Authors:      splitNames(r.Author),
			Venue:        venue,
			Year:         year,
			Countries:    dataset.SplitList(r.AffCountryUnique),
			Institutions: dataset.SplitList(r.Aff),
			Subfield:     cls.Subfield(venue),
			Status:       types.NormalizeStatus(r.Status),
			RawStatus:    cleanText(r.Status),
			Track:        cleanText(r.Track),
			Citations:    citations(r.GsCitation),
		})
	}
	return papers, nil
}

// yearFromFilename finds the first plausible four-digit year in a name
// like "aistats1997.json". Returns 0 when none is found.
func yearFromFilename(name string) int {
	base := strings.TrimSuffix(name, ".json")
	for i := 0; i+4 <= len(base); i++ {
		year, err := strconv.Atoi(base[i : i+4])
		if err == nil && year >= 1900 && year <= 2030 {
			return year
		}
	}
	return 0
}

// cleanText collapses internal whitespace and trims the ends.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// splitNames splits an author field. Exports use ";" between names; older
// ones use ", ".
func splitNames(s string) []string {
	if strings.Contains(s, ";") {
		return dataset.SplitList(s)
	}
	var names []string
	for _, part := range strings.Split(s, ",") {
		if part = cleanText(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

// citations parses the upstream citation count; -1 and anything
// unparseable mean unknown and map to 0.
func citations(n json.Number) int {
	v, err := n.Int64()
	if err != nil || v < 0 {
		return 0
	}
	return int(v)
}
