// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-atlas/internal/dataset"
	"github.com/pdiddy/paper-atlas/internal/filter"
	"github.com/pdiddy/paper-atlas/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Query the paper table from the command line",
	Long: `Search runs the same conjunctive filters as the web interface against
the merged table: substring match on title and author, set membership on
country, venue, and subfield, and an inclusive year range. Matching
papers are printed in load order as a table, JSON, or CSV.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	dataPath := setting(cmd, "data", "server.data_path")
	table, err := dataset.Load(cmd.Context(), dataPath)
	if err != nil {
		return err
	}

	criteria := criteriaFromFlags(cmd)
	results := filter.Search(table.Papers(), criteria)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	csvOutput, _ := cmd.Flags().GetBool("csv")
	switch {
	case jsonOutput:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case csvOutput:
		return dataset.WriteExport(os.Stdout, results)
	default:
		formatResults(results)
		return nil
	}
}

func criteriaFromFlags(cmd *cobra.Command) filter.Criteria {
	title, _ := cmd.Flags().GetString("title")
	author, _ := cmd.Flags().GetString("author")
	countries, _ := cmd.Flags().GetStringSlice("country")
	venues, _ := cmd.Flags().GetStringSlice("venue")
	subfields, _ := cmd.Flags().GetStringSlice("subfield")
	yearMin, _ := cmd.Flags().GetInt("year-from")
	yearMax, _ := cmd.Flags().GetInt("year-to")
	acceptedOnly, _ := cmd.Flags().GetBool("accepted-only")

	return filter.Criteria{
		TitleQuery:   title,
		AuthorQuery:  author,
		Countries:    countries,
		Venues:       venues,
		Subfields:    subfields,
		YearMin:      yearMin,
		YearMax:      yearMax,
		AcceptedOnly: acceptedOnly,
	}
}

func formatResults(results []types.Paper) {
	if len(results) == 0 {
		fmt.Println("No results found.")
		return
	}

	fmt.Fprintf(os.Stdout, "%-60s  %-24s  %-12s  %-4s  %s\n",
		"Title", "Authors", "Venue", "Year", "Status")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	for _, p := range results {
		title := p.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-60s  %-24s  %-12s  %-4d  %s\n",
			title, formatAuthors(p.Authors), p.Venue, p.Year, p.Status)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 24)
	default:
		return truncate(authors[0], 18) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func init() {
	searchCmd.Flags().String("data", "all_papers.csv", "merged table to query (.csv or SQLite .db)")
	searchCmd.Flags().String("title", "", "title substring (case-insensitive)")
	searchCmd.Flags().String("author", "", "author substring (case-insensitive)")
	searchCmd.Flags().StringSlice("country", nil, "restrict to countries (repeatable)")
	searchCmd.Flags().StringSlice("venue", nil, "restrict to venues (repeatable)")
	searchCmd.Flags().StringSlice("subfield", nil, "restrict to subfields (repeatable)")
	searchCmd.Flags().Int("year-from", 0, "earliest year (inclusive, 0 = unbounded)")
	searchCmd.Flags().Int("year-to", 0, "latest year (inclusive, 0 = unbounded)")
	searchCmd.Flags().Bool("accepted-only", false, "exclude rejected and withdrawn papers")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().Bool("csv", false, "output results as CSV")

	rootCmd.AddCommand(searchCmd)
}
