// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-atlas/internal/classify"
	"github.com/pdiddy/paper-atlas/internal/dataset"
	"github.com/pdiddy/paper-atlas/internal/filter"
	"github.com/pdiddy/paper-atlas/internal/stats"
	"github.com/pdiddy/paper-atlas/pkg/types"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate regional CSV reports (temporal, areas)",
	Long: `Report writes analysis CSVs for a continent's papers: "temporal"
breaks counts down by country and year, "areas" by research subfield.
Both default to accepted papers only.`,
}

var reportTemporalCmd = &cobra.Command{
	Use:   "temporal",
	Short: "Country-by-year paper counts for a continent",
	RunE:  runReportTemporal,
}

var reportAreasCmd = &cobra.Command{
	Use:   "areas",
	Short: "Research-area breakdown for a continent",
	RunE:  runReportAreas,
}

func runReportTemporal(cmd *cobra.Command, args []string) error {
	papers, countries, err := reportPapers(cmd)
	if err != nil {
		return err
	}

	from, _ := cmd.Flags().GetInt("from")
	to, _ := cmd.Flags().GetInt("to")
	if from > to {
		return fmt.Errorf("invalid year range %d-%d", from, to)
	}

	report := stats.CountryTemporal(papers, countries, from, to)
	return report.WriteCSV(os.Stdout)
}

func runReportAreas(cmd *cobra.Command, args []string) error {
	papers, countries, err := reportPapers(cmd)
	if err != nil {
		return err
	}

	// Keep only papers with at least one author in the region.
	regional := filter.Search(papers, filter.Criteria{Countries: countries})
	report := stats.ResearchAreas(regional)
	return report.WriteCSV(os.Stdout)
}

// reportPapers loads the table and resolves the continent flag to its
// country set, applying the accepted-only default.
func reportPapers(cmd *cobra.Command) ([]types.Paper, []string, error) {
	dataPath := setting(cmd, "data", "server.data_path")
	table, err := dataset.Load(cmd.Context(), dataPath)
	if err != nil {
		return nil, nil, err
	}

	continent, _ := cmd.Flags().GetString("continent")
	countries := classify.CountriesIn(continent)
	if countries == nil {
		return nil, nil, fmt.Errorf("unknown continent %q", continent)
	}

	papers := table.Papers()
	if all, _ := cmd.Flags().GetBool("include-rejected"); !all {
		papers = filter.Search(papers, filter.Criteria{AcceptedOnly: true})
	}
	return papers, countries, nil
}

func init() {
	reportCmd.PersistentFlags().String("data", "all_papers.csv", "merged table to analyze (.csv or SQLite .db)")
	reportCmd.PersistentFlags().String("continent", "Africa", "continent to report on")
	reportCmd.PersistentFlags().Bool("include-rejected", false, "include rejected and withdrawn papers")

	reportTemporalCmd.Flags().Int("from", 2015, "first year of the report range")
	reportTemporalCmd.Flags().Int("to", 2024, "last year of the report range")

	reportCmd.AddCommand(reportTemporalCmd)
	reportCmd.AddCommand(reportAreasCmd)
	rootCmd.AddCommand(reportCmd)
}
