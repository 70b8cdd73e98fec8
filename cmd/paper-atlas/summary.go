// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-atlas/internal/dataset"
	"github.com/pdiddy/paper-atlas/internal/stats"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print summary statistics for the merged table",
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	dataPath := setting(cmd, "data", "server.data_path")
	table, err := dataset.Load(cmd.Context(), dataPath)
	if err != nil {
		return err
	}

	stats.Summarize(table.Papers()).Format(os.Stdout)
	return nil
}

func init() {
	summaryCmd.Flags().String("data", "all_papers.csv", "merged table to summarize (.csv or SQLite .db)")

	rootCmd.AddCommand(summaryCmd)
}
