// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-atlas/internal/classify"
	"github.com/pdiddy/paper-atlas/internal/merge"
	"github.com/pdiddy/paper-atlas/pkg/types"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Combine per-venue exports into the flat paper table",
	Long: `Merge reads every JSON export under the data directory (one
subdirectory per venue, the year encoded in each filename), assigns a
subfield to each venue, and writes the combined flat CSV that serve and
search load. With --catalog the table is also mirrored into a SQLite
database usable as an alternate data source.`,
	RunE: runMerge,
}

func runMerge(cmd *cobra.Command, args []string) error {
	cfg := types.MergeConfig{
		DataDir:       setting(cmd, "data-dir", "merge.data_dir"),
		OutputPath:    setting(cmd, "output", "merge.output_path"),
		CatalogPath:   setting(cmd, "catalog", "merge.catalog_path"),
		SubfieldsPath: setting(cmd, "subfields", "merge.subfields_path"),
	}

	cls := classify.Default()
	if cfg.SubfieldsPath != "" {
		var err error
		cls, err = classify.FromFile(cfg.SubfieldsPath)
		if err != nil {
			return err
		}
	}

	summary, err := merge.Run(cmd.Context(), cfg, cls, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d file(s) failed to merge", summary.Failed)
	}
	return nil
}

func init() {
	mergeCmd.Flags().String("data-dir", "paperlists", "directory holding per-venue exports")
	mergeCmd.Flags().String("output", "all_papers.csv", "combined flat CSV to write")
	mergeCmd.Flags().String("catalog", "", "also write a SQLite catalog at this path")
	mergeCmd.Flags().String("subfields", "", "venue→subfield table YAML (default: built-in)")

	rootCmd.AddCommand(mergeCmd)
}
