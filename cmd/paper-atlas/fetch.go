// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-atlas/internal/fetch"
	"github.com/pdiddy/paper-atlas/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download per-venue paper exports from Paper Copilot",
	Long: `Fetch downloads the JSON exports listed in the venue manifest into
one subdirectory per venue. Files already present are skipped unless
--force is given; individual download failures are reported and the run
continues.

The data originates from Paper Copilot; use of it is subject to their
terms and conditions.`,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	retries, _ := cmd.Flags().GetInt("max-retries")

	cfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: "paper-atlas/" + version,
		},
		BaseURL:      setting(cmd, "base-url", "fetch.base_url"),
		DataDir:      setting(cmd, "data-dir", "fetch.data_dir"),
		ManifestPath: setting(cmd, "manifest", "fetch.manifest_path"),
		MaxRetries:   retries,
	}

	manifest, err := fetch.LoadManifest(cfg.ManifestPath)
	if err != nil {
		return err
	}

	summary, err := fetch.Run(cmd.Context(), cfg, manifest, force, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d file(s) failed to download", summary.Failed)
	}
	return nil
}

func init() {
	fetchCmd.Flags().String("base-url", fetch.DefaultBaseURL, "data root URL")
	fetchCmd.Flags().String("data-dir", "paperlists", "directory for per-venue exports")
	fetchCmd.Flags().String("manifest", "", "venue manifest YAML (default: built-in)")
	fetchCmd.Flags().Bool("force", false, "re-download files that already exist")
	fetchCmd.Flags().Duration("timeout", 30*time.Second, "per-request timeout")
	fetchCmd.Flags().Int("max-retries", 5, "retries on rate-limited responses")

	rootCmd.AddCommand(fetchCmd)
}
