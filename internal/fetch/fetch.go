// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads per-venue JSON exports from Paper Copilot into
// the local data directory, driven by a YAML manifest of venues and files.
package fetch

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-atlas/pkg/types"
)

// DefaultBaseURL is the Paper Copilot data root.
const DefaultBaseURL = "https://papercopilot.com/data"

//go:embed manifest.yaml
var defaultManifest []byte

// Manifest lists the files to download, one entry per venue directory.
type Manifest struct {
	Venues map[string][]string `yaml:"venues"`
}

// LoadManifest reads a manifest from path, or returns the built-in one
// when path is empty.
func LoadManifest(path string) (Manifest, error) {
	data := defaultManifest
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return Manifest{}, fmt.Errorf("reading manifest: %w", err)
		}
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing manifest: %w", err)
	}
	if len(m.Venues) == 0 {
		return Manifest{}, fmt.Errorf("manifest lists no venues")
	}
	return m, nil
}

// Summary holds counts from a fetch run.
type Summary struct {
	Downloaded int
	Skipped    int
	Failed     int
}

// Run downloads every manifest file into cfg.DataDir/<venue>/. Existing
// files are skipped unless force is set. Individual failures are reported
// to w and counted; the run continues, matching the tolerant behavior of
// the rest of the data pipeline.
func Run(ctx context.Context, cfg types.FetchConfig, m Manifest, force bool, w io.Writer) (Summary, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := &http.Client{Timeout: cfg.Timeout}

	venues := make([]string, 0, len(m.Venues))
	for v := range m.Venues {
		venues = append(venues, v)
	}
	sort.Strings(venues)

	var summary Summary
	for _, venue := range venues {
		dir := filepath.Join(cfg.DataDir, venue)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return summary, fmt.Errorf("creating %s: %w", dir, err)
		}

		for _, name := range m.Venues[venue] {
			dest := filepath.Join(dir, name)
			if !force {
				if _, err := os.Stat(dest); err == nil {
					summary.Skipped++
					continue
				}
			}

			url := fmt.Sprintf("%s/%s/%s", baseURL, venue, name)
			if err := download(ctx, client, cfg, url, dest, w); err != nil {
				fmt.Fprintf(w, "failed  %s: %v\n", name, err)
				summary.Failed++
				continue
			}
			fmt.Fprintf(w, "fetched %s\n", name)
			summary.Downloaded++
		}
	}

	fmt.Fprintf(w, "\ndownloaded: %d, skipped: %d, failed: %d\n",
		summary.Downloaded, summary.Skipped, summary.Failed)
	return summary, nil
}

func download(ctx context.Context, client *http.Client, cfg types.FetchConfig, url, dest string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := doWithRetry(ctx, client, req, cfg.MaxRetries, w)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	// Write to a temp file first so an interrupted download never leaves
	// a truncated export behind.
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".fetch-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dest)
}
