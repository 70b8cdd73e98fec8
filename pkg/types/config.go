package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-atlas/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the data-download stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the Paper Copilot data root.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// DataDir is the directory the per-venue exports are written to
	// (one subdirectory per venue).
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// ManifestPath optionally overrides the built-in venue manifest.
	ManifestPath string `json:"manifest_path,omitempty" yaml:"manifest_path,omitempty"`

	// MaxRetries is the number of retry attempts on rate-limited
	// responses (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// MergeConfig holds settings for the merge stage.
type MergeConfig struct {
	// DataDir is the directory holding per-venue JSON exports.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// OutputPath is the combined flat CSV file to write.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// CatalogPath, when set, additionally mirrors the merged table into
	// a SQLite catalog at this path.
	CatalogPath string `json:"catalog_path,omitempty" yaml:"catalog_path,omitempty"`

	// SubfieldsPath optionally overrides the built-in venue→subfield table.
	SubfieldsPath string `json:"subfields_path,omitempty" yaml:"subfields_path,omitempty"`
}

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	// Addr is the listen address (e.g. ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// DataPath is the flat table to serve: a .csv file or a SQLite
	// catalog (.db).
	DataPath string `json:"data_path" yaml:"data_path"`

	// ShutdownTimeout bounds graceful shutdown on SIGINT (default 5s).
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
}
