// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the loaded paper table over HTTP: a search page,
// a JSON query endpoint, and a CSV export. Handlers are stateless and the
// table is immutable after load, so concurrent requests need no
// coordination.
package server

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/pdiddy/paper-atlas/internal/dataset"
	"github.com/pdiddy/paper-atlas/pkg/types"
)

//go:embed index.html
var templateFS embed.FS

// Server serves search requests against one loaded table.
type Server struct {
	table *dataset.Table
	tmpl  *template.Template
}

// New builds a Server over table. The table is injected rather than held
// as package state so the handlers stay testable in isolation.
func New(table *dataset.Table) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "index.html")
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &Server{table: table, tmpl: tmpl}, nil
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /search", s.handleSearch)
	mux.HandleFunc("GET /export_csv", s.handleExport)
	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully within
// cfg.ShutdownTimeout.
func (s *Server) Run(ctx context.Context, cfg types.ServerConfig) error {
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: s.Handler(),
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
