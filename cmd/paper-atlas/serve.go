// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-atlas/internal/dataset"
	"github.com/pdiddy/paper-atlas/internal/server"
	"github.com/pdiddy/paper-atlas/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search interface over HTTP",
	Long: `Serve loads the merged paper table into memory and exposes it on three
routes: the search page at /, JSON results at /search, and a CSV download
at /export_csv. The table is loaded once at startup and never reloaded;
restart the server after re-running merge.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := types.ServerConfig{
		Addr:     setting(cmd, "addr", "server.addr"),
		DataPath: setting(cmd, "data", "server.data_path"),
	}

	table, err := dataset.Load(cmd.Context(), cfg.DataPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "loaded %d papers from %s\n", table.Len(), cfg.DataPath)

	srv, err := server.New(table)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "listening on %s\n", cfg.Addr)
	return srv.Run(ctx, cfg)
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("data", "all_papers.csv", "merged table to serve (.csv or SQLite .db)")

	rootCmd.AddCommand(serveCmd)
}
