// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/graphgen/internal/server"
	"github.com/pdiddy/graphgen/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve extraction and chart downloads over HTTP",
	Long: `Serve starts an HTTP server with an input form at /, a JSON extraction
endpoint at POST /api/extract, and chart image downloads at GET /api/chart.
It stops gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	sc := cfg.Serve
	if cmd.Flags().Changed("addr") {
		sc.Addr, _ = cmd.Flags().GetString("addr")
	}
	if cmd.Flags().Changed("delay") {
		sc.Delay, _ = cmd.Flags().GetDuration("delay")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(sc, cfg.Render, logger).Run(ctx)
}

func init() {
	d := types.DefaultConfig().Serve
	serveCmd.Flags().String("addr", d.Addr, "listen address")
	serveCmd.Flags().Duration("delay", d.Delay, "artificial delay before extraction responses (e.g. 500ms)")

	rootCmd.AddCommand(serveCmd)
}
