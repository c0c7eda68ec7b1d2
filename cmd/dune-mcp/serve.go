// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/deacix/dune-mcp/internal/config"
	loggermw "github.com/deacix/dune-mcp/internal/middleware/logger"
	mcpserver "github.com/deacix/dune-mcp/pkg/mcp"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over streamable HTTP",
		Long: `serve runs the MCP server on an HTTP listener. The MCP endpoint is
/mcp; /health and /ready answer probe requests.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath, cmd.Flags())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	addServerFlags(cmd)
	addCommonFlags(cmd)
	return cmd
}

func runServe(configPath string, flags *pflag.FlagSet) error {
	cfg, err := config.Load(configPath, flags)
	if err != nil {
		return err
	}

	logger := newLogger(cfg, os.Stdout)

	toolsets, err := buildToolsets(cfg, logger)
	if err != nil {
		return err
	}

	// Create shutdown context
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	mux := http.NewServeMux()
	mux.Handle("/mcp", mcpserver.NewHTTPServer(toolsets))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK")) // Ignore write errors for health checks
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Ready")) // Ignore write errors for health checks
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      loggermw.Middleware(logger)(mux),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	errCh := make(chan error, 1)
	go func() {
		logger.Info("dune-mcp server listening", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or a listener failure
	select {
	case err := <-errCh:
		logger.Error("Server error", slog.Any("error", err))
		return err
	case <-ctx.Done():
	}

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", slog.Any("error", err))
		return err
	}

	logger.Info("Server stopped gracefully")
	return nil
}
