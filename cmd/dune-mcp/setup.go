// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/deacix/dune-mcp/internal/config"
	"github.com/deacix/dune-mcp/internal/dune"
	"github.com/deacix/dune-mcp/internal/logging"
	"github.com/deacix/dune-mcp/pkg/mcp/tools"
)

// addCommonFlags registers the override flags shared by every command that
// loads configuration. Only flags the user actually sets override the config
// file and environment.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().String("api-key", "", "Dune API key (falls back to DUNE_API_KEY)")
	cmd.Flags().String("base-url", "", "Dune API base URL")
	cmd.Flags().String("toolsets", "", `comma-separated toolsets to enable, or "all"`)
	cmd.Flags().String("log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().String("log-format", "", "log format (json, text)")
}

// addServerFlags registers the HTTP listener flags.
func addServerFlags(cmd *cobra.Command) {
	cmd.Flags().String("host", "", "interface the HTTP server binds to")
	cmd.Flags().Int("port", 0, "port the HTTP server listens on")
}

// newLogger builds the process logger and installs it as the slog default.
// The stdio transport passes stderr because stdout carries the protocol
// stream.
func newLogger(cfg *config.Config, out io.Writer) *slog.Logger {
	logger := logging.New(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
		Output:    out,
	})
	slog.SetDefault(logger)
	return logger
}

// buildToolsets constructs the Dune API client and binds it to the
// configured toolsets. Toolsets left unbound register no tools.
func buildToolsets(cfg *config.Config, logger *slog.Logger) (*tools.Toolsets, error) {
	enabled, err := tools.ParseToolsets(cfg.MCP.Toolsets)
	if err != nil {
		return nil, err
	}

	client, err := dune.NewClient(dune.Config{
		APIKey:        cfg.Dune.APIKey,
		BaseURL:       cfg.Dune.BaseURL,
		Timeout:       cfg.Dune.Timeout,
		UploadTimeout: cfg.Dune.UploadTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}

	enabledNames := make([]string, 0, len(enabled))
	for _, ts := range enabled {
		enabledNames = append(enabledNames, string(ts))
	}
	logger.Info("Initializing MCP server", slog.Any("enabled_toolsets", enabledNames))

	toolsets := &tools.Toolsets{}
	for _, toolsetType := range enabled {
		switch toolsetType {
		case tools.ToolsetExecutions:
			toolsets.ExecutionToolset = client
			logger.Debug("Enabled MCP toolset", slog.String("toolset", "executions"))
		case tools.ToolsetQueries:
			toolsets.QueryToolset = client
			logger.Debug("Enabled MCP toolset", slog.String("toolset", "queries"))
		case tools.ToolsetMaterializedViews:
			toolsets.MaterializedViewToolset = client
			logger.Debug("Enabled MCP toolset", slog.String("toolset", "materialized_views"))
		case tools.ToolsetTables:
			toolsets.TableToolset = client
			logger.Debug("Enabled MCP toolset", slog.String("toolset", "tables"))
		case tools.ToolsetDatasets:
			toolsets.DatasetToolset = client
			logger.Debug("Enabled MCP toolset", slog.String("toolset", "datasets"))
		case tools.ToolsetPipelines:
			toolsets.PipelineToolset = client
			logger.Debug("Enabled MCP toolset", slog.String("toolset", "pipelines"))
		case tools.ToolsetUsage:
			toolsets.UsageToolset = client
			logger.Debug("Enabled MCP toolset", slog.String("toolset", "usage"))
		}
	}
	return toolsets, nil
}
