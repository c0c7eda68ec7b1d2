// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/deacix/dune-mcp/internal/config"
	mcpserver "github.com/deacix/dune-mcp/pkg/mcp"
)

func newSTDIOCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "stdio",
		Short: "Run the MCP server over stdio",
		Long: `stdio runs the MCP server on standard input and output, the transport
MCP clients such as Claude Desktop spawn subprocesses with. Logs go to
stderr because stdout carries the protocol stream.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSTDIO(configPath, cmd.Flags())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	addCommonFlags(cmd)
	return cmd
}

func runSTDIO(configPath string, flags *pflag.FlagSet) error {
	cfg, err := config.Load(configPath, flags)
	if err != nil {
		return err
	}

	// stdout is the protocol stream, so logs must not touch it.
	logger := newLogger(cfg, os.Stderr)

	toolsets, err := buildToolsets(cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	server := mcpserver.NewSTDIO(toolsets)
	logger.Info("dune-mcp server listening on stdio")
	return server.Run(ctx, &gomcp.StdioTransport{})
}
