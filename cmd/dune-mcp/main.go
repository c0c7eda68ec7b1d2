// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := newRootCmd()
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dune-mcp",
		Short: "MCP server for the Dune Analytics API",
		Long: `dune-mcp exposes the Dune Analytics API as MCP tools: query execution,
saved query management, materialized views, uploaded tables, datasets,
pipelines, and usage reporting.

It serves two transports: streamable HTTP for shared deployments (serve)
and stdio for hosts that spawn the server as a subprocess (stdio).`,
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newSTDIOCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return rootCmd
}
