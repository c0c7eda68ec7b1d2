// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/cobra"

	"github.com/deacix/dune-mcp/internal/config"
)

func newConfigCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `config resolves the configuration the same way serve and stdio do
(defaults, then config file, then environment, then flags) and prints
the result as YAML. The API key is redacted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Dump(cmd.OutOrStdout(), configPath, cmd.Flags())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	addServerFlags(cmd)
	addCommonFlags(cmd)
	return cmd
}
