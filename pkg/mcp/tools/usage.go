// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (t *Toolsets) RegisterGetUsage(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_usage",
		Description: "Get credit usage for the authenticated account, optionally within a date range.",
		InputSchema: createSchema(map[string]any{
			"start_date": stringProperty("Start of the reporting window, YYYY-MM-DD"),
			"end_date":   stringProperty("End of the reporting window, YYYY-MM-DD"),
		}, nil),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.UsageToolset.GetUsage(ctx, args.StartDate, args.EndDate)
		return handleToolResult(ctx, "get_usage", result, err)
	})
}
