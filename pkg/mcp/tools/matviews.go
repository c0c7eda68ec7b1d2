// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/deacix/dune-mcp/internal/dune"
)

func (t *Toolsets) RegisterGetMaterializedView(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_materialized_view",
		Description: "Get a materialized view's definition and refresh state by its full name.",
		InputSchema: createSchema(map[string]any{
			"name": stringProperty("Full name of the materialized view, e.g. \"dune.team.result_my_view\""),
		}, []string{"name"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		Name string `json:"name"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.MaterializedViewToolset.GetMaterializedView(ctx, args.Name)
		return handleToolResult(ctx, "get_materialized_view", result, err)
	})
}

func (t *Toolsets) RegisterUpsertMaterializedView(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name: "upsert_materialized_view",
		Description: "Create or update a materialized view backed by a saved query, optionally on a " +
			"cron refresh schedule.",
		InputSchema: createSchema(map[string]any{
			"name":            stringProperty("Full name of the materialized view, e.g. \"dune.team.result_my_view\""),
			"query_id":        intProperty("The query ID whose results the view materializes"),
			"cron_expression": stringProperty("Optional cron schedule for automatic refresh, e.g. \"0 * * * *\""),
			"performance":     stringProperty("Performance tier for refreshes: 'medium' (default) or 'large'"),
		}, []string{"name", "query_id"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		Name           string `json:"name"`
		QueryID        int    `json:"query_id"`
		CronExpression string `json:"cron_expression"`
		Performance    string `json:"performance"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.MaterializedViewToolset.UpsertMaterializedView(ctx, &dune.UpsertMaterializedViewRequest{
			Name:           args.Name,
			QueryID:        args.QueryID,
			CronExpression: args.CronExpression,
			Performance:    args.Performance,
		})
		return handleToolResult(ctx, "upsert_materialized_view", result, err)
	})
}

func (t *Toolsets) RegisterDeleteMaterializedView(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "delete_materialized_view",
		Description: "Delete a materialized view by its full name.",
		InputSchema: createSchema(map[string]any{
			"name": stringProperty("Full name of the materialized view to delete"),
		}, []string{"name"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		Name string `json:"name"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.MaterializedViewToolset.DeleteMaterializedView(ctx, args.Name)
		return handleToolResult(ctx, "delete_materialized_view", result, err)
	})
}

func (t *Toolsets) RegisterListMaterializedViews(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_materialized_views",
		Description: "List the materialized views owned by the authenticated account.",
		InputSchema: createSchema(map[string]any{
			"limit":  intProperty("Maximum number of views to return"),
			"offset": intProperty("Number of views to skip, for pagination"),
		}, nil),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		Limit  *int `json:"limit"`
		Offset *int `json:"offset"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.MaterializedViewToolset.ListMaterializedViews(ctx, args.Limit, args.Offset)
		return handleToolResult(ctx, "list_materialized_views", result, err)
	})
}

func (t *Toolsets) RegisterRefreshMaterializedView(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "refresh_materialized_view",
		Description: "Trigger an immediate refresh of a materialized view. Returns the refresh execution.",
		InputSchema: createSchema(map[string]any{
			"name":        stringProperty("Full name of the materialized view to refresh"),
			"performance": stringProperty("Performance tier: 'medium' (default) or 'large'"),
		}, []string{"name"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		Name        string `json:"name"`
		Performance string `json:"performance"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.MaterializedViewToolset.RefreshMaterializedView(ctx, args.Name, args.Performance)
		return handleToolResult(ctx, "refresh_materialized_view", result, err)
	})
}
