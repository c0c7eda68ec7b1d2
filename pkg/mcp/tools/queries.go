// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/deacix/dune-mcp/internal/dune"
)

func (t *Toolsets) RegisterCreateQuery(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name: "create_query",
		Description: "Create a new saved query on Dune. Returns the created query including its " +
			"query_id, which execute_query accepts.",
		InputSchema: createSchema(map[string]any{
			"name":        stringProperty("Name of the query"),
			"query_sql":   stringProperty("The DuneSQL statement for the query"),
			"description": stringProperty("Optional description of what the query does"),
			"is_private":  boolProperty("Whether the query is private (default true)"),
			"parameters": stringProperty(
				"Optional JSON array of parameter definitions, e.g. " +
					"[{\"key\": \"wallet\", \"value\": \"0x...\", \"type\": \"text\"}]"),
			"tags": stringProperty("Optional comma-separated tags, e.g. \"defi, ethereum\""),
		}, []string{"name", "query_sql"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		Name        string `json:"name"`
		QuerySQL    string `json:"query_sql"`
		Description string `json:"description"`
		IsPrivate   *bool  `json:"is_private"`
		Parameters  string `json:"parameters"`
		Tags        string `json:"tags"`
	}) (*mcp.CallToolResult, any, error) {
		params, err := decodeParameters(args.Parameters)
		if err != nil {
			return handleToolResult(ctx, "create_query", nil, err)
		}
		result, err := t.QueryToolset.CreateQuery(ctx, &dune.CreateQueryRequest{
			Name:        args.Name,
			QuerySQL:    args.QuerySQL,
			Description: args.Description,
			IsPrivate:   isPrivateDefault(args.IsPrivate),
			Parameters:  params,
			Tags:        splitTags(args.Tags),
		})
		return handleToolResult(ctx, "create_query", result, err)
	})
}

func (t *Toolsets) RegisterReadQuery(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "read_query",
		Description: "Read a saved query's metadata and SQL by its query ID.",
		InputSchema: createSchema(map[string]any{
			"query_id": intProperty("The query ID to read"),
		}, []string{"query_id"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		QueryID int `json:"query_id"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.QueryToolset.ReadQuery(ctx, args.QueryID)
		return handleToolResult(ctx, "read_query", result, err)
	})
}

func (t *Toolsets) RegisterUpdateQuery(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name: "update_query",
		Description: "Update an existing saved query. Only the provided fields change; omitted " +
			"fields keep their current values.",
		InputSchema: createSchema(map[string]any{
			"query_id":    intProperty("The query ID to update"),
			"name":        stringProperty("New name for the query"),
			"query_sql":   stringProperty("New DuneSQL statement for the query"),
			"description": stringProperty("New description for the query"),
			"parameters":  stringProperty("JSON array of parameter definitions to replace the existing ones"),
			"tags":        stringProperty("Comma-separated tags to replace the existing ones"),
		}, []string{"query_id"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		QueryID     int     `json:"query_id"`
		Name        *string `json:"name"`
		QuerySQL    *string `json:"query_sql"`
		Description *string `json:"description"`
		Parameters  string  `json:"parameters"`
		Tags        string  `json:"tags"`
	}) (*mcp.CallToolResult, any, error) {
		params, err := decodeParameters(args.Parameters)
		if err != nil {
			return handleToolResult(ctx, "update_query", nil, err)
		}
		result, err := t.QueryToolset.UpdateQuery(ctx, args.QueryID, &dune.UpdateQueryRequest{
			Name:        args.Name,
			QuerySQL:    args.QuerySQL,
			Description: args.Description,
			Parameters:  params,
			Tags:        splitTags(args.Tags),
		})
		return handleToolResult(ctx, "update_query", result, err)
	})
}

func (t *Toolsets) RegisterArchiveQuery(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "archive_query",
		Description: "Archive a saved query. Archived queries are hidden from listings but not deleted.",
		InputSchema: createSchema(map[string]any{
			"query_id": intProperty("The query ID to archive"),
		}, []string{"query_id"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		QueryID int `json:"query_id"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.QueryToolset.ArchiveQuery(ctx, args.QueryID)
		return handleToolResult(ctx, "archive_query", result, err)
	})
}

func (t *Toolsets) RegisterUnarchiveQuery(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "unarchive_query",
		Description: "Restore a previously archived query.",
		InputSchema: createSchema(map[string]any{
			"query_id": intProperty("The query ID to unarchive"),
		}, []string{"query_id"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		QueryID int `json:"query_id"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.QueryToolset.UnarchiveQuery(ctx, args.QueryID)
		return handleToolResult(ctx, "unarchive_query", result, err)
	})
}

func (t *Toolsets) RegisterPrivateQuery(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "private_query",
		Description: "Make a saved query private so only its owner can see it.",
		InputSchema: createSchema(map[string]any{
			"query_id": intProperty("The query ID to make private"),
		}, []string{"query_id"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		QueryID int `json:"query_id"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.QueryToolset.PrivateQuery(ctx, args.QueryID)
		return handleToolResult(ctx, "private_query", result, err)
	})
}

func (t *Toolsets) RegisterUnprivateQuery(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "unprivate_query",
		Description: "Make a saved query public.",
		InputSchema: createSchema(map[string]any{
			"query_id": intProperty("The query ID to make public"),
		}, []string{"query_id"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		QueryID int `json:"query_id"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.QueryToolset.UnprivateQuery(ctx, args.QueryID)
		return handleToolResult(ctx, "unprivate_query", result, err)
	})
}

func (t *Toolsets) RegisterListQueries(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_queries",
		Description: "List the saved queries owned by the authenticated account.",
		InputSchema: createSchema(map[string]any{
			"limit":  intProperty("Maximum number of queries to return"),
			"offset": intProperty("Number of queries to skip, for pagination"),
		}, nil),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		Limit  *int `json:"limit"`
		Offset *int `json:"offset"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.QueryToolset.ListQueries(ctx, args.Limit, args.Offset)
		return handleToolResult(ctx, "list_queries", result, err)
	})
}

func (t *Toolsets) RegisterGetQueryPipeline(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name: "get_query_pipeline",
		Description: "Get the pipeline definition of a query: the materialized views it depends on " +
			"and the order they refresh in.",
		InputSchema: createSchema(map[string]any{
			"query_id": intProperty("The query ID to inspect"),
		}, []string{"query_id"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		QueryID int `json:"query_id"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.QueryToolset.GetQueryPipeline(ctx, args.QueryID)
		return handleToolResult(ctx, "get_query_pipeline", result, err)
	})
}
