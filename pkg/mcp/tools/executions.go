// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/deacix/dune-mcp/internal/dune"
)

func (t *Toolsets) RegisterExecuteQuery(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name: "execute_query",
		Description: "Execute a saved Dune query by ID. Returns an execution_id and initial state; " +
			"poll get_execution_status and fetch rows with get_execution_result.",
		InputSchema: createSchema(map[string]any{
			"query_id":    intProperty("The Dune query ID to execute"),
			"performance": stringProperty("Performance tier: 'medium' (default) or 'large' for complex queries"),
			"query_parameters": stringProperty(
				"Optional JSON object of query parameters, e.g. {\"param1\": \"value1\"}"),
		}, []string{"query_id"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		QueryID         int    `json:"query_id"`
		Performance     string `json:"performance"`
		QueryParameters string `json:"query_parameters"`
	}) (*mcp.CallToolResult, any, error) {
		params, err := decodeObject("query_parameters", args.QueryParameters)
		if err != nil {
			return handleToolResult(ctx, "execute_query", nil, err)
		}
		result, err := t.ExecutionToolset.ExecuteQuery(ctx, args.QueryID, args.Performance, params)
		return handleToolResult(ctx, "execute_query", result, err)
	})
}

func (t *Toolsets) RegisterExecuteSQL(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name: "execute_sql",
		Description: "Execute raw DuneSQL directly without saving a query first. Returns an execution_id " +
			"and state, like execute_query.",
		InputSchema: createSchema(map[string]any{
			"query_sql":        stringProperty("The DuneSQL statement to execute"),
			"performance":      stringProperty("Performance tier: 'medium' (default) or 'large'"),
			"query_parameters": stringProperty("Optional JSON object of query parameters"),
		}, []string{"query_sql"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		QuerySQL        string `json:"query_sql"`
		Performance     string `json:"performance"`
		QueryParameters string `json:"query_parameters"`
	}) (*mcp.CallToolResult, any, error) {
		params, err := decodeObject("query_parameters", args.QueryParameters)
		if err != nil {
			return handleToolResult(ctx, "execute_sql", nil, err)
		}
		result, err := t.ExecutionToolset.ExecuteSQL(ctx, args.QuerySQL, args.Performance, params)
		return handleToolResult(ctx, "execute_sql", result, err)
	})
}

func (t *Toolsets) RegisterExecuteQueryPipeline(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name: "execute_query_pipeline",
		Description: "Execute a query as a pipeline, refreshing all materialized views the query " +
			"depends on before running it.",
		InputSchema: createSchema(map[string]any{
			"query_id":    intProperty("The query ID to execute as a pipeline"),
			"performance": stringProperty("Performance tier: 'medium' (default) or 'large'"),
		}, []string{"query_id"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		QueryID     int    `json:"query_id"`
		Performance string `json:"performance"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.ExecutionToolset.ExecuteQueryPipeline(ctx, args.QueryID, args.Performance)
		return handleToolResult(ctx, "execute_query_pipeline", result, err)
	})
}

func (t *Toolsets) RegisterGetExecutionResult(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name: "get_execution_result",
		Description: "Get the rows of a query execution, with optional pagination, filtering, and " +
			"sorting. The execution must have completed; check with get_execution_status.",
		InputSchema: createSchema(map[string]any{
			"execution_id": stringProperty("The execution ID returned by execute_query"),
			"limit":        intProperty("Maximum number of rows to return"),
			"offset":       intProperty("Number of rows to skip, for pagination"),
			"filters":      stringProperty("SQL-like WHERE clause for filtering, e.g. \"column > 100\""),
			"sort_by":      stringProperty("Column to sort results by"),
		}, []string{"execution_id"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		ExecutionID string `json:"execution_id"`
		Limit       *int   `json:"limit"`
		Offset      *int   `json:"offset"`
		Filters     string `json:"filters"`
		SortBy      string `json:"sort_by"`
	}) (*mcp.CallToolResult, any, error) {
		opts := &dune.ResultOptions{
			Limit:   args.Limit,
			Offset:  args.Offset,
			Filters: args.Filters,
			SortBy:  args.SortBy,
		}
		result, err := t.ExecutionToolset.GetExecutionResult(ctx, args.ExecutionID, opts)
		return handleToolResult(ctx, "get_execution_result", result, err)
	})
}

func (t *Toolsets) RegisterGetExecutionResultCSV(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_execution_result_csv",
		Description: "Get the rows of a query execution as CSV text instead of JSON.",
		InputSchema: createSchema(map[string]any{
			"execution_id": stringProperty("The execution ID returned by execute_query"),
			"limit":        intProperty("Maximum number of rows to return"),
			"offset":       intProperty("Number of rows to skip, for pagination"),
		}, []string{"execution_id"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		ExecutionID string `json:"execution_id"`
		Limit       *int   `json:"limit"`
		Offset      *int   `json:"offset"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.ExecutionToolset.GetExecutionResultCSV(ctx, args.ExecutionID, args.Limit, args.Offset)
		return handleToolResult(ctx, "get_execution_result_csv", result, err)
	})
}

func (t *Toolsets) RegisterGetExecutionStatus(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name: "get_execution_status",
		Description: "Check the state of a query execution (QUERY_STATE_PENDING, QUERY_STATE_EXECUTING, " +
			"QUERY_STATE_COMPLETED, QUERY_STATE_FAILED, ...).",
		InputSchema: createSchema(map[string]any{
			"execution_id": stringProperty("The execution ID to check"),
		}, []string{"execution_id"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		ExecutionID string `json:"execution_id"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.ExecutionToolset.GetExecutionStatus(ctx, args.ExecutionID)
		return handleToolResult(ctx, "get_execution_status", result, err)
	})
}

func (t *Toolsets) RegisterGetLatestResult(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name: "get_latest_result",
		Description: "Get the most recent cached result of a saved query without starting a new " +
			"execution. Cheaper and faster than execute_query when fresh data is not required.",
		InputSchema: createSchema(map[string]any{
			"query_id": intProperty("The Dune query ID"),
			"limit":    intProperty("Maximum number of rows to return"),
			"offset":   intProperty("Number of rows to skip, for pagination"),
			"filters":  stringProperty("SQL-like WHERE clause for filtering"),
			"sort_by":  stringProperty("Column to sort results by"),
		}, []string{"query_id"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		QueryID int    `json:"query_id"`
		Limit   *int   `json:"limit"`
		Offset  *int   `json:"offset"`
		Filters string `json:"filters"`
		SortBy  string `json:"sort_by"`
	}) (*mcp.CallToolResult, any, error) {
		opts := &dune.ResultOptions{
			Limit:   args.Limit,
			Offset:  args.Offset,
			Filters: args.Filters,
			SortBy:  args.SortBy,
		}
		result, err := t.ExecutionToolset.GetLatestResult(ctx, args.QueryID, opts)
		return handleToolResult(ctx, "get_latest_result", result, err)
	})
}

func (t *Toolsets) RegisterGetLatestResultCSV(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_latest_result_csv",
		Description: "Get the most recent cached result of a saved query as CSV text.",
		InputSchema: createSchema(map[string]any{
			"query_id": intProperty("The Dune query ID"),
			"limit":    intProperty("Maximum number of rows to return"),
			"offset":   intProperty("Number of rows to skip, for pagination"),
		}, []string{"query_id"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		QueryID int  `json:"query_id"`
		Limit   *int `json:"limit"`
		Offset  *int `json:"offset"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.ExecutionToolset.GetLatestResultCSV(ctx, args.QueryID, args.Limit, args.Offset)
		return handleToolResult(ctx, "get_latest_result_csv", result, err)
	})
}

func (t *Toolsets) RegisterCancelExecution(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "cancel_execution",
		Description: "Cancel a running query execution.",
		InputSchema: createSchema(map[string]any{
			"execution_id": stringProperty("The execution ID to cancel"),
		}, []string{"execution_id"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		ExecutionID string `json:"execution_id"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.ExecutionToolset.CancelExecution(ctx, args.ExecutionID)
		return handleToolResult(ctx, "cancel_execution", result, err)
	})
}
