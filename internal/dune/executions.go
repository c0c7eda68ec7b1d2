// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package dune

import (
	"context"
	"encoding/json"
	"fmt"
)

type executeRequest struct {
	QuerySQL        string         `json:"query_sql,omitempty"`
	Performance     string         `json:"performance"`
	QueryParameters map[string]any `json:"query_parameters,omitempty"`
}

type performanceRequest struct {
	Performance string `json:"performance"`
}

// defaultPerformance falls back to the medium tier, mirroring the upstream
// default.
func defaultPerformance(tier string) string {
	if tier == "" {
		return PerformanceMedium
	}
	return tier
}

// ExecuteQuery starts an execution of a saved query and returns the
// execution handle.
func (c *Client) ExecuteQuery(ctx context.Context, queryID int, performance string, queryParameters map[string]any) (any, error) {
	req := executeRequest{
		Performance:     defaultPerformance(performance),
		QueryParameters: queryParameters,
	}
	return c.post(ctx, fmt.Sprintf("/query/%d/execute", queryID), req)
}

// ExecuteSQL runs raw SQL without a saved query.
func (c *Client) ExecuteSQL(ctx context.Context, querySQL, performance string, queryParameters map[string]any) (any, error) {
	req := executeRequest{
		QuerySQL:        querySQL,
		Performance:     defaultPerformance(performance),
		QueryParameters: queryParameters,
	}
	return c.post(ctx, "/query/execute", req)
}

// ExecuteQueryPipeline starts a pipeline execution for a saved query.
func (c *Client) ExecuteQueryPipeline(ctx context.Context, queryID int, performance string) (any, error) {
	req := performanceRequest{Performance: defaultPerformance(performance)}
	return c.post(ctx, fmt.Sprintf("/query/%d/execute/pipeline", queryID), req)
}

// GetExecutionResult fetches the rows of an execution. Options may narrow
// the fetch; a nil opts returns the full result.
func (c *Client) GetExecutionResult(ctx context.Context, executionID string, opts *ResultOptions) (any, error) {
	return c.get(ctx, fmt.Sprintf("/execution/%s/results", executionID), opts.query())
}

// GetExecutionResultCSV fetches execution rows in CSV form.
func (c *Client) GetExecutionResultCSV(ctx context.Context, executionID string, limit, offset *int) (string, error) {
	result, err := c.get(ctx, fmt.Sprintf("/execution/%s/results/csv", executionID), pageQuery(limit, offset))
	if err != nil {
		return "", err
	}
	return csvText(result)
}

// GetExecutionStatus reports the state of an execution.
func (c *Client) GetExecutionStatus(ctx context.Context, executionID string) (any, error) {
	return c.get(ctx, fmt.Sprintf("/execution/%s/status", executionID), nil)
}

// GetLatestResult fetches the most recent result of a saved query without
// starting a new execution.
func (c *Client) GetLatestResult(ctx context.Context, queryID int, opts *ResultOptions) (any, error) {
	return c.get(ctx, fmt.Sprintf("/query/%d/results", queryID), opts.query())
}

// GetLatestResultCSV fetches the most recent result of a saved query in CSV
// form.
func (c *Client) GetLatestResultCSV(ctx context.Context, queryID int, limit, offset *int) (string, error) {
	result, err := c.get(ctx, fmt.Sprintf("/query/%d/results/csv", queryID), pageQuery(limit, offset))
	if err != nil {
		return "", err
	}
	return csvText(result)
}

// CancelExecution cancels a running execution.
func (c *Client) CancelExecution(ctx context.Context, executionID string) (any, error) {
	return c.post(ctx, fmt.Sprintf("/execution/%s/cancel", executionID), nil)
}

// csvText returns CSV responses verbatim. When the endpoint answers with
// JSON instead, the decoded value is re-encoded so callers still get text.
func csvText(result any) (string, error) {
	if text, ok := result.(string); ok {
		return text, nil
	}
	data, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(data), nil
}
