// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (t *Toolsets) RegisterExecutePipeline(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "execute_pipeline",
		Description: "Execute a named pipeline by its slug. Check progress with get_pipeline_status.",
		InputSchema: createSchema(map[string]any{
			"pipeline_slug": stringProperty("Slug of the pipeline to execute"),
			"performance":   stringProperty("Performance tier: 'medium' (default) or 'large'"),
		}, []string{"pipeline_slug"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		PipelineSlug string `json:"pipeline_slug"`
		Performance  string `json:"performance"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.PipelineToolset.ExecutePipeline(ctx, args.PipelineSlug, args.Performance)
		return handleToolResult(ctx, "execute_pipeline", result, err)
	})
}

func (t *Toolsets) RegisterGetPipelineStatus(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_pipeline_status",
		Description: "Check the state of a pipeline execution, including each step's progress.",
		InputSchema: createSchema(map[string]any{
			"execution_id": stringProperty("The pipeline execution ID returned by execute_pipeline"),
		}, []string{"execution_id"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		ExecutionID string `json:"execution_id"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.PipelineToolset.GetPipelineStatus(ctx, args.ExecutionID)
		return handleToolResult(ctx, "get_pipeline_status", result, err)
	})
}
