// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (t *Toolsets) RegisterGetDataset(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_dataset",
		Description: "Get a dataset's metadata, including its column schema and row count.",
		InputSchema: createSchema(map[string]any{
			"namespace":    stringProperty("Namespace that owns the dataset"),
			"dataset_name": stringProperty("Name of the dataset"),
		}, []string{"namespace", "dataset_name"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		Namespace   string `json:"namespace"`
		DatasetName string `json:"dataset_name"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.DatasetToolset.GetDataset(ctx, args.Namespace, args.DatasetName)
		return handleToolResult(ctx, "get_dataset", result, err)
	})
}

func (t *Toolsets) RegisterListDatasets(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_datasets",
		Description: "List available datasets, optionally filtered to a single owner.",
		InputSchema: createSchema(map[string]any{
			"owner":  stringProperty("Only return datasets owned by this namespace"),
			"limit":  intProperty("Maximum number of datasets to return"),
			"offset": intProperty("Number of datasets to skip, for pagination"),
		}, nil),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		Owner  string `json:"owner"`
		Limit  *int   `json:"limit"`
		Offset *int   `json:"offset"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.DatasetToolset.ListDatasets(ctx, args.Owner, args.Limit, args.Offset)
		return handleToolResult(ctx, "list_datasets", result, err)
	})
}
