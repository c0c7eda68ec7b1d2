// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/deacix/dune-mcp/internal/dune"
)

// ToolsetType represents a type of toolset that can be enabled
type ToolsetType string

const (
	ToolsetExecutions        ToolsetType = "executions"
	ToolsetQueries           ToolsetType = "queries"
	ToolsetMaterializedViews ToolsetType = "materialized_views"
	ToolsetTables            ToolsetType = "tables"
	ToolsetDatasets          ToolsetType = "datasets"
	ToolsetPipelines         ToolsetType = "pipelines"
	ToolsetUsage             ToolsetType = "usage"
)

// AllToolsets returns every toolset type in registration order.
func AllToolsets() []ToolsetType {
	return []ToolsetType{
		ToolsetExecutions,
		ToolsetQueries,
		ToolsetMaterializedViews,
		ToolsetTables,
		ToolsetDatasets,
		ToolsetPipelines,
		ToolsetUsage,
	}
}

// ParseToolsets parses a comma-separated toolset list into toolset types.
// The special value "all" (or an empty string) enables every toolset.
// Entries are trimmed and deduplicated; an unknown name is an error.
func ParseToolsets(spec string) ([]ToolsetType, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" || spec == "all" {
		return AllToolsets(), nil
	}

	valid := make(map[ToolsetType]bool)
	names := make([]string, 0, len(AllToolsets()))
	for _, ts := range AllToolsets() {
		valid[ts] = true
		names = append(names, string(ts))
	}

	var parsed []ToolsetType
	seen := make(map[ToolsetType]bool)
	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		ts := ToolsetType(entry)
		if !valid[ts] {
			return nil, fmt.Errorf("unknown toolset %q; valid toolsets: %s", entry, strings.Join(names, ", "))
		}
		if !seen[ts] {
			seen[ts] = true
			parsed = append(parsed, ts)
		}
	}
	return parsed, nil
}

type Toolsets struct {
	ExecutionToolset        ExecutionToolsetHandler
	QueryToolset            QueryToolsetHandler
	MaterializedViewToolset MaterializedViewToolsetHandler
	TableToolset            TableToolsetHandler
	DatasetToolset          DatasetToolsetHandler
	PipelineToolset         PipelineToolsetHandler
	UsageToolset            UsageToolsetHandler
}

// ExecutionToolsetHandler handles query execution operations
type ExecutionToolsetHandler interface {
	ExecuteQuery(ctx context.Context, queryID int, performance string, queryParameters map[string]any) (any, error)
	ExecuteSQL(ctx context.Context, querySQL, performance string, queryParameters map[string]any) (any, error)
	ExecuteQueryPipeline(ctx context.Context, queryID int, performance string) (any, error)
	GetExecutionResult(ctx context.Context, executionID string, opts *dune.ResultOptions) (any, error)
	GetExecutionResultCSV(ctx context.Context, executionID string, limit, offset *int) (string, error)
	GetExecutionStatus(ctx context.Context, executionID string) (any, error)
	GetLatestResult(ctx context.Context, queryID int, opts *dune.ResultOptions) (any, error)
	GetLatestResultCSV(ctx context.Context, queryID int, limit, offset *int) (string, error)
	CancelExecution(ctx context.Context, executionID string) (any, error)
}

// QueryToolsetHandler handles saved query management operations
type QueryToolsetHandler interface {
	CreateQuery(ctx context.Context, req *dune.CreateQueryRequest) (any, error)
	ReadQuery(ctx context.Context, queryID int) (any, error)
	UpdateQuery(ctx context.Context, queryID int, req *dune.UpdateQueryRequest) (any, error)
	ArchiveQuery(ctx context.Context, queryID int) (any, error)
	UnarchiveQuery(ctx context.Context, queryID int) (any, error)
	PrivateQuery(ctx context.Context, queryID int) (any, error)
	UnprivateQuery(ctx context.Context, queryID int) (any, error)
	ListQueries(ctx context.Context, limit, offset *int) (any, error)
	GetQueryPipeline(ctx context.Context, queryID int) (any, error)
}

// MaterializedViewToolsetHandler handles materialized view operations
type MaterializedViewToolsetHandler interface {
	GetMaterializedView(ctx context.Context, name string) (any, error)
	UpsertMaterializedView(ctx context.Context, req *dune.UpsertMaterializedViewRequest) (any, error)
	DeleteMaterializedView(ctx context.Context, name string) (any, error)
	ListMaterializedViews(ctx context.Context, limit, offset *int) (any, error)
	RefreshMaterializedView(ctx context.Context, name, performance string) (any, error)
}

// TableToolsetHandler handles uploaded table operations
type TableToolsetHandler interface {
	CreateTable(ctx context.Context, req *dune.CreateTableRequest) (any, error)
	UploadCSV(ctx context.Context, tableName, csvData, description string, isPrivate bool) (any, error)
	InsertRows(ctx context.Context, namespace, tableName string, rows []map[string]any) (any, error)
	InsertCSV(ctx context.Context, namespace, tableName, csvData string) (any, error)
	ClearTable(ctx context.Context, namespace, tableName string) (any, error)
	DeleteTable(ctx context.Context, namespace, tableName string) (any, error)
	ListTables(ctx context.Context, limit, offset *int) (any, error)
}

// DatasetToolsetHandler handles dataset catalog lookups
type DatasetToolsetHandler interface {
	GetDataset(ctx context.Context, namespace, datasetName string) (any, error)
	ListDatasets(ctx context.Context, owner string, limit, offset *int) (any, error)
}

// PipelineToolsetHandler handles named pipeline operations
type PipelineToolsetHandler interface {
	ExecutePipeline(ctx context.Context, pipelineSlug, performance string) (any, error)
	GetPipelineStatus(ctx context.Context, executionID string) (any, error)
}

// UsageToolsetHandler handles billing usage reporting
type UsageToolsetHandler interface {
	GetUsage(ctx context.Context, startDate, endDate string) (any, error)
}

// RegisterFunc is a function type for registering MCP tools
type RegisterFunc func(s *mcp.Server)
