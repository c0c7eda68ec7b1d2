// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// executionToolRegistrations returns the list of execution toolset registration functions
func (t *Toolsets) executionToolRegistrations() []RegisterFunc {
	return []RegisterFunc{
		t.RegisterExecuteQuery,
		t.RegisterExecuteSQL,
		t.RegisterExecuteQueryPipeline,
		t.RegisterGetExecutionResult,
		t.RegisterGetExecutionResultCSV,
		t.RegisterGetExecutionStatus,
		t.RegisterGetLatestResult,
		t.RegisterGetLatestResultCSV,
		t.RegisterCancelExecution,
	}
}

// queryToolRegistrations returns the list of query toolset registration functions
func (t *Toolsets) queryToolRegistrations() []RegisterFunc {
	return []RegisterFunc{
		t.RegisterCreateQuery,
		t.RegisterReadQuery,
		t.RegisterUpdateQuery,
		t.RegisterArchiveQuery,
		t.RegisterUnarchiveQuery,
		t.RegisterPrivateQuery,
		t.RegisterUnprivateQuery,
		t.RegisterListQueries,
		t.RegisterGetQueryPipeline,
	}
}

// materializedViewToolRegistrations returns the list of materialized view toolset registration functions
func (t *Toolsets) materializedViewToolRegistrations() []RegisterFunc {
	return []RegisterFunc{
		t.RegisterGetMaterializedView,
		t.RegisterUpsertMaterializedView,
		t.RegisterDeleteMaterializedView,
		t.RegisterListMaterializedViews,
		t.RegisterRefreshMaterializedView,
	}
}

// tableToolRegistrations returns the list of table toolset registration functions
func (t *Toolsets) tableToolRegistrations() []RegisterFunc {
	return []RegisterFunc{
		t.RegisterCreateTable,
		t.RegisterUploadCSV,
		t.RegisterInsertData,
		t.RegisterInsertCSVData,
		t.RegisterClearTable,
		t.RegisterDeleteTable,
		t.RegisterListTables,
	}
}

// datasetToolRegistrations returns the list of dataset toolset registration functions
func (t *Toolsets) datasetToolRegistrations() []RegisterFunc {
	return []RegisterFunc{
		t.RegisterGetDataset,
		t.RegisterListDatasets,
	}
}

// pipelineToolRegistrations returns the list of pipeline toolset registration functions
func (t *Toolsets) pipelineToolRegistrations() []RegisterFunc {
	return []RegisterFunc{
		t.RegisterExecutePipeline,
		t.RegisterGetPipelineStatus,
	}
}

// usageToolRegistrations returns the list of usage toolset registration functions
func (t *Toolsets) usageToolRegistrations() []RegisterFunc {
	return []RegisterFunc{
		t.RegisterGetUsage,
	}
}

func (t *Toolsets) Register(s *mcp.Server) {
	// Register execution tools if ExecutionToolset is enabled
	if t.ExecutionToolset != nil {
		for _, registerFunc := range t.executionToolRegistrations() {
			registerFunc(s)
		}
	}

	// Register query tools if QueryToolset is enabled
	if t.QueryToolset != nil {
		for _, registerFunc := range t.queryToolRegistrations() {
			registerFunc(s)
		}
	}

	// Register materialized view tools if MaterializedViewToolset is enabled
	if t.MaterializedViewToolset != nil {
		for _, registerFunc := range t.materializedViewToolRegistrations() {
			registerFunc(s)
		}
	}

	// Register table tools if TableToolset is enabled
	if t.TableToolset != nil {
		for _, registerFunc := range t.tableToolRegistrations() {
			registerFunc(s)
		}
	}

	// Register dataset tools if DatasetToolset is enabled
	if t.DatasetToolset != nil {
		for _, registerFunc := range t.datasetToolRegistrations() {
			registerFunc(s)
		}
	}

	// Register pipeline tools if PipelineToolset is enabled
	if t.PipelineToolset != nil {
		for _, registerFunc := range t.pipelineToolRegistrations() {
			registerFunc(s)
		}
	}

	// Register usage tools if UsageToolset is enabled
	if t.UsageToolset != nil {
		for _, registerFunc := range t.usageToolRegistrations() {
			registerFunc(s)
		}
	}
}
