// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"

	"github.com/deacix/dune-mcp/internal/dune"
)

const testCSVText = "block_date,tx_count\n2026-01-01,42\n"

// MockDuneHandler implements all toolset handler interfaces for testing.
type MockDuneHandler struct {
	// Track which methods were called and with what parameters
	calls map[string][]interface{}

	// When set, every method fails with this error instead of returning
	// its canned response.
	err error
}

func NewMockDuneHandler() *MockDuneHandler {
	return &MockDuneHandler{
		calls: make(map[string][]interface{}),
	}
}

func (m *MockDuneHandler) recordCall(method string, args ...interface{}) {
	m.calls[method] = append(m.calls[method], args)
}

// ExecutionToolsetHandler methods

func (m *MockDuneHandler) ExecuteQuery(
	ctx context.Context, queryID int, performance string, queryParameters map[string]any,
) (any, error) {
	m.recordCall("ExecuteQuery", queryID, performance, queryParameters)
	if m.err != nil {
		return nil, m.err
	}
	return `{"execution_id":"01JGEXEC","state":"QUERY_STATE_PENDING"}`, nil
}

func (m *MockDuneHandler) ExecuteSQL(
	ctx context.Context, querySQL, performance string, queryParameters map[string]any,
) (any, error) {
	m.recordCall("ExecuteSQL", querySQL, performance, queryParameters)
	if m.err != nil {
		return nil, m.err
	}
	return `{"execution_id":"01JGEXEC","state":"QUERY_STATE_PENDING"}`, nil
}

func (m *MockDuneHandler) ExecuteQueryPipeline(
	ctx context.Context, queryID int, performance string,
) (any, error) {
	m.recordCall("ExecuteQueryPipeline", queryID, performance)
	if m.err != nil {
		return nil, m.err
	}
	return `{"execution_id":"01JGPIPE","state":"QUERY_STATE_PENDING"}`, nil
}

func (m *MockDuneHandler) GetExecutionResult(
	ctx context.Context, executionID string, opts *dune.ResultOptions,
) (any, error) {
	m.recordCall("GetExecutionResult", executionID, opts)
	if m.err != nil {
		return nil, m.err
	}
	return `{"execution_id":"01JGEXEC","state":"QUERY_STATE_COMPLETED","result":{"rows":[]}}`, nil
}

func (m *MockDuneHandler) GetExecutionResultCSV(
	ctx context.Context, executionID string, limit, offset *int,
) (string, error) {
	m.recordCall("GetExecutionResultCSV", executionID, limit, offset)
	if m.err != nil {
		return "", m.err
	}
	return testCSVText, nil
}

func (m *MockDuneHandler) GetExecutionStatus(ctx context.Context, executionID string) (any, error) {
	m.recordCall("GetExecutionStatus", executionID)
	if m.err != nil {
		return nil, m.err
	}
	return `{"execution_id":"01JGEXEC","state":"QUERY_STATE_EXECUTING"}`, nil
}

func (m *MockDuneHandler) GetLatestResult(
	ctx context.Context, queryID int, opts *dune.ResultOptions,
) (any, error) {
	m.recordCall("GetLatestResult", queryID, opts)
	if m.err != nil {
		return nil, m.err
	}
	return `{"state":"QUERY_STATE_COMPLETED","result":{"rows":[]}}`, nil
}

func (m *MockDuneHandler) GetLatestResultCSV(
	ctx context.Context, queryID int, limit, offset *int,
) (string, error) {
	m.recordCall("GetLatestResultCSV", queryID, limit, offset)
	if m.err != nil {
		return "", m.err
	}
	return testCSVText, nil
}

func (m *MockDuneHandler) CancelExecution(ctx context.Context, executionID string) (any, error) {
	m.recordCall("CancelExecution", executionID)
	if m.err != nil {
		return nil, m.err
	}
	return `{"success":true}`, nil
}

// QueryToolsetHandler methods

func (m *MockDuneHandler) CreateQuery(ctx context.Context, req *dune.CreateQueryRequest) (any, error) {
	m.recordCall("CreateQuery", req)
	if m.err != nil {
		return nil, m.err
	}
	return `{"query_id":4242}`, nil
}

func (m *MockDuneHandler) ReadQuery(ctx context.Context, queryID int) (any, error) {
	m.recordCall("ReadQuery", queryID)
	if m.err != nil {
		return nil, m.err
	}
	return `{"query_id":4242,"name":"daily volume"}`, nil
}

func (m *MockDuneHandler) UpdateQuery(
	ctx context.Context, queryID int, req *dune.UpdateQueryRequest,
) (any, error) {
	m.recordCall("UpdateQuery", queryID, req)
	if m.err != nil {
		return nil, m.err
	}
	return `{"query_id":4242}`, nil
}

func (m *MockDuneHandler) ArchiveQuery(ctx context.Context, queryID int) (any, error) {
	m.recordCall("ArchiveQuery", queryID)
	if m.err != nil {
		return nil, m.err
	}
	return `{"query_id":4242,"is_archived":true}`, nil
}

func (m *MockDuneHandler) UnarchiveQuery(ctx context.Context, queryID int) (any, error) {
	m.recordCall("UnarchiveQuery", queryID)
	if m.err != nil {
		return nil, m.err
	}
	return `{"query_id":4242,"is_archived":false}`, nil
}

func (m *MockDuneHandler) PrivateQuery(ctx context.Context, queryID int) (any, error) {
	m.recordCall("PrivateQuery", queryID)
	if m.err != nil {
		return nil, m.err
	}
	return `{"query_id":4242,"is_private":true}`, nil
}

func (m *MockDuneHandler) UnprivateQuery(ctx context.Context, queryID int) (any, error) {
	m.recordCall("UnprivateQuery", queryID)
	if m.err != nil {
		return nil, m.err
	}
	return `{"query_id":4242,"is_private":false}`, nil
}

func (m *MockDuneHandler) ListQueries(ctx context.Context, limit, offset *int) (any, error) {
	m.recordCall("ListQueries", limit, offset)
	if m.err != nil {
		return nil, m.err
	}
	return `[{"query_id":4242,"name":"daily volume"}]`, nil
}

func (m *MockDuneHandler) GetQueryPipeline(ctx context.Context, queryID int) (any, error) {
	m.recordCall("GetQueryPipeline", queryID)
	if m.err != nil {
		return nil, m.err
	}
	return `{"query_id":4242,"dependencies":[]}`, nil
}

// MaterializedViewToolsetHandler methods

func (m *MockDuneHandler) GetMaterializedView(ctx context.Context, name string) (any, error) {
	m.recordCall("GetMaterializedView", name)
	if m.err != nil {
		return nil, m.err
	}
	return `{"name":"dune.my_team.result_daily_volume"}`, nil
}

func (m *MockDuneHandler) UpsertMaterializedView(
	ctx context.Context, req *dune.UpsertMaterializedViewRequest,
) (any, error) {
	m.recordCall("UpsertMaterializedView", req)
	if m.err != nil {
		return nil, m.err
	}
	return `{"name":"dune.my_team.result_daily_volume"}`, nil
}

func (m *MockDuneHandler) DeleteMaterializedView(ctx context.Context, name string) (any, error) {
	m.recordCall("DeleteMaterializedView", name)
	if m.err != nil {
		return nil, m.err
	}
	return `{"success":true}`, nil
}

func (m *MockDuneHandler) ListMaterializedViews(ctx context.Context, limit, offset *int) (any, error) {
	m.recordCall("ListMaterializedViews", limit, offset)
	if m.err != nil {
		return nil, m.err
	}
	return `[{"name":"dune.my_team.result_daily_volume"}]`, nil
}

func (m *MockDuneHandler) RefreshMaterializedView(ctx context.Context, name, performance string) (any, error) {
	m.recordCall("RefreshMaterializedView", name, performance)
	if m.err != nil {
		return nil, m.err
	}
	return `{"execution_id":"01JGREFRESH"}`, nil
}

// TableToolsetHandler methods

func (m *MockDuneHandler) CreateTable(ctx context.Context, req *dune.CreateTableRequest) (any, error) {
	m.recordCall("CreateTable", req)
	if m.err != nil {
		return nil, m.err
	}
	return `{"namespace":"my_team","table_name":"wallet_labels"}`, nil
}

func (m *MockDuneHandler) UploadCSV(
	ctx context.Context, tableName, csvData, description string, isPrivate bool,
) (any, error) {
	m.recordCall("UploadCSV", tableName, csvData, description, isPrivate)
	if m.err != nil {
		return nil, m.err
	}
	return `{"success":true}`, nil
}

func (m *MockDuneHandler) InsertRows(
	ctx context.Context, namespace, tableName string, rows []map[string]any,
) (any, error) {
	m.recordCall("InsertRows", namespace, tableName, rows)
	if m.err != nil {
		return nil, m.err
	}
	return `{"rows_written":2}`, nil
}

func (m *MockDuneHandler) InsertCSV(ctx context.Context, namespace, tableName, csvData string) (any, error) {
	m.recordCall("InsertCSV", namespace, tableName, csvData)
	if m.err != nil {
		return nil, m.err
	}
	return `{"rows_written":2}`, nil
}

func (m *MockDuneHandler) ClearTable(ctx context.Context, namespace, tableName string) (any, error) {
	m.recordCall("ClearTable", namespace, tableName)
	if m.err != nil {
		return nil, m.err
	}
	return `{"success":true}`, nil
}

func (m *MockDuneHandler) DeleteTable(ctx context.Context, namespace, tableName string) (any, error) {
	m.recordCall("DeleteTable", namespace, tableName)
	if m.err != nil {
		return nil, m.err
	}
	return `{"success":true}`, nil
}

func (m *MockDuneHandler) ListTables(ctx context.Context, limit, offset *int) (any, error) {
	m.recordCall("ListTables", limit, offset)
	if m.err != nil {
		return nil, m.err
	}
	return `[{"namespace":"my_team","table_name":"wallet_labels"}]`, nil
}

// DatasetToolsetHandler methods

func (m *MockDuneHandler) GetDataset(ctx context.Context, namespace, datasetName string) (any, error) {
	m.recordCall("GetDataset", namespace, datasetName)
	if m.err != nil {
		return nil, m.err
	}
	return `{"namespace":"dune","dataset_name":"prices"}`, nil
}

func (m *MockDuneHandler) ListDatasets(ctx context.Context, owner string, limit, offset *int) (any, error) {
	m.recordCall("ListDatasets", owner, limit, offset)
	if m.err != nil {
		return nil, m.err
	}
	return `[{"namespace":"dune","dataset_name":"prices"}]`, nil
}

// PipelineToolsetHandler methods

func (m *MockDuneHandler) ExecutePipeline(ctx context.Context, pipelineSlug, performance string) (any, error) {
	m.recordCall("ExecutePipeline", pipelineSlug, performance)
	if m.err != nil {
		return nil, m.err
	}
	return `{"execution_id":"01JGPIPE","state":"QUERY_STATE_PENDING"}`, nil
}

func (m *MockDuneHandler) GetPipelineStatus(ctx context.Context, executionID string) (any, error) {
	m.recordCall("GetPipelineStatus", executionID)
	if m.err != nil {
		return nil, m.err
	}
	return `{"execution_id":"01JGPIPE","state":"QUERY_STATE_COMPLETED"}`, nil
}

// UsageToolsetHandler methods

func (m *MockDuneHandler) GetUsage(ctx context.Context, startDate, endDate string) (any, error) {
	m.recordCall("GetUsage", startDate, endDate)
	if m.err != nil {
		return nil, m.err
	}
	return `{"credits_used":120,"credits_included":2500}`, nil
}
