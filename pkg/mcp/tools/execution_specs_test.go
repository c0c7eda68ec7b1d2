// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"testing"

	"github.com/deacix/dune-mcp/internal/dune"
)

// executionToolSpecs returns test specs for the executions toolset
func executionToolSpecs() []toolTestSpec {
	return []toolTestSpec{
		{
			name:                "execute_query",
			toolset:             "executions",
			descriptionKeywords: []string{"execute", "query"},
			descriptionMinLen:   10,
			requiredParams:      []string{"query_id"},
			optionalParams:      []string{"performance", "query_parameters"},
			testArgs: map[string]any{
				"query_id":         testQueryID,
				"performance":      "large",
				"query_parameters": `{"wallet":"0xabc"}`,
			},
			expectedMethod: "ExecuteQuery",
			validateCall: func(t *testing.T, args []interface{}) {
				if args[0] != testQueryID {
					t.Errorf("Expected query ID %d, got %v", testQueryID, args[0])
				}
				if args[1] != "large" {
					t.Errorf("Expected performance 'large', got %v", args[1])
				}
				params := args[2].(map[string]any)
				if params["wallet"] != "0xabc" {
					t.Errorf("Expected decoded parameter wallet='0xabc', got %v", params)
				}
			},
		},
		{
			name:                "execute_sql",
			toolset:             "executions",
			descriptionKeywords: []string{"execute", "sql"},
			descriptionMinLen:   10,
			requiredParams:      []string{"query_sql"},
			optionalParams:      []string{"performance", "query_parameters"},
			testArgs:            map[string]any{"query_sql": "SELECT 1"},
			expectedMethod:      "ExecuteSQL",
			validateCall: func(t *testing.T, args []interface{}) {
				if args[0] != "SELECT 1" {
					t.Errorf("Expected SQL 'SELECT 1', got %v", args[0])
				}
				if params := args[2].(map[string]any); params != nil {
					t.Errorf("Expected nil parameters when query_parameters is omitted, got %v", params)
				}
			},
		},
		{
			name:                "execute_query_pipeline",
			toolset:             "executions",
			descriptionKeywords: []string{"pipeline", "materialized"},
			descriptionMinLen:   10,
			requiredParams:      []string{"query_id"},
			optionalParams:      []string{"performance"},
			testArgs:            map[string]any{"query_id": testQueryID},
			expectedMethod:      "ExecuteQueryPipeline",
			validateCall: func(t *testing.T, args []interface{}) {
				if args[0] != testQueryID {
					t.Errorf("Expected query ID %d, got %v", testQueryID, args[0])
				}
				if args[1] != "" {
					t.Errorf("Expected empty performance when omitted, got %v", args[1])
				}
			},
		},
		{
			name:                "get_execution_result",
			toolset:             "executions",
			descriptionKeywords: []string{"rows", "execution"},
			descriptionMinLen:   10,
			requiredParams:      []string{"execution_id"},
			optionalParams:      []string{"limit", "offset", "filters", "sort_by"},
			testArgs: map[string]any{
				"execution_id": testExecutionID,
				"limit":        100,
				"sort_by":      "block_date",
			},
			expectedMethod: "GetExecutionResult",
			validateCall: func(t *testing.T, args []interface{}) {
				if args[0] != testExecutionID {
					t.Errorf("Expected execution ID %q, got %v", testExecutionID, args[0])
				}
				opts := args[1].(*dune.ResultOptions)
				if opts.Limit == nil || *opts.Limit != 100 {
					t.Errorf("Expected limit 100, got %v", opts.Limit)
				}
				if opts.Offset != nil {
					t.Errorf("Expected nil offset when omitted, got %v", *opts.Offset)
				}
				if opts.SortBy != "block_date" {
					t.Errorf("Expected sort_by 'block_date', got %q", opts.SortBy)
				}
			},
		},
		{
			name:                "get_execution_result_csv",
			toolset:             "executions",
			descriptionKeywords: []string{"csv"},
			descriptionMinLen:   10,
			requiredParams:      []string{"execution_id"},
			optionalParams:      []string{"limit", "offset"},
			testArgs: map[string]any{
				"execution_id": testExecutionID,
				"limit":        50,
			},
			expectedMethod: "GetExecutionResultCSV",
			validateCall: func(t *testing.T, args []interface{}) {
				if args[0] != testExecutionID {
					t.Errorf("Expected execution ID %q, got %v", testExecutionID, args[0])
				}
				limit := args[1].(*int)
				if limit == nil || *limit != 50 {
					t.Errorf("Expected limit 50, got %v", limit)
				}
				if offset := args[2].(*int); offset != nil {
					t.Errorf("Expected nil offset when omitted, got %v", *offset)
				}
			},
		},
		{
			name:                "get_execution_status",
			toolset:             "executions",
			descriptionKeywords: []string{"state", "execution"},
			descriptionMinLen:   10,
			requiredParams:      []string{"execution_id"},
			testArgs:            map[string]any{"execution_id": testExecutionID},
			expectedMethod:      "GetExecutionStatus",
			validateCall: func(t *testing.T, args []interface{}) {
				if args[0] != testExecutionID {
					t.Errorf("Expected execution ID %q, got %v", testExecutionID, args[0])
				}
			},
		},
		{
			name:                "get_latest_result",
			toolset:             "executions",
			descriptionKeywords: []string{"recent", "result"},
			descriptionMinLen:   10,
			requiredParams:      []string{"query_id"},
			optionalParams:      []string{"limit", "offset", "filters", "sort_by"},
			testArgs: map[string]any{
				"query_id": testQueryID,
				"filters":  "tx_count > 10",
			},
			expectedMethod: "GetLatestResult",
			validateCall: func(t *testing.T, args []interface{}) {
				if args[0] != testQueryID {
					t.Errorf("Expected query ID %d, got %v", testQueryID, args[0])
				}
				opts := args[1].(*dune.ResultOptions)
				if opts.Filters != "tx_count > 10" {
					t.Errorf("Expected filters 'tx_count > 10', got %q", opts.Filters)
				}
			},
		},
		{
			name:                "get_latest_result_csv",
			toolset:             "executions",
			descriptionKeywords: []string{"recent", "csv"},
			descriptionMinLen:   10,
			requiredParams:      []string{"query_id"},
			optionalParams:      []string{"limit", "offset"},
			testArgs:            map[string]any{"query_id": testQueryID},
			expectedMethod:      "GetLatestResultCSV",
			validateCall: func(t *testing.T, args []interface{}) {
				if args[0] != testQueryID {
					t.Errorf("Expected query ID %d, got %v", testQueryID, args[0])
				}
				if limit := args[1].(*int); limit != nil {
					t.Errorf("Expected nil limit when omitted, got %v", *limit)
				}
			},
		},
		{
			name:                "cancel_execution",
			toolset:             "executions",
			descriptionKeywords: []string{"cancel"},
			descriptionMinLen:   10,
			requiredParams:      []string{"execution_id"},
			testArgs:            map[string]any{"execution_id": testExecutionID},
			expectedMethod:      "CancelExecution",
			validateCall: func(t *testing.T, args []interface{}) {
				if args[0] != testExecutionID {
					t.Errorf("Expected execution ID %q, got %v", testExecutionID, args[0])
				}
			},
		},
	}
}
