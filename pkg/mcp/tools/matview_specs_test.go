// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"testing"

	"github.com/deacix/dune-mcp/internal/dune"
)

// materializedViewToolSpecs returns test specs for the materialized views toolset
func materializedViewToolSpecs() []toolTestSpec {
	return []toolTestSpec{
		{
			name:                "get_materialized_view",
			toolset:             "materialized_views",
			descriptionKeywords: []string{"materialized", "view"},
			descriptionMinLen:   10,
			requiredParams:      []string{"name"},
			testArgs:            map[string]any{"name": testViewName},
			expectedMethod:      "GetMaterializedView",
			validateCall: func(t *testing.T, args []interface{}) {
				if args[0] != testViewName {
					t.Errorf("Expected view name %q, got %v", testViewName, args[0])
				}
			},
		},
		{
			name:                "upsert_materialized_view",
			toolset:             "materialized_views",
			descriptionKeywords: []string{"materialized", "cron"},
			descriptionMinLen:   10,
			requiredParams:      []string{"name", "query_id"},
			optionalParams:      []string{"cron_expression", "performance"},
			testArgs: map[string]any{
				"name":            testViewName,
				"query_id":        testQueryID,
				"cron_expression": "0 * * * *",
			},
			expectedMethod: "UpsertMaterializedView",
			validateCall: func(t *testing.T, args []interface{}) {
				req := args[0].(*dune.UpsertMaterializedViewRequest)
				if req.Name != testViewName {
					t.Errorf("Expected view name %q, got %q", testViewName, req.Name)
				}
				if req.QueryID != testQueryID {
					t.Errorf("Expected query ID %d, got %d", testQueryID, req.QueryID)
				}
				if req.CronExpression != "0 * * * *" {
					t.Errorf("Expected cron '0 * * * *', got %q", req.CronExpression)
				}
			},
		},
		{
			name:                "delete_materialized_view",
			toolset:             "materialized_views",
			descriptionKeywords: []string{"delete", "view"},
			descriptionMinLen:   10,
			requiredParams:      []string{"name"},
			testArgs:            map[string]any{"name": testViewName},
			expectedMethod:      "DeleteMaterializedView",
			validateCall: func(t *testing.T, args []interface{}) {
				if args[0] != testViewName {
					t.Errorf("Expected view name %q, got %v", testViewName, args[0])
				}
			},
		},
		{
			name:                "list_materialized_views",
			toolset:             "materialized_views",
			descriptionKeywords: []string{"list", "view"},
			descriptionMinLen:   10,
			requiredParams:      []string{},
			optionalParams:      []string{"limit", "offset"},
			testArgs:            map[string]any{},
			expectedMethod:      "ListMaterializedViews",
			validateCall: func(t *testing.T, args []interface{}) {
				if limit := args[0].(*int); limit != nil {
					t.Errorf("Expected nil limit when omitted, got %v", *limit)
				}
				if offset := args[1].(*int); offset != nil {
					t.Errorf("Expected nil offset when omitted, got %v", *offset)
				}
			},
		},
		{
			name:                "refresh_materialized_view",
			toolset:             "materialized_views",
			descriptionKeywords: []string{"refresh", "view"},
			descriptionMinLen:   10,
			requiredParams:      []string{"name"},
			optionalParams:      []string{"performance"},
			testArgs: map[string]any{
				"name":        testViewName,
				"performance": "large",
			},
			expectedMethod: "RefreshMaterializedView",
			validateCall: func(t *testing.T, args []interface{}) {
				if args[0] != testViewName {
					t.Errorf("Expected view name %q, got %v", testViewName, args[0])
				}
				if args[1] != "large" {
					t.Errorf("Expected performance 'large', got %v", args[1])
				}
			},
		},
	}
}
