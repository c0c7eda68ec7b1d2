// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import "testing"

// pipelineToolSpecs returns test specs for the pipelines toolset
func pipelineToolSpecs() []toolTestSpec {
	return []toolTestSpec{
		{
			name:                "execute_pipeline",
			toolset:             "pipelines",
			descriptionKeywords: []string{"execute", "pipeline", "slug"},
			descriptionMinLen:   10,
			requiredParams:      []string{"pipeline_slug"},
			optionalParams:      []string{"performance"},
			testArgs:            map[string]any{"pipeline_slug": "nightly-refresh"},
			expectedMethod:      "ExecutePipeline",
			validateCall: func(t *testing.T, args []interface{}) {
				if args[0] != "nightly-refresh" {
					t.Errorf("Expected pipeline slug 'nightly-refresh', got %v", args[0])
				}
			},
		},
		{
			name:                "get_pipeline_status",
			toolset:             "pipelines",
			descriptionKeywords: []string{"pipeline", "state"},
			descriptionMinLen:   10,
			requiredParams:      []string{"execution_id"},
			testArgs:            map[string]any{"execution_id": testExecutionID},
			expectedMethod:      "GetPipelineStatus",
			validateCall: func(t *testing.T, args []interface{}) {
				if args[0] != testExecutionID {
					t.Errorf("Expected execution ID %q, got %v", testExecutionID, args[0])
				}
			},
		},
	}
}
