// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import "testing"

// datasetToolSpecs returns test specs for the datasets toolset
func datasetToolSpecs() []toolTestSpec {
	return []toolTestSpec{
		{
			name:                "get_dataset",
			toolset:             "datasets",
			descriptionKeywords: []string{"dataset", "schema"},
			descriptionMinLen:   10,
			requiredParams:      []string{"namespace", "dataset_name"},
			testArgs: map[string]any{
				"namespace":    "dune",
				"dataset_name": "prices",
			},
			expectedMethod: "GetDataset",
			validateCall: func(t *testing.T, args []interface{}) {
				if args[0] != "dune" {
					t.Errorf("Expected namespace 'dune', got %v", args[0])
				}
				if args[1] != "prices" {
					t.Errorf("Expected dataset name 'prices', got %v", args[1])
				}
			},
		},
		{
			name:                "list_datasets",
			toolset:             "datasets",
			descriptionKeywords: []string{"list", "dataset"},
			descriptionMinLen:   10,
			requiredParams:      []string{},
			optionalParams:      []string{"owner", "limit", "offset"},
			testArgs:            map[string]any{"owner": "dune", "limit": 20},
			expectedMethod:      "ListDatasets",
			validateCall: func(t *testing.T, args []interface{}) {
				if args[0] != "dune" {
					t.Errorf("Expected owner 'dune', got %v", args[0])
				}
				limit := args[1].(*int)
				if limit == nil || *limit != 20 {
					t.Errorf("Expected limit 20, got %v", limit)
				}
			},
		},
	}
}
