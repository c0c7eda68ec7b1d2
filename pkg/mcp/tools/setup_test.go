// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	testExecutionID = "01JGEXEC"
	testQueryID     = 4242
	testNamespace   = "my_team"
	testTableName   = "wallet_labels"
	testViewName    = "dune.my_team.result_daily_volume"
	testCSVInput    = "wallet,label\n0xabc,whale\n0xdef,exchange\n"
)

func setupTestServer(t *testing.T) (*mcp.ClientSession, *MockDuneHandler) {
	t.Helper()
	mockHandler := NewMockDuneHandler()
	toolsets := &Toolsets{
		ExecutionToolset:        mockHandler,
		QueryToolset:            mockHandler,
		MaterializedViewToolset: mockHandler,
		TableToolset:            mockHandler,
		DatasetToolset:          mockHandler,
		PipelineToolset:         mockHandler,
		UsageToolset:            mockHandler,
	}
	clientSession := setupTestServerWithToolset(t, toolsets)
	return clientSession, mockHandler
}

// setupTestServerWithToolset creates a test MCP server with the provided toolsets
func setupTestServerWithToolset(t *testing.T, toolsets *Toolsets) *mcp.ClientSession {
	t.Helper()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "test-dune-mcp",
		Version: "1.0.0",
	}, nil)

	toolsets.Register(server)

	// Create client connection
	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	_, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("Failed to connect server: %v", err)
	}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("Failed to connect client: %v", err)
	}

	return clientSession
}

// toolTestSpec defines the complete test specification for a single MCP tool
type toolTestSpec struct {
	name string

	// Toolset association
	toolset string // "executions", "queries", "materialized_views", "tables", "datasets", "pipelines", "usage"

	// Description validation
	descriptionKeywords []string
	descriptionMinLen   int

	// Schema validation
	requiredParams []string
	optionalParams []string

	// Parameter wiring test
	testArgs       map[string]any
	expectedMethod string
	validateCall   func(t *testing.T, args []interface{})
}

// allToolSpecs aggregates all tool specs from all toolsets
var allToolSpecs = func() []toolTestSpec {
	specs := []toolTestSpec{}
	specs = append(specs, executionToolSpecs()...)
	specs = append(specs, queryToolSpecs()...)
	specs = append(specs, materializedViewToolSpecs()...)
	specs = append(specs, tableToolSpecs()...)
	specs = append(specs, datasetToolSpecs()...)
	specs = append(specs, pipelineToolSpecs()...)
	specs = append(specs, usageToolSpecs()...)
	return specs
}()
