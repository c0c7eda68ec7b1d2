// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/deacix/dune-mcp/internal/dune"
	"github.com/deacix/dune-mcp/internal/logging"
)

// Helper functions to create JSON Schema definitions
func stringProperty(description string) map[string]any {
	return map[string]any{
		"type":        "string",
		"description": description,
	}
}

func intProperty(description string) map[string]any {
	return map[string]any{
		"type":        "integer",
		"description": description,
	}
}

func boolProperty(description string) map[string]any {
	return map[string]any{
		"type":        "boolean",
		"description": description,
	}
}

func createSchema(properties map[string]any, required []string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// The host can only pass structured values as JSON-encoded strings, so each
// structured argument is decoded right at the tool boundary. A decode
// failure renders as an error string like any other tool failure.

// decodeObject parses a JSON object argument. An empty string means the
// argument was not supplied.
func decodeObject(name, encoded string) (map[string]any, error) {
	if encoded == "" {
		return nil, nil
	}
	var object map[string]any
	if err := json.Unmarshal([]byte(encoded), &object); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return object, nil
}

// decodeParameters parses a JSON array of query parameter definitions. An
// empty string means the argument was not supplied.
func decodeParameters(encoded string) ([]dune.QueryParameter, error) {
	if encoded == "" {
		return nil, nil
	}
	var parameters []dune.QueryParameter
	if err := json.Unmarshal([]byte(encoded), &parameters); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	return parameters, nil
}

// decodeColumns parses the JSON column list of a table schema.
func decodeColumns(encoded string) ([]dune.ColumnDefinition, error) {
	var columns []dune.ColumnDefinition
	if err := json.Unmarshal([]byte(encoded), &columns); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return columns, nil
}

// decodeRows parses a JSON array of row objects.
func decodeRows(encoded string) ([]map[string]any, error) {
	var rows []map[string]any
	if err := json.Unmarshal([]byte(encoded), &rows); err != nil {
		return nil, fmt.Errorf("invalid data: %w", err)
	}
	return rows, nil
}

// splitTags turns a comma-separated tag string into a trimmed list. Entries
// that are empty after trimming are dropped.
func splitTags(tags string) []string {
	var parsed []string
	for _, tag := range strings.Split(tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			parsed = append(parsed, tag)
		}
	}
	return parsed
}

// isPrivateDefault applies the default for the is_private argument, which is
// true unless the caller explicitly opts out.
func isPrivateDefault(arg *bool) bool {
	if arg == nil {
		return true
	}
	return *arg
}

// formatResponse renders a client result for the host: strings (the CSV
// endpoints) pass through verbatim, everything else becomes indented JSON.
func formatResponse(result any) (string, error) {
	if text, ok := result.(string); ok {
		return text, nil
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// renderError turns a failure into the text shown to the host. Upstream API
// failures keep their status code and message; everything else gets a
// generic prefix.
func renderError(err error) string {
	var apiErr *dune.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return fmt.Sprintf("Error: %v", err)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// handleToolResult converts a handler outcome into the tool reply. Failures
// render as text like successes do: the host always receives a displayable
// string, never a protocol error.
func handleToolResult(ctx context.Context, tool string, result any, err error) (*mcp.CallToolResult, any, error) {
	logger := logging.FromContext(ctx)
	if err == nil {
		text, formatErr := formatResponse(result)
		if formatErr == nil {
			logger.Debug("tool call completed", "tool", tool)
			return textResult(text), result, nil
		}
		err = formatErr
	}
	logger.Debug("tool call failed", "tool", tool, "error", err)
	return textResult(renderError(err)), nil, nil
}
