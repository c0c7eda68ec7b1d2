// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/deacix/dune-mcp/internal/dune"
)

func (t *Toolsets) RegisterCreateTable(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name: "create_table",
		Description: "Create an empty table with a typed schema. Load rows afterwards with " +
			"insert_data or insert_csv_data.",
		InputSchema: createSchema(map[string]any{
			"namespace":  stringProperty("Namespace that owns the table, usually your team or user handle"),
			"table_name": stringProperty("Name of the table to create"),
			"schema": stringProperty(
				"JSON array of column definitions, e.g. " +
					"[{\"name\": \"wallet\", \"type\": \"varchar\"}, {\"name\": \"amount\", \"type\": \"double\"}]"),
			"description": stringProperty("Optional description of the table"),
			"is_private":  boolProperty("Whether the table is private (default true)"),
		}, []string{"namespace", "table_name", "schema"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		Namespace   string `json:"namespace"`
		TableName   string `json:"table_name"`
		Schema      string `json:"schema"`
		Description string `json:"description"`
		IsPrivate   *bool  `json:"is_private"`
	}) (*mcp.CallToolResult, any, error) {
		columns, err := decodeColumns(args.Schema)
		if err != nil {
			return handleToolResult(ctx, "create_table", nil, err)
		}
		result, err := t.TableToolset.CreateTable(ctx, &dune.CreateTableRequest{
			Namespace:   args.Namespace,
			TableName:   args.TableName,
			Schema:      columns,
			Description: args.Description,
			IsPrivate:   isPrivateDefault(args.IsPrivate),
		})
		return handleToolResult(ctx, "create_table", result, err)
	})
}

func (t *Toolsets) RegisterUploadCSV(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name: "upload_csv",
		Description: "Upload CSV content as a new table in one step. Column types are inferred from " +
			"the data; use create_table for explicit typing.",
		InputSchema: createSchema(map[string]any{
			"table_name":  stringProperty("Name of the table to create from the CSV"),
			"csv_data":    stringProperty("The CSV content including a header row"),
			"description": stringProperty("Optional description of the table"),
			"is_private":  boolProperty("Whether the table is private (default true)"),
		}, []string{"table_name", "csv_data"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		TableName   string `json:"table_name"`
		CSVData     string `json:"csv_data"`
		Description string `json:"description"`
		IsPrivate   *bool  `json:"is_private"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.TableToolset.UploadCSV(ctx, args.TableName, args.CSVData, args.Description,
			isPrivateDefault(args.IsPrivate))
		return handleToolResult(ctx, "upload_csv", result, err)
	})
}

func (t *Toolsets) RegisterInsertData(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "insert_data",
		Description: "Append rows to an existing table. Row keys must match the table's column names.",
		InputSchema: createSchema(map[string]any{
			"namespace":  stringProperty("Namespace that owns the table"),
			"table_name": stringProperty("Name of the table to insert into"),
			"data": stringProperty(
				"JSON array of row objects, e.g. [{\"wallet\": \"0x...\", \"amount\": 1.5}]"),
		}, []string{"namespace", "table_name", "data"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		Namespace string `json:"namespace"`
		TableName string `json:"table_name"`
		Data      string `json:"data"`
	}) (*mcp.CallToolResult, any, error) {
		rows, err := decodeRows(args.Data)
		if err != nil {
			return handleToolResult(ctx, "insert_data", nil, err)
		}
		result, err := t.TableToolset.InsertRows(ctx, args.Namespace, args.TableName, rows)
		return handleToolResult(ctx, "insert_data", result, err)
	})
}

func (t *Toolsets) RegisterInsertCSVData(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "insert_csv_data",
		Description: "Append CSV rows to an existing table. The CSV header must match the table's columns.",
		InputSchema: createSchema(map[string]any{
			"namespace":  stringProperty("Namespace that owns the table"),
			"table_name": stringProperty("Name of the table to insert into"),
			"csv_data":   stringProperty("The CSV content including a header row"),
		}, []string{"namespace", "table_name", "csv_data"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		Namespace string `json:"namespace"`
		TableName string `json:"table_name"`
		CSVData   string `json:"csv_data"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.TableToolset.InsertCSV(ctx, args.Namespace, args.TableName, args.CSVData)
		return handleToolResult(ctx, "insert_csv_data", result, err)
	})
}

func (t *Toolsets) RegisterClearTable(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "clear_table",
		Description: "Delete all rows from a table while keeping the table and its schema.",
		InputSchema: createSchema(map[string]any{
			"namespace":  stringProperty("Namespace that owns the table"),
			"table_name": stringProperty("Name of the table to clear"),
		}, []string{"namespace", "table_name"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		Namespace string `json:"namespace"`
		TableName string `json:"table_name"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.TableToolset.ClearTable(ctx, args.Namespace, args.TableName)
		return handleToolResult(ctx, "clear_table", result, err)
	})
}

func (t *Toolsets) RegisterDeleteTable(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "delete_table",
		Description: "Delete a table and all of its rows permanently.",
		InputSchema: createSchema(map[string]any{
			"namespace":  stringProperty("Namespace that owns the table"),
			"table_name": stringProperty("Name of the table to delete"),
		}, []string{"namespace", "table_name"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		Namespace string `json:"namespace"`
		TableName string `json:"table_name"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.TableToolset.DeleteTable(ctx, args.Namespace, args.TableName)
		return handleToolResult(ctx, "delete_table", result, err)
	})
}

func (t *Toolsets) RegisterListTables(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_tables",
		Description: "List the uploaded tables owned by the authenticated account.",
		InputSchema: createSchema(map[string]any{
			"limit":  intProperty("Maximum number of tables to return"),
			"offset": intProperty("Number of tables to skip, for pagination"),
		}, nil),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct {
		Limit  *int `json:"limit"`
		Offset *int `json:"offset"`
	}) (*mcp.CallToolResult, any, error) {
		result, err := t.TableToolset.ListTables(ctx, args.Limit, args.Offset)
		return handleToolResult(ctx, "list_tables", result, err)
	})
}
