// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package dune

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"time"
)

// CreateTable creates an empty uploaded table with the given schema.
func (c *Client) CreateTable(ctx context.Context, req *CreateTableRequest) (any, error) {
	return c.post(ctx, "/uploads/create", req)
}

// UploadCSV creates a table from CSV content. The upload is sent as
// multipart form data through the longer-timeout client.
func (c *Client) UploadCSV(ctx context.Context, tableName, csvData, description string, isPrivate bool) (any, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	if err := form.WriteField("table_name", tableName); err != nil {
		return nil, fmt.Errorf("failed to write form field: %w", err)
	}
	if err := form.WriteField("is_private", strconv.FormatBool(isPrivate)); err != nil {
		return nil, fmt.Errorf("failed to write form field: %w", err)
	}
	if description != "" {
		if err := form.WriteField("description", description); err != nil {
			return nil, fmt.Errorf("failed to write form field: %w", err)
		}
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="data"; filename="data.csv"`)
	header.Set("Content-Type", contentTypeCSV)
	part, err := form.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to write csv part: %w", err)
	}
	if _, err := io.WriteString(part, csvData); err != nil {
		return nil, fmt.Errorf("failed to write csv part: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/uploads/csv", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Content-Type", form.FormDataContentType())

	start := time.Now()
	resp, err := c.uploadClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("Dune CSV upload completed",
		"table", tableName,
		"bytes", len(csvData),
		"status", resp.StatusCode,
		"duration", time.Since(start))

	return decodeResponse(resp, body)
}

// InsertRows appends rows to an existing table, encoded as newline-delimited
// JSON.
func (c *Client) InsertRows(ctx context.Context, namespace, tableName string, rows []map[string]any) (any, error) {
	lines := make([]string, len(rows))
	for i, row := range rows {
		data, err := json.Marshal(row)
		if err != nil {
			return nil, fmt.Errorf("failed to encode row: %w", err)
		}
		lines[i] = string(data)
	}

	path := fmt.Sprintf("/uploads/%s/%s/insert", namespace, tableName)
	return c.postRaw(ctx, path, []byte(strings.Join(lines, "\n")), contentTypeNDJSON)
}

// InsertCSV appends CSV content to an existing table. The header row must
// match the table's column names.
func (c *Client) InsertCSV(ctx context.Context, namespace, tableName, csvData string) (any, error) {
	path := fmt.Sprintf("/uploads/%s/%s/insert", namespace, tableName)
	return c.postRaw(ctx, path, []byte(csvData), contentTypeCSV)
}

// ClearTable removes all rows from a table, keeping its schema.
func (c *Client) ClearTable(ctx context.Context, namespace, tableName string) (any, error) {
	return c.post(ctx, fmt.Sprintf("/uploads/%s/%s/clear", namespace, tableName), nil)
}

// DeleteTable deletes an uploaded table.
func (c *Client) DeleteTable(ctx context.Context, namespace, tableName string) (any, error) {
	return c.delete(ctx, fmt.Sprintf("/uploads/%s/%s", namespace, tableName))
}

// ListTables lists the account's uploaded tables.
func (c *Client) ListTables(ctx context.Context, limit, offset *int) (any, error) {
	return c.get(ctx, "/uploads", pageQuery(limit, offset))
}
