// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package dune

import (
	"net/url"
	"strconv"
)

// Performance tiers accepted by the execution endpoints.
const (
	PerformanceMedium = "medium"
	PerformanceLarge  = "large"
)

// QueryParameter is a parameter attached to a saved query. Type is one of
// "text", "number", "date" or "enum"; EnumOptions applies to "enum" only.
type QueryParameter struct {
	Key         string   `json:"key"`
	Value       string   `json:"value"`
	Type        string   `json:"type,omitempty"`
	EnumOptions []string `json:"enumOptions,omitempty"`
}

// CreateQueryRequest is the payload for creating a saved query.
type CreateQueryRequest struct {
	Name        string           `json:"name"`
	QuerySQL    string           `json:"query_sql"`
	Description string           `json:"description,omitempty"`
	IsPrivate   bool             `json:"is_private"`
	Parameters  []QueryParameter `json:"parameters,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
}

// UpdateQueryRequest is the payload for updating a saved query. Nil fields
// are left out of the PATCH body so the upstream keeps their current values.
type UpdateQueryRequest struct {
	Name        *string          `json:"name,omitempty"`
	QuerySQL    *string          `json:"query_sql,omitempty"`
	Description *string          `json:"description,omitempty"`
	Parameters  []QueryParameter `json:"parameters,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
}

// UpsertMaterializedViewRequest is the payload for creating or updating a
// materialized view. Name must carry the upstream "result_" prefix.
type UpsertMaterializedViewRequest struct {
	Name           string `json:"name"`
	QueryID        int    `json:"query_id"`
	CronExpression string `json:"cron_expression,omitempty"`
	Performance    string `json:"performance"`
}

// ColumnDefinition describes one column of an uploaded table.
type ColumnDefinition struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable,omitempty"`
}

// CreateTableRequest is the payload for creating an empty uploaded table.
type CreateTableRequest struct {
	Namespace   string             `json:"namespace"`
	TableName   string             `json:"table_name"`
	Schema      []ColumnDefinition `json:"schema"`
	Description string             `json:"description,omitempty"`
	IsPrivate   bool               `json:"is_private"`
}

// ResultOptions narrows a result fetch. Limit and Offset are pointers so
// that an explicit zero survives; Filters is a SQL-like WHERE clause and
// SortBy a column name, both skipped when empty.
type ResultOptions struct {
	Limit   *int
	Offset  *int
	Filters string
	SortBy  string
}

// query renders the options as a URL query string, leaving out unset fields.
func (o *ResultOptions) query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.Limit != nil {
		q.Set("limit", strconv.Itoa(*o.Limit))
	}
	if o.Offset != nil {
		q.Set("offset", strconv.Itoa(*o.Offset))
	}
	if o.Filters != "" {
		q.Set("filters", o.Filters)
	}
	if o.SortBy != "" {
		q.Set("sort_by", o.SortBy)
	}
	return q
}

// pageQuery renders limit/offset pagination for list endpoints.
func pageQuery(limit, offset *int) url.Values {
	q := url.Values{}
	if limit != nil {
		q.Set("limit", strconv.Itoa(*limit))
	}
	if offset != nil {
		q.Set("offset", strconv.Itoa(*offset))
	}
	return q
}

// The types below document the upstream response payloads. Client methods
// return the decoded body as-is so that fields Dune adds over time pass
// through untouched; callers that want typed access can rebind onto these.

// ExecuteQueryResponse is returned when an execution is started.
type ExecuteQueryResponse struct {
	ExecutionID string `json:"execution_id"`
	State       string `json:"state"`
}

// ExecutionStatus describes the progress of a single execution.
type ExecutionStatus struct {
	ExecutionID        string `json:"execution_id"`
	QueryID            int    `json:"query_id"`
	State              string `json:"state"`
	SubmittedAt        string `json:"submitted_at,omitempty"`
	StartedAt          string `json:"started_at,omitempty"`
	EndedAt            string `json:"ended_at,omitempty"`
	ExecutionStartedAt string `json:"execution_started_at,omitempty"`
	ExecutionEndedAt   string `json:"execution_ended_at,omitempty"`
	ResultSetBytes     int64  `json:"result_set_bytes,omitempty"`
	TotalRowCount      int64  `json:"total_row_count,omitempty"`
}

// ExecutionResult carries the rows and metadata of a finished execution.
type ExecutionResult struct {
	ExecutionID string         `json:"execution_id"`
	QueryID     int            `json:"query_id"`
	State       string         `json:"state"`
	Result      map[string]any `json:"result,omitempty"`
}

// CreateQueryResponse is returned when a query is created.
type CreateQueryResponse struct {
	QueryID int `json:"query_id"`
}

// QueryInfo describes a saved query.
type QueryInfo struct {
	QueryID     int              `json:"query_id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	QuerySQL    string           `json:"query_sql,omitempty"`
	IsPrivate   bool             `json:"is_private,omitempty"`
	IsArchived  bool             `json:"is_archived,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
	Parameters  []QueryParameter `json:"parameters,omitempty"`
}

// MaterializedViewInfo describes a materialized view.
type MaterializedViewInfo struct {
	Name           string `json:"name"`
	QueryID        int    `json:"query_id"`
	CronExpression string `json:"cron_expression,omitempty"`
	Performance    string `json:"performance,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// TableInfo describes an uploaded table.
type TableInfo struct {
	Namespace string `json:"namespace"`
	TableName string `json:"table_name"`
	FullName  string `json:"full_name,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// DatasetInfo describes a curated dataset.
type DatasetInfo struct {
	Namespace   string           `json:"namespace"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Columns     []map[string]any `json:"columns,omitempty"`
}

// UsageInfo describes billing usage for the account behind the API key.
type UsageInfo struct {
	CreditsUsed      float64 `json:"credits_used,omitempty"`
	CreditsRemaining float64 `json:"credits_remaining,omitempty"`
	PeriodStart      string  `json:"period_start,omitempty"`
	PeriodEnd        string  `json:"period_end,omitempty"`
}
