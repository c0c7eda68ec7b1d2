// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package dune

import (
	"context"
	"fmt"
)

// CreateQuery creates a saved query and returns its ID.
func (c *Client) CreateQuery(ctx context.Context, req *CreateQueryRequest) (any, error) {
	return c.post(ctx, "/query", req)
}

// ReadQuery fetches a saved query's definition.
func (c *Client) ReadQuery(ctx context.Context, queryID int) (any, error) {
	return c.get(ctx, fmt.Sprintf("/query/%d", queryID), nil)
}

// UpdateQuery patches a saved query. Only the fields set on req are sent.
func (c *Client) UpdateQuery(ctx context.Context, queryID int, req *UpdateQueryRequest) (any, error) {
	return c.patch(ctx, fmt.Sprintf("/query/%d", queryID), req)
}

// ArchiveQuery archives a saved query.
func (c *Client) ArchiveQuery(ctx context.Context, queryID int) (any, error) {
	return c.post(ctx, fmt.Sprintf("/query/%d/archive", queryID), nil)
}

// UnarchiveQuery restores an archived query.
func (c *Client) UnarchiveQuery(ctx context.Context, queryID int) (any, error) {
	return c.post(ctx, fmt.Sprintf("/query/%d/unarchive", queryID), nil)
}

// PrivateQuery makes a saved query private.
func (c *Client) PrivateQuery(ctx context.Context, queryID int) (any, error) {
	return c.post(ctx, fmt.Sprintf("/query/%d/private", queryID), nil)
}

// UnprivateQuery makes a saved query public.
func (c *Client) UnprivateQuery(ctx context.Context, queryID int) (any, error) {
	return c.post(ctx, fmt.Sprintf("/query/%d/unprivate", queryID), nil)
}

// ListQueries lists the queries owned by the API key's account.
func (c *Client) ListQueries(ctx context.Context, limit, offset *int) (any, error) {
	return c.get(ctx, "/queries", pageQuery(limit, offset))
}

// GetQueryPipeline fetches the pipeline definition attached to a query.
func (c *Client) GetQueryPipeline(ctx context.Context, queryID int) (any, error) {
	return c.get(ctx, fmt.Sprintf("/query/%d/pipeline", queryID), nil)
}
