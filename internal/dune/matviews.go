// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package dune

import (
	"context"
	"fmt"
)

// GetMaterializedView fetches a materialized view by its full name, e.g.
// "dune.team.result_daily_volume".
func (c *Client) GetMaterializedView(ctx context.Context, name string) (any, error) {
	return c.get(ctx, fmt.Sprintf("/materialized-views/%s", name), nil)
}

// UpsertMaterializedView creates a materialized view or updates an existing
// one with the same name.
func (c *Client) UpsertMaterializedView(ctx context.Context, req *UpsertMaterializedViewRequest) (any, error) {
	body := *req
	body.Performance = defaultPerformance(body.Performance)
	return c.post(ctx, "/materialized-views", body)
}

// DeleteMaterializedView removes a materialized view.
func (c *Client) DeleteMaterializedView(ctx context.Context, name string) (any, error) {
	return c.delete(ctx, fmt.Sprintf("/materialized-views/%s", name))
}

// ListMaterializedViews lists the account's materialized views.
func (c *Client) ListMaterializedViews(ctx context.Context, limit, offset *int) (any, error) {
	return c.get(ctx, "/materialized-views", pageQuery(limit, offset))
}

// RefreshMaterializedView triggers a refresh and returns the execution
// handle.
func (c *Client) RefreshMaterializedView(ctx context.Context, name, performance string) (any, error) {
	req := performanceRequest{Performance: defaultPerformance(performance)}
	return c.post(ctx, fmt.Sprintf("/materialized-views/%s/refresh", name), req)
}
