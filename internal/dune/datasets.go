// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package dune

import (
	"context"
	"fmt"
)

// GetDataset fetches a dataset's metadata, including its columns.
func (c *Client) GetDataset(ctx context.Context, namespace, datasetName string) (any, error) {
	return c.get(ctx, fmt.Sprintf("/datasets/%s/%s", namespace, datasetName), nil)
}

// ListDatasets lists datasets, optionally filtered by owner.
func (c *Client) ListDatasets(ctx context.Context, owner string, limit, offset *int) (any, error) {
	q := pageQuery(limit, offset)
	if owner != "" {
		q.Set("owner", owner)
	}
	return c.get(ctx, "/datasets", q)
}
