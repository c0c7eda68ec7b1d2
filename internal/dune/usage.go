// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package dune

import "context"

type usageRequest struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// GetUsage fetches billing usage. Dates use YYYY-MM-DD; with neither set the
// request carries no body and the upstream reports the current period.
func (c *Client) GetUsage(ctx context.Context, startDate, endDate string) (any, error) {
	var payload any
	if startDate != "" || endDate != "" {
		payload = usageRequest{StartDate: startDate, EndDate: endDate}
	}
	return c.post(ctx, "/usage", payload)
}
