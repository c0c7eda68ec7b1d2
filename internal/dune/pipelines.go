// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package dune

import (
	"context"
	"fmt"
)

// ExecutePipeline starts a pipeline execution by slug. Slugs carry their own
// path separator, e.g. "team/pipeline-name", and are passed through as-is.
func (c *Client) ExecutePipeline(ctx context.Context, pipelineSlug, performance string) (any, error) {
	req := performanceRequest{Performance: defaultPerformance(performance)}
	return c.post(ctx, fmt.Sprintf("/pipelines/%s/execute", pipelineSlug), req)
}

// GetPipelineStatus reports the state of a pipeline execution.
func (c *Client) GetPipelineStatus(ctx context.Context, executionID string) (any, error) {
	return c.get(ctx, fmt.Sprintf("/pipelines/%s/status", executionID), nil)
}
