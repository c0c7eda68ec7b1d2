// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

// Package dune implements an HTTP client for the Dune Analytics API.
//
// The client is a thin translation layer: every method maps onto one REST
// endpoint, request payloads are typed, and response bodies are returned as
// decoded JSON without reshaping so new upstream fields pass through.
package dune

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the v1 endpoint of the Dune Analytics API.
	DefaultBaseURL = "https://api.dune.com/api/v1"

	// EnvAPIKey is the environment variable consulted when no API key is
	// configured explicitly.
	EnvAPIKey = "DUNE_API_KEY"

	// DefaultTimeout bounds regular API calls.
	DefaultTimeout = 60 * time.Second

	// DefaultUploadTimeout bounds CSV uploads, which carry larger bodies.
	DefaultUploadTimeout = 120 * time.Second

	apiKeyHeader = "X-Dune-API-Key"

	contentTypeJSON   = "application/json"
	contentTypeNDJSON = "application/x-ndjson"
	contentTypeCSV    = "text/csv"
)

// Config holds the settings needed to construct a Client.
type Config struct {
	// APIKey authenticates every request. When empty, the DUNE_API_KEY
	// environment variable is used instead.
	APIKey string

	// BaseURL overrides the upstream endpoint, e.g. for tests.
	BaseURL string

	// Timeout bounds regular API calls. Zero means DefaultTimeout.
	Timeout time.Duration

	// UploadTimeout bounds CSV uploads. Zero means DefaultUploadTimeout.
	UploadTimeout time.Duration
}

// Client is an authenticated Dune Analytics API client. It is safe for
// concurrent use.
type Client struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	uploadClient *http.Client
	logger       *slog.Logger
}

// NewClient creates a Dune API client. It returns an error when no API key
// is available from the config or the environment.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%s environment variable is required", EnvAPIKey)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	uploadTimeout := cfg.UploadTimeout
	if uploadTimeout <= 0 {
		uploadTimeout = DefaultUploadTimeout
	}

	return &Client{
		baseURL:      baseURL,
		apiKey:       apiKey,
		httpClient:   &http.Client{Timeout: timeout},
		uploadClient: &http.Client{Timeout: uploadTimeout},
		logger:       logger.With("component", "dune-client"),
	}, nil
}

// doRequest performs a single API call and decodes the response. Exactly one
// of jsonBody and rawBody may be set; both nil means no request body. There
// are no retries, a failed call surfaces immediately.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, jsonBody any, rawBody []byte, contentType string) (any, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	switch {
	case jsonBody != nil:
		data, err := json.Marshal(jsonBody)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	case rawBody != nil:
		bodyReader = bytes.NewReader(rawBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(apiKeyHeader, c.apiKey)
	if contentType == "" {
		contentType = contentTypeJSON
	}
	req.Header.Set("Content-Type", contentType)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("Dune API call completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	return decodeResponse(resp, body)
}

// decodeResponse turns an upstream response into the value a caller sees.
// Status >= 400 becomes an APIError. CSV bodies stay raw text. Non-JSON
// bodies on success are wrapped as {"raw": text} rather than rejected.
func decodeResponse(resp *http.Response, body []byte) (any, error) {
	if resp.StatusCode >= 400 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	if strings.Contains(resp.Header.Get("Content-Type"), contentTypeCSV) {
		return string(body), nil
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return map[string]any{"raw": string(body)}, nil
	}
	return decoded, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (any, error) {
	return c.doRequest(ctx, http.MethodGet, path, query, nil, nil, "")
}

func (c *Client) post(ctx context.Context, path string, body any) (any, error) {
	return c.doRequest(ctx, http.MethodPost, path, nil, body, nil, "")
}

func (c *Client) patch(ctx context.Context, path string, body any) (any, error) {
	return c.doRequest(ctx, http.MethodPatch, path, nil, body, nil, "")
}

func (c *Client) delete(ctx context.Context, path string) (any, error) {
	return c.doRequest(ctx, http.MethodDelete, path, nil, nil, nil, "")
}

func (c *Client) postRaw(ctx context.Context, path string, body []byte, contentType string) (any, error) {
	return c.doRequest(ctx, http.MethodPost, path, nil, nil, body, contentType)
}
