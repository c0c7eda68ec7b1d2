// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package dune

import (
	"encoding/json"
	"fmt"
)

// APIError describes an error response (status >= 400) from the Dune API.
// The message is the upstream "error" field when the body carries one, the
// raw body text otherwise.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("Dune API Error (%d): %s", e.StatusCode, e.Message)
}

// newAPIError builds an APIError from an error response body. Dune error
// bodies are usually {"error": "..."}; anything else is carried verbatim.
func newAPIError(statusCode int, body []byte) *APIError {
	var payload struct {
		Error string `json:"error"`
	}
	message := string(body)
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		message = payload.Error
	}
	return &APIError{StatusCode: statusCode, Message: message}
}
