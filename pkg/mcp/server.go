// Copyright 2026 The dune-mcp Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/deacix/dune-mcp/pkg/mcp/tools"
)

const serverInstructions = "Query blockchain data via Dune Analytics API"

func NewHTTPServer(tools *tools.Toolsets) http.Handler {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "dune-mcp",
		Version: "1.0.0",
	}, &mcp.ServerOptions{
		Instructions: serverInstructions,
	})
	tools.Register(server)
	return mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, nil)
}

func NewSTDIO(tools *tools.Toolsets) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "dune-mcp",
		Version: "1.0.0",
	}, &mcp.ServerOptions{
		Instructions: serverInstructions,
	})
	tools.Register(server)
	return server
}
