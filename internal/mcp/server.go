package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("tenrm", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("tenrm computes weekly training loads from 10-repetition maximums. List programs, inspect a week's phase, and compute the load table for a program week from the user's 10RM per exercise (kg)."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolListPrograms, Handler: h.listPrograms},
		server.ServerTool{Tool: toolGetPhase, Handler: h.getPhase},
		server.ServerTool{Tool: toolComputeLoadTable, Handler: h.computeLoadTable},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resPrograms, Handler: h.programs},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resPrograms = mcp.NewResource(
	"tenrm://programs",
	"Program Catalog",
	mcp.WithResourceDescription("All training programs with their descriptions and ordered exercise lists"),
	mcp.WithMIMEType("application/json"),
)
