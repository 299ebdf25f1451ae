package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/cssbridge/cssbridge/internal/domain"
)

// Validator produces a report for one request.
type Validator interface {
	Validate(ctx context.Context, raw domain.RawRequest) (*domain.Report, error)
}

// NewCSSBridgeMCPServer creates an MCP server exposing the validator as the
// css_validate tool and the parameter catalog as a resource.
func NewCSSBridgeMCPServer(validator Validator, catalog domain.Catalog, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"cssbridge",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, validator, catalog)
	registerResources(s, catalog)

	return s
}
