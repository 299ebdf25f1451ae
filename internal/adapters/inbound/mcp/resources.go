package mcp

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/cssbridge/cssbridge/internal/domain"
)

const catalogURI = "cssbridge://catalog"

// catalogDocument is the JSON served for the catalog resource.
type catalogDocument struct {
	domain.Catalog
	DefaultProfile string `json:"default_profile"`
	DefaultLang    string `json:"default_lang"`
}

// registerResources registers the cssbridge MCP resources on the given server.
func registerResources(s *server.MCPServer, catalog domain.Catalog) {
	s.AddResource(
		mcplib.NewResource(
			catalogURI,
			"Validator Catalog",
			mcplib.WithResourceDescription("Profiles and message languages accepted by css_validate"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCatalogResource(catalog),
	)
}

func handleCatalogResource(catalog domain.Catalog) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(catalogDocument{
			Catalog:        catalog,
			DefaultProfile: domain.DefaultProfile,
			DefaultLang:    domain.DefaultLang,
		}, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling catalog: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      catalogURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
