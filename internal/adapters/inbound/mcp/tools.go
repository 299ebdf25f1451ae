package mcp

import (
	"context"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/cssbridge/cssbridge/internal/application"
	"github.com/cssbridge/cssbridge/internal/domain"
)

// registerTools registers the cssbridge MCP tools on the given server.
func registerTools(s *server.MCPServer, validator Validator, catalog domain.Catalog) {
	s.AddTool(
		mcplib.NewTool("css_validate",
			mcplib.WithDescription("Validates a stylesheet with the W3C CSS validator and returns the report as JSON"),
			mcplib.WithString("css",
				mcplib.Required(),
				mcplib.Description("CSS source to validate"),
			),
			mcplib.WithString("profile",
				mcplib.Description(fmt.Sprintf("CSS profile (default %s)", domain.DefaultProfile)),
				mcplib.Enum(catalog.Profiles...),
			),
			mcplib.WithString("lang",
				mcplib.Description(fmt.Sprintf("Language of the messages (default %s)", domain.DefaultLang)),
				mcplib.Enum(catalog.Langs...),
			),
		),
		handleValidate(validator),
	)
}

func handleValidate(validator Validator) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		css, err := request.RequireString("css")
		if err != nil {
			return mcplib.NewToolResultError(domain.MsgBadRequest), nil
		}

		raw := domain.RawRequest{CSS: css}
		args := request.GetArguments()
		if v, ok := args["profile"].(string); ok {
			raw.Profile = &v
		}
		if v, ok := args["lang"].(string); ok {
			raw.Lang = &v
		}

		report, err := validator.Validate(ctx, raw)
		_, body := application.Compose(report, err)
		payload, encErr := application.EncodeJSON(body)
		if encErr != nil {
			return nil, fmt.Errorf("encoding result: %w", encErr)
		}

		result := mcplib.NewToolResultText(string(payload))
		result.IsError = err != nil
		return result, nil
	}
}
