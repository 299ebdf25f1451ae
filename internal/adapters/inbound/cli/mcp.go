package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/cssbridge/cssbridge/internal/adapters/inbound/mcp"
	"github.com/cssbridge/cssbridge/internal/domain"
)

func newMCPCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the cssbridge MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(configPath))
	return cmd
}

func newMCPServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start cssbridge MCP server (stdio)",
		Long:  "Start the cssbridge MCP server using stdio transport. Assistants can validate stylesheets with css_validate and read the accepted profiles from cssbridge://catalog.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			svc := newValidateService(cfg, logger)
			s := mcpadapter.NewCSSBridgeMCPServer(svc, domain.DefaultCatalog(), version)
			return server.ServeStdio(s)
		},
	}
}
