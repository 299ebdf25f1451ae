package cli

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/cssbridge/cssbridge/internal/adapters/inbound/rest"
)

func newServeCmd(configPath *string) *cobra.Command {
	var listen, route string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validation endpoint over HTTP",
		Long:  "Start the HTTP server. POST css, profile and lang to the validation route; /live, /ready and /metrics are served alongside.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if listen != "" {
				cfg.Listen = listen
			}
			if route != "" {
				cfg.Route = route
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			gin.SetMode(gin.ReleaseMode)
			srv := rest.NewServer(newValidateService(cfg, logger), cfg.Route, logger)
			srv.AddReadinessCheck("validator-command", commandCheck(cfg.Validator.Command))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx, cfg.Listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (overrides config)")
	cmd.Flags().StringVar(&route, "route", "", "Path of the validation endpoint (overrides config)")

	return cmd
}

// commandCheck reports whether the validator executable can be found.
func commandCheck(command []string) func() error {
	return func() error {
		if len(command) == 0 {
			return fmt.Errorf("validator command is empty")
		}
		if _, err := exec.LookPath(command[0]); err != nil {
			return err
		}
		return nil
	}
}
