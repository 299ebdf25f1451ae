package cli

import (
	"go.uber.org/zap"

	"github.com/cssbridge/cssbridge/internal/adapters/outbound/config"
	"github.com/cssbridge/cssbridge/internal/adapters/outbound/soap"
	"github.com/cssbridge/cssbridge/internal/adapters/outbound/validator"
	"github.com/cssbridge/cssbridge/internal/application"
	"github.com/cssbridge/cssbridge/internal/domain"
	"github.com/cssbridge/cssbridge/internal/logging"
)

// setup resolves the configuration and installs the global logger.
func setup(configPath string) (domain.ServiceConfig, *zap.Logger, error) {
	cfg, err := config.Resolve(config.New(), configPath)
	if err != nil {
		return domain.ServiceConfig{}, nil, err
	}
	logger := logging.Initialize(cfg.Debug)
	logger.Debug("Configuration resolved",
		zap.String("listen", cfg.Listen),
		zap.String("route", cfg.Route),
		zap.Strings("validator", cfg.Validator.Command),
		zap.Duration("timeout", cfg.Validator.Timeout),
	)
	return cfg, logger, nil
}

// newValidateService wires the validator process, the SOAP translator and
// the default catalog.
func newValidateService(cfg domain.ServiceConfig, logger *zap.Logger) *application.ValidateService {
	sugar := logger.Sugar()
	return application.NewValidateService(
		domain.DefaultCatalog(),
		validator.New(cfg.Validator, sugar),
		soap.NewTranslator(sugar),
		sugar,
	)
}
