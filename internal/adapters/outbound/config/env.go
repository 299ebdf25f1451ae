package config

import (
	"fmt"
	"time"

	"github.com/united-manufacturing-hub/umh-utils/env"

	"github.com/cssbridge/cssbridge/internal/domain"
)

// Environment variables that override the configuration file.
const (
	EnvListen       = "CSSBRIDGE_LISTEN"
	EnvValidatorJar = "CSSBRIDGE_VALIDATOR_JAR"
	EnvTimeout      = "CSSBRIDGE_TIMEOUT"
	EnvDebug        = "CSS_VALIDATOR_DEBUG"
)

// ApplyEnv overlays the environment on cfg. CSS_VALIDATOR_DEBUG enables debug
// for any spelling accepted by domain.Truthy; an unparsable timeout is an error.
func ApplyEnv(cfg domain.ServiceConfig) (domain.ServiceConfig, error) {
	var override domain.ServiceConfig

	listen, err := env.GetAsString(EnvListen, false, "")
	if err != nil {
		return cfg, err
	}
	override.Listen = listen

	jar, err := env.GetAsString(EnvValidatorJar, false, "")
	if err != nil {
		return cfg, err
	}
	if jar != "" {
		override.Validator.Command = domain.CommandForJar(jar)
	}

	timeout, err := env.GetAsString(EnvTimeout, false, "")
	if err != nil {
		return cfg, err
	}
	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("%s must be a positive duration, got %q", EnvTimeout, timeout)
		}
		override.Validator.Timeout = d
	}

	debug, err := env.GetAsString(EnvDebug, false, "")
	if err != nil {
		return cfg, err
	}
	override.Debug = domain.Truthy(debug)

	return cfg.Merge(override), nil
}

// Resolve loads the file at path through loader and applies the environment.
func Resolve(loader domain.ConfigLoader, path string) (domain.ServiceConfig, error) {
	cfg, err := loader.Load(path)
	if err != nil {
		return domain.ServiceConfig{}, fmt.Errorf("loading config: %w", err)
	}
	return ApplyEnv(cfg)
}
