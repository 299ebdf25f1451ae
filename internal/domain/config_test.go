package domain_test

import (
	"testing"
	"time"

	"github.com/cssbridge/cssbridge/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "/validator", cfg.Route)
	assert.False(t, cfg.Debug)
	assert.Equal(t, []string{"java", "-jar", "css-validator.jar"}, cfg.Validator.Command)
	assert.Equal(t, 10*time.Second, cfg.Validator.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate_RouteMustBeAbsolute(t *testing.T) {
	cfg := domain.ServiceConfig{Route: "validator"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must start with /")
}

func TestConfigValidate_NegativeTimeout(t *testing.T) {
	cfg := domain.ServiceConfig{Validator: domain.ValidatorConfig{Timeout: -time.Second}}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_EmptyCommandArg(t *testing.T) {
	cfg := domain.ServiceConfig{Validator: domain.ValidatorConfig{Command: []string{"java", " "}}}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validator.command[1]")
}

func TestConfigValidate_ZeroValueIsValid(t *testing.T) {
	assert.NoError(t, domain.ServiceConfig{}.Validate())
}

func TestConfigMerge_ExplicitValuesWin(t *testing.T) {
	merged := domain.DefaultConfig().Merge(domain.ServiceConfig{
		Listen: "127.0.0.1:9000",
		Validator: domain.ValidatorConfig{
			Command: []string{"/usr/local/bin/css-validator"},
			Timeout: 3 * time.Second,
		},
	})
	assert.Equal(t, "127.0.0.1:9000", merged.Listen)
	assert.Equal(t, "/validator", merged.Route)
	assert.Equal(t, []string{"/usr/local/bin/css-validator"}, merged.Validator.Command)
	assert.Equal(t, 3*time.Second, merged.Validator.Timeout)
}

func TestConfigMerge_ZeroOverrideKeepsDefaults(t *testing.T) {
	assert.Equal(t, domain.DefaultConfig(), domain.DefaultConfig().Merge(domain.ServiceConfig{}))
}

func TestCommandForJar(t *testing.T) {
	assert.Equal(t, []string{"java", "-jar", "/opt/w3c/css-validator.jar"}, domain.CommandForJar("/opt/w3c/css-validator.jar"))
}

func TestTruthy(t *testing.T) {
	for _, s := range []string{"true", "TRUE", " True ", "1", "on", "yes", "Yes"} {
		assert.True(t, domain.Truthy(s), s)
	}
	for _, s := range []string{"false", "0", "off", "no", "", "maybe", "truthy"} {
		assert.False(t, domain.Truthy(s), s)
	}
}
