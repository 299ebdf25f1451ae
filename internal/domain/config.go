package domain

import (
	"fmt"
	"strings"
	"time"
)

// DefaultTimeout bounds a single validator run.
const DefaultTimeout = 10 * time.Second

// ServiceConfig holds operator configuration loaded from cssbridge.yaml and
// the environment. Request-level parameters are never read from here.
type ServiceConfig struct {
	Listen    string          `yaml:"listen"    json:"listen,omitempty"`
	Route     string          `yaml:"route"     json:"route,omitempty"`
	Debug     bool            `yaml:"debug"     json:"debug,omitempty"`
	Validator ValidatorConfig `yaml:"validator" json:"validator"`
}

// ValidatorConfig locates the validator executable.
type ValidatorConfig struct {
	// Command is the argv prefix; flags and the file URI are appended to it.
	Command []string      `yaml:"command"  json:"command,omitempty"`
	Timeout time.Duration `yaml:"timeout"  json:"timeout,omitempty"`
	TempDir string        `yaml:"temp_dir" json:"temp_dir,omitempty"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() ServiceConfig {
	return ServiceConfig{
		Listen: ":8080",
		Route:  "/validator",
		Validator: ValidatorConfig{
			Command: []string{"java", "-jar", "css-validator.jar"},
			Timeout: DefaultTimeout,
		},
	}
}

// Truthy reports whether s is one of the textual spellings of true: "1",
// "true", "on" or "yes", in any case and surrounded by any whitespace.
func Truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// CommandForJar returns the argv prefix that runs the given validator jar.
func CommandForJar(jar string) []string {
	return []string{"java", "-jar", jar}
}

// Validate checks explicitly set values. Zero values are allowed and are
// filled from DefaultConfig when merged.
func (c ServiceConfig) Validate() error {
	if c.Route != "" && !strings.HasPrefix(c.Route, "/") {
		return fmt.Errorf("route %q must start with /", c.Route)
	}
	if c.Validator.Timeout < 0 {
		return fmt.Errorf("validator.timeout must be positive, got %s", c.Validator.Timeout)
	}
	for i, arg := range c.Validator.Command {
		if strings.TrimSpace(arg) == "" {
			return fmt.Errorf("validator.command[%d] is empty", i)
		}
	}
	return nil
}

// Merge overlays the explicit (non-zero) values of override on c.
func (c ServiceConfig) Merge(override ServiceConfig) ServiceConfig {
	result := c
	if override.Listen != "" {
		result.Listen = override.Listen
	}
	if override.Route != "" {
		result.Route = override.Route
	}
	if override.Debug {
		result.Debug = true
	}
	if len(override.Validator.Command) > 0 {
		result.Validator.Command = override.Validator.Command
	}
	if override.Validator.Timeout > 0 {
		result.Validator.Timeout = override.Validator.Timeout
	}
	if override.Validator.TempDir != "" {
		result.Validator.TempDir = override.Validator.TempDir
	}
	return result
}
