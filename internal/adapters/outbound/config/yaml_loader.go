package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cssbridge/cssbridge/internal/domain"
)

// DefaultFileName is read from the working directory when no path is given.
const DefaultFileName = "cssbridge.yaml"

// YAMLLoader implements domain.ConfigLoader by reading cssbridge.yaml.
type YAMLLoader struct{}

var _ domain.ConfigLoader = (*YAMLLoader)(nil)

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads the configuration file at path, or DefaultFileName when path is
// empty. A missing default file yields DefaultConfig; a missing explicit
// file is an error.
func (l *YAMLLoader) Load(path string) (domain.ServiceConfig, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return domain.DefaultConfig(), nil
		}
		return domain.ServiceConfig{}, err
	}

	var cfg domain.ServiceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ServiceConfig{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	// Validate before merging so typos in the raw file are reported.
	if err := cfg.Validate(); err != nil {
		return domain.ServiceConfig{}, fmt.Errorf("invalid %s: %w", path, err)
	}

	return domain.DefaultConfig().Merge(cfg), nil
}
