package config

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/wayfindex/pkg/errors"
)

// DefaultPath is the config file used when none is given.
const DefaultPath = "config.yaml"

// Load reads, parses, and validates a configuration file.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewConfigError("loader", "configuration file "+path+" not found", err)
		}
		return nil, errors.WrapIO("read", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save serializes the configuration back to YAML at the given path.
func Save(path string, cfg *Config) error {
	data, err := yaml.MarshalWithOptions(cfg,
		yaml.Indent(2),
		yaml.IndentSequence(true),
	)
	if err != nil {
		return errors.WrapParse("yaml", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
