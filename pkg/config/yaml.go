package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses YAML config content into a Config layered over the
// defaults: fields absent from the file keep their default values.
func ParseYAML(data []byte) (*Config, error) {
	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.MaxIgnoreLines < 0 {
		return fmt.Errorf("max_ignore_lines must not be negative, got %d", c.MaxIgnoreLines)
	}
	if c.Format != "" && !c.Format.IsValid() {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}
	for _, ext := range c.Extensions {
		if ext == "" || ext[0] != '.' {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	return nil
}

// YAML renders the config as a YAML document.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return out, nil
}
