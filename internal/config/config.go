// Package config loads the wrapper's own settings file. The external
// frameworks' config files are never parsed here; only a path is forwarded.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/signalnine/benchwrap/internal/tool"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Artifacts Artifacts         `yaml:"artifacts"`
	Secrets   Secrets           `yaml:"secrets"`
	Report    Report            `yaml:"report"`
	Tools     []tool.Descriptor `yaml:"tools"`
}

type Artifacts struct {
	Dir string `yaml:"dir"`
}

type Secrets struct {
	EnvFile string `yaml:"env_file"`
}

type Report struct {
	Format string `yaml:"format"`
}

func Default() *Config {
	return &Config{
		Artifacts: Artifacts{Dir: "artifacts"},
		Report:    Report{Format: "table"},
	}
}

// Load reads a settings file. When optional is true a missing file yields
// the defaults, so the wrapper works without any settings file at all.
func Load(path string, optional bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid settings %s: %w", path, err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Artifacts.Dir == "" {
		cfg.Artifacts.Dir = "artifacts"
	}
	if cfg.Report.Format == "" {
		cfg.Report.Format = "table"
	}
	switch cfg.Report.Format {
	case "table", "markdown", "json":
	default:
		return fmt.Errorf("report format %q not one of table, markdown, json", cfg.Report.Format)
	}
	for i, t := range cfg.Tools {
		if t.Name == "" {
			return fmt.Errorf("tool %d: name is required", i)
		}
		if t.Executable == "" {
			return fmt.Errorf("tool %q: executable is required", t.Name)
		}
	}
	return nil
}
