package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultFile = "scriptdex.yaml"

type Config struct {
	Project string     `yaml:"project"`
	Version int        `yaml:"version"`
	Docs    DocsConfig `yaml:"docs"`
	Data    DataConfig `yaml:"data"`
	Log     LogConfig  `yaml:"log"`
}

type DocsConfig struct {
	Dir string `yaml:"dir"`
}

type DataConfig struct {
	Dir string `yaml:"dir"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Project) == "" {
		return fmt.Errorf("project name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}
	if strings.TrimSpace(cfg.Docs.Dir) == "" {
		return fmt.Errorf("docs dir is required")
	}
	if strings.TrimSpace(cfg.Data.Dir) == "" {
		return fmt.Errorf("data dir is required")
	}
	return nil
}
