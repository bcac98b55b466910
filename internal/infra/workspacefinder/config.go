package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the marker file of a workspace root.
const ConfigFile = "toolbelt.yaml"

// LoadConfig loads toolbelt.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	l := y.Toolbelt.Limits
	if l.MaxValue != nil {
		// 0 lifts the ceiling; overflow checks still apply.
		if *l.MaxValue < 0 {
			return cfg, invalidField(path, "limits.max_value", "must not be negative")
		}
		cfg.Limits.MaxValue = *l.MaxValue
	}
	if l.MaxNumbers != nil {
		if *l.MaxNumbers < 2 {
			return cfg, invalidField(path, "limits.max_numbers", "must be at least 2")
		}
		cfg.Limits.MaxNumbers = *l.MaxNumbers
	}
	if l.BatchWorkers != nil {
		if *l.BatchWorkers <= 0 {
			return cfg, invalidField(path, "limits.batch_workers", "must be positive")
		}
		cfg.Limits.BatchWorkers = *l.BatchWorkers
	}

	if y.Toolbelt.History.Enabled != nil {
		cfg.History.Enabled = *y.Toolbelt.History.Enabled
	}
	if y.Toolbelt.History.Dir != "" {
		cfg.History.Dir = y.Toolbelt.History.Dir
	}

	if f := strings.TrimSpace(y.Toolbelt.Defaults.Format); f != "" {
		if f != "pretty" && f != "json" {
			return cfg, invalidField(path, "defaults.format", fmt.Sprintf("unsupported format %q", f))
		}
		cfg.Defaults.Format = f
	}

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "workspacefinder.loadconfig",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}

type yamlConfig struct {
	Toolbelt struct {
		Limits struct {
			MaxValue     *int64 `yaml:"max_value"`
			MaxNumbers   *int   `yaml:"max_numbers"`
			BatchWorkers *int   `yaml:"batch_workers"`
		} `yaml:"limits"`

		History struct {
			Enabled *bool  `yaml:"enabled"`
			Dir     string `yaml:"dir"`
		} `yaml:"history"`

		Defaults struct {
			Format string `yaml:"format"`
		} `yaml:"defaults"`
	} `yaml:"toolbelt"`
}
