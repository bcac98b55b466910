package workspacefinder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

func writeConfig(t *testing.T, root, content string) {
	t.Helper()
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, ConfigFile), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	root := filepath.Join(t.TempDir(), "ws")

	// Partial config (no limits/defaults)
	writeConfig(t, root, "toolbelt:\n  history:\n    enabled: false\n")

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.History.Enabled != false {
		t.Fatalf("expected history disabled, got=%v", cfg.History.Enabled)
	}
	if cfg.History.Dir != "history" {
		t.Fatalf("expected history dir=history, got=%s", cfg.History.Dir)
	}
	if cfg.Limits.MaxValue != 1_000_000 {
		t.Fatalf("expected default max value, got=%d", cfg.Limits.MaxValue)
	}
	if cfg.Defaults.Format != "pretty" {
		t.Fatalf("expected default format pretty, got=%s", cfg.Defaults.Format)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	root := filepath.Join(t.TempDir(), "ws")
	writeConfig(t, root, `toolbelt:
  limits:
    max_value: 5000
    max_numbers: 4
    batch_workers: 2
  history:
    dir: calcs
  defaults:
    format: json
`)

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	want := domain.LimitsConfig{MaxValue: 5000, MaxNumbers: 4, BatchWorkers: 2}
	if cfg.Limits != want {
		t.Fatalf("expected limits %+v, got %+v", want, cfg.Limits)
	}
	if cfg.History.Dir != "calcs" || !cfg.History.Enabled {
		t.Fatalf("unexpected history config %+v", cfg.History)
	}
	if cfg.Defaults.Format != "json" {
		t.Fatalf("expected json format, got %s", cfg.Defaults.Format)
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"limits.max_value":   "toolbelt:\n  limits:\n    max_value: -1\n",
		"limits.max_numbers": "toolbelt:\n  limits:\n    max_numbers: 1\n",
		"defaults.format":    "toolbelt:\n  defaults:\n    format: xml\n",
	}
	for field, content := range cases {
		root := filepath.Join(t.TempDir(), "ws")
		writeConfig(t, root, content)

		_, err := LoadConfig(root)
		if !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Fatalf("%s: expected invalid config, got %v", field, err)
		}
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("%s: expected field in error, got %v", field, err)
		}
	}
}

func TestLoadConfig_ZeroMaxValueIsUnbounded(t *testing.T) {
	root := filepath.Join(t.TempDir(), "ws")
	writeConfig(t, root, "toolbelt:\n  limits:\n    max_value: 0\n")

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Limits.MaxValue != 0 {
		t.Fatalf("expected max_value 0, got %d", cfg.Limits.MaxValue)
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	root := filepath.Join(t.TempDir(), "ws")
	writeConfig(t, root, "toolbelt: [\n")

	_, err := LoadConfig(root)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid config, got %v", err)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("expected defaults alongside the error")
	}
}
