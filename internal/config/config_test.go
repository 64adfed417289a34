package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lsedump.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestTemplateLoadsAsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lsedump.toml")
	if err := WriteTemplate(path, "dump", false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	cfg, err := LoadDumpConfig(path)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	if cfg != DefaultDumpConfig() {
		t.Fatalf("template differs from defaults: got=%+v want=%+v", cfg, DefaultDumpConfig())
	}
}

func TestWriteTemplateRefusesOverwrite(t *testing.T) {
	path := writeConfig(t, "format = \"json\"\n")
	if err := WriteTemplate(path, "dump", false); err == nil {
		t.Fatalf("expected overwrite refusal")
	}
	if err := WriteTemplate(path, "dump", true); err != nil {
		t.Fatalf("forced write: %v", err)
	}
	if _, err := Template("ghost"); err == nil {
		t.Fatalf("expected unknown kind error")
	}
}

func TestLoadDumpConfigOverlaysDefinedKeys(t *testing.T) {
	path := writeConfig(t, "format = \" JSON \"\nverbose = true\n")
	cfg, err := LoadDumpConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Format != FormatJSON || !cfg.Verbose {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Input != InputBinary || cfg.MaxMessageBytes != DefaultDumpConfig().MaxMessageBytes {
		t.Fatalf("defaults not kept: %+v", cfg)
	}
}

func TestLoadDumpConfigRejects(t *testing.T) {
	cases := map[string]string{
		"format":  "format = \"xml\"\n",
		"input":   "input = \"base64\"\n",
		"max":     "max_message_bytes = 2\n",
		"unknown": "colour = true\n",
		"syntax":  "format = \n",
	}
	for name, body := range cases {
		if _, err := LoadDumpConfig(writeConfig(t, body)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadDumpConfigMissingFile(t *testing.T) {
	_, err := LoadDumpConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), "config load failed") {
		t.Fatalf("expected load failure, got %v", err)
	}
}
