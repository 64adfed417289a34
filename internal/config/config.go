package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	InputBinary = "binary"
	InputHex    = "hex"
)

// DumpConfig drives cmd/lsedump.
type DumpConfig struct {
	Format          string
	Verbose         bool
	Input           string
	MaxMessageBytes int
	LogLevel        string
	Metrics         bool
}

type dumpFile struct {
	Format          string `toml:"format"`
	Verbose         bool   `toml:"verbose"`
	Input           string `toml:"input"`
	MaxMessageBytes int    `toml:"max_message_bytes"`
	LogLevel        string `toml:"log_level"`
	Metrics         bool   `toml:"metrics"`
}

func DefaultDumpConfig() DumpConfig {
	return DumpConfig{
		Format:          FormatText,
		Input:           InputBinary,
		MaxMessageBytes: 64 * 1024,
		LogLevel:        "info",
	}
}

// LoadDumpConfig overlays the keys present in path onto DefaultDumpConfig.
func LoadDumpConfig(path string) (DumpConfig, error) {
	cfg := DefaultDumpConfig()

	var raw dumpFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return DumpConfig{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return DumpConfig{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("format") {
		cfg.Format = strings.ToLower(strings.TrimSpace(raw.Format))
	}
	if meta.IsDefined("verbose") {
		cfg.Verbose = raw.Verbose
	}
	if meta.IsDefined("input") {
		cfg.Input = strings.ToLower(strings.TrimSpace(raw.Input))
	}
	if meta.IsDefined("max_message_bytes") {
		cfg.MaxMessageBytes = raw.MaxMessageBytes
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("metrics") {
		cfg.Metrics = raw.Metrics
	}

	if err := ValidateDumpConfig(cfg); err != nil {
		return DumpConfig{}, err
	}
	return cfg, nil
}

func ValidateDumpConfig(cfg DumpConfig) error {
	switch cfg.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("dump config format must be %q or %q, got %q", FormatText, FormatJSON, cfg.Format)
	}
	switch cfg.Input {
	case InputBinary, InputHex:
	default:
		return fmt.Errorf("dump config input must be %q or %q, got %q", InputBinary, InputHex, cfg.Input)
	}
	if cfg.MaxMessageBytes < 4 {
		return fmt.Errorf("dump config max_message_bytes too small: %d", cfg.MaxMessageBytes)
	}
	if cfg.MaxMessageBytes > 1<<16+2 {
		return fmt.Errorf("dump config max_message_bytes exceeds header range: %d", cfg.MaxMessageBytes)
	}
	return nil
}
