// lsedump decodes captured order entry traffic and prints one line per
// message, as the diagnostic stream form or as JSON.
//
// Input is read from the files named on the command line, or from stdin
// when none are given. Captures are raw bytes, or hex text with --hex.
package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/danmuck/lsewire/internal/config"
	"github.com/danmuck/lsewire/internal/logging"
	"github.com/danmuck/lsewire/internal/observability"
	"github.com/danmuck/lsewire/internal/protocol/frame"
	"github.com/danmuck/lsewire/internal/protocol/message"
)

func main() {
	logging.ConfigureRuntime()
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Error().Err(err).Msg("lsedump failed")
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, inputs, err := parseArgs(args)
	if err != nil {
		return err
	}
	if lvl, ok := logging.ParseLevel(cfg.LogLevel); ok {
		logging.SetLevel(lvl)
	}

	src, err := openInputs(inputs, stdin)
	if err != nil {
		return err
	}
	if cfg.Input == config.InputHex {
		if src, err = decodeHex(src); err != nil {
			return err
		}
	}

	n, err := dump(src, stdout, cfg)
	log.Info().Int("messages", n).Str("format", cfg.Format).Msg("dump complete")
	if cfg.Metrics {
		if merr := observability.WriteMetrics(stderr); merr != nil && err == nil {
			err = merr
		}
	}
	return err
}

func parseArgs(args []string) (config.DumpConfig, []string, error) {
	fs := pflag.NewFlagSet("lsedump", pflag.ContinueOnError)
	configPath := fs.StringP("config", "c", "", "TOML config file (see cmd/configgen)")
	format := fs.StringP("format", "f", config.FormatText, "output format: text|json")
	verbose := fs.BoolP("verbose", "v", false, "verbose JSON: enum labels and raw prices")
	hexInput := fs.Bool("hex", false, "input is hex text instead of raw bytes")
	maxBytes := fs.Int("max-bytes", config.DefaultDumpConfig().MaxMessageBytes, "largest accepted message")
	logLevel := fs.String("log-level", "", "trace|debug|info|warn|error|off")
	metrics := fs.Bool("metrics", false, "write decoder metrics to stderr when done")

	if err := fs.Parse(args); err != nil {
		return config.DumpConfig{}, nil, err
	}

	cfg := config.DefaultDumpConfig()
	if *configPath != "" {
		loaded, err := config.LoadDumpConfig(*configPath)
		if err != nil {
			return config.DumpConfig{}, nil, err
		}
		cfg = loaded
	}
	if fs.Changed("format") {
		cfg.Format = strings.ToLower(strings.TrimSpace(*format))
	}
	if fs.Changed("verbose") {
		cfg.Verbose = *verbose
	}
	if fs.Changed("hex") {
		cfg.Input = config.InputBinary
		if *hexInput {
			cfg.Input = config.InputHex
		}
	}
	if fs.Changed("max-bytes") {
		cfg.MaxMessageBytes = *maxBytes
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = *logLevel
	}
	if fs.Changed("metrics") {
		cfg.Metrics = *metrics
	}
	if err := config.ValidateDumpConfig(cfg); err != nil {
		return config.DumpConfig{}, nil, err
	}
	return cfg, fs.Args(), nil
}

func openInputs(paths []string, stdin io.Reader) (io.Reader, error) {
	if len(paths) == 0 {
		return stdin, nil
	}
	readers := make([]io.Reader, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		readers = append(readers, bytes.NewReader(data))
	}
	return io.MultiReader(readers...), nil
}

// decodeHex accepts hex digits separated by arbitrary whitespace.
func decodeHex(r io.Reader) (io.Reader, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	clean := strings.Map(func(c rune) rune {
		if unicode.IsSpace(c) {
			return -1
		}
		return c
	}, string(text))
	data, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("decode hex input: %w", err)
	}
	return bytes.NewReader(data), nil
}

func dump(src io.Reader, out io.Writer, cfg config.DumpConfig) (int, error) {
	limits := frame.Limits{MaxMessageBytes: cfg.MaxMessageBytes}
	r := frame.NewReader(src, message.DefaultRegistry(), limits, log.Logger)
	for {
		m, err := r.Next()
		if errors.Is(err, io.EOF) {
			return r.Count(), nil
		}
		if err != nil {
			return r.Count(), fmt.Errorf("message %d: %w", r.Count(), err)
		}
		line := m.String()
		if cfg.Format == config.FormatJSON {
			line = m.JSON(cfg.Verbose)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return r.Count(), err
		}
	}
}
