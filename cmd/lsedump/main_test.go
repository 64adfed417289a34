package main

import (
	"bytes"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/lsewire/internal/config"
	"github.com/danmuck/lsewire/internal/logging"
	"github.com/danmuck/lsewire/internal/protocol/enum"
	"github.com/danmuck/lsewire/internal/protocol/message"
	"github.com/danmuck/lsewire/internal/testutil/testlog"
)

func captureBytes() []byte {
	order := message.NewNewOrder()
	order.ClientOrderID.Set("ORD1")
	order.Side = enum.SideSell
	report := message.NewExecutionReport()
	report.ExecType = enum.ExecTypeNew
	return append(message.Marshal(order), message.Marshal(report)...)
}

func TestRunTextFromStdin(t *testing.T) {
	testlog.Start(t)
	var out bytes.Buffer
	if err := run(nil, bytes.NewReader(captureBytes()), &out, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "[NewOrder]=Header: [Header]=Start: 2 Length: 122 Type: D ClientOrderId: ORD1") {
		t.Fatalf("unexpected first line: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "[ExecutionReport]=") {
		t.Fatalf("unexpected second line: %s", lines[1])
	}
}

func TestRunHexFileJSON(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "capture.hex")
	encoded := hex.EncodeToString(captureBytes())
	body := encoded[:20] + "\n  " + encoded[20:] + "\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write capture: %v", err)
	}

	var out bytes.Buffer
	var metrics bytes.Buffer
	if err := run([]string{"--hex", "--format", "json", "-v", "--metrics", path}, nil, &out, &metrics); err != nil {
		t.Fatalf("run: %v", err)
	}
	first := strings.SplitN(out.String(), "\n", 2)[0]
	if !strings.HasPrefix(first, `{"Header":{"Start":2,"Length":122,"Type":"D"},"ClientOrderId":"ORD1"`) {
		t.Fatalf("unexpected json: %s", first)
	}
	if !strings.Contains(first, `"Side":"2(Sell)"`) {
		t.Fatalf("expected verbose enum: %s", first)
	}
	if !strings.Contains(metrics.String(), `lsewire_frame_messages_decoded_total{message="ExecutionReport"}`) {
		t.Fatalf("expected metrics dump: %s", metrics.String())
	}
}

func TestParseArgsConfigAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lsedump.toml")
	if err := os.WriteFile(path, []byte("format = \"json\"\ninput = \"hex\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, inputs, err := parseArgs([]string{"--config", path, "--hex=false", "a.bin"})
	if err != nil {
		t.Fatalf("parse args: %v", err)
	}
	if cfg.Format != config.FormatJSON || cfg.Input != config.InputBinary {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(inputs) != 1 || inputs[0] != "a.bin" {
		t.Fatalf("unexpected inputs: %v", inputs)
	}
	if _, _, err := parseArgs([]string{"--format", "yaml"}); err == nil {
		t.Fatalf("expected invalid format error")
	}
}

func TestRunTruncatedCapture(t *testing.T) {
	testlog.Start(t)
	b := captureBytes()
	var out bytes.Buffer
	err := run(nil, bytes.NewReader(b[:len(b)-5]), &out, io.Discard)
	if err == nil || !strings.Contains(err.Error(), "message 1") {
		t.Fatalf("expected failure on second message, got %v", err)
	}
	if strings.Count(out.String(), "\n") != 1 {
		t.Fatalf("first message should still print: %q", out.String())
	}
}

func TestRunLogLevelTraceShowsFrames(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	var logs bytes.Buffer
	log.Logger = logging.New(logging.Config{Level: zerolog.InfoLevel, Bypass: true}, &logs)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := run([]string{"--log-level", "trace"}, bytes.NewReader(captureBytes()), io.Discard, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := strings.Count(logs.String(), `"message":"frame decoded"`); got != 2 {
		t.Fatalf("expected 2 trace lines, got %d:\n%s", got, logs.String())
	}
}
