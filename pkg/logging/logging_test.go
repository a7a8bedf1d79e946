package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "JSON")

	opts := OptionsFromEnv()
	if opts.Level != slog.LevelError || !opts.JSON {
		t.Errorf("OptionsFromEnv() = %+v", opts)
	}
}

func TestNewHandlerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, Options{Level: slog.LevelInfo, JSON: true}))

	logger.Debug("hidden")
	logger.Info("Calculated tip", "tip", "6.00")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not a single JSON record: %v (%q)", err, buf.String())
	}
	if rec["msg"] != "Calculated tip" || rec["tip"] != "6.00" {
		t.Errorf("record = %v", rec)
	}
}

func TestNewHandlerText(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, Options{Level: slog.LevelWarn, NoColor: true})

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	slog.New(h).Warn("Slow render", "duration_ms", 12)
	out := buf.String()
	if !strings.Contains(out, "Slow render") || !strings.Contains(out, "duration_ms=12") {
		t.Errorf("text output = %q", out)
	}
}
