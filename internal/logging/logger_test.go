package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"orgguess/internal/config"
	"orgguess/internal/logging"
)

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "info"
	cfg.Logging.File = filepath.Join(t.TempDir(), "logs", "orgguess.log")

	var stderr bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, &stderr)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("guess complete", logging.String("organization", "acme-corp"))

	content, err := os.ReadFile(cfg.Logging.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "guess complete") {
		t.Fatalf("expected message in log file, got %q", content)
	}
	if !strings.Contains(string(content), "Organization: acme-corp") {
		t.Fatalf("expected labeled field in log file, got %q", content)
	}
	if !strings.Contains(stderr.String(), "guess complete") {
		t.Fatalf("expected message on stderr writer, got %q", stderr.String())
	}
}

func TestNewRejectsUnknownFormatAndLevel(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml", Writer: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if _, err := logging.New(logging.Options{Level: "loud", Writer: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected error for unsupported level")
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message without caller")

	if strings.Contains(buf.String(), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", buf.String())
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("message with caller", logging.String("raw_key", "value"))

	out := buf.String()
	if !strings.Contains(out, "logger_test.go:") {
		t.Fatalf("expected caller information in debug logs, got %q", out)
	}
	if !strings.Contains(out, "raw_key: value") {
		t.Fatalf("expected raw keys in debug output, got %q", out)
	}
}

func TestConsoleLoggerComponentAndLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	base, err := logging.New(logging.Options{Format: "console", Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger := logging.NewComponentLogger(base, "guess")

	logger.Info("hidden")
	logger.Warn("tie resolved", logging.Strings("candidates", []string{"Acme Corp", "Globex"}))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "WARN [guess] – tie resolved") {
		t.Fatalf("expected component header, got %q", out)
	}
	if !strings.Contains(out, `Candidates: "Acme Corp", Globex`) {
		t.Fatalf("expected formatted candidates, got %q", out)
	}
}

func TestJSONLoggerCarriesRunID(t *testing.T) {
	var buf bytes.Buffer
	base, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := logging.WithRunID(context.Background(), "run-123")
	logging.WithContext(ctx, base).Info("loaded")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode json log: %v (%q)", err, buf.String())
	}
	if line["msg"] != "loaded" || line["level"] != "info" || line["run_id"] != "run-123" {
		t.Fatalf("unexpected json log line: %v", line)
	}
	if _, ok := line["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", line)
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.WarnWithContext(logger, "no entities", "empty_text", logging.String(logging.FieldImpact, "text ignored"))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	if line[logging.FieldEventType] != "empty_text" {
		t.Fatalf("expected event type, got %v", line)
	}
	if line[logging.FieldImpact] != "text ignored" {
		t.Fatalf("expected caller impact to win, got %v", line)
	}
	if line[logging.FieldErrorHint] == nil {
		t.Fatalf("expected default error hint, got %v", line)
	}
}

func TestRunIDFromContext(t *testing.T) {
	if _, ok := logging.RunIDFromContext(context.Background()); ok {
		t.Fatal("expected no run id on empty context")
	}
	ctx := logging.WithRunID(context.Background(), "")
	if _, ok := logging.RunIDFromContext(ctx); ok {
		t.Fatal("expected empty run id to be ignored")
	}
}
