package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, nil, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, env.configPath)

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, nil, nil, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, nil, nil, "config", "init", "--path", target); err == nil {
		t.Fatal("expected init to refuse overwriting without --overwrite")
	}
	if _, _, err := runCLI(t, nil, nil, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigValidateReportsErrors(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.WriteFile(env.configPath, []byte("[guess]\ntie_break = \"coin\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, err := runCLI(t, env, nil, "config", "validate")
	if err == nil || !strings.Contains(err.Error(), "tie_break") {
		t.Fatalf("err = %v, want tie_break validation error", err)
	}
}

func TestConfigShowAppliesOverrides(t *testing.T) {
	env := setupCLITestEnv(t)
	t.Setenv("ORGGUESS_LANG", "es")

	out, _, err := runCLI(t, env, nil, "--log-level", "error", "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, env.configPath)
	requireContains(t, out, "language = 'es'")
	requireContains(t, out, "level = 'error'")
}

func TestLogFileReceivesRunID(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env, nil, "--log-level", "debug", "--log-format", "json", "guess", "--text", "Globex Corp rose."); err != nil {
		t.Fatalf("guess: %v", err)
	}
	data, err := os.ReadFile(env.cfg.Logging.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	requireContains(t, string(data), `"run_id"`)
	requireContains(t, string(data), `"organization guessed"`)
}

func TestConfigValidateRunsPreflight(t *testing.T) {
	env := setupCLITestEnv(t)
	missing := filepath.Join(env.baseDir, "no-such-model")
	content := "[models]\nes = \"" + missing + "\"\n"
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, _, err := runCLI(t, env, nil, "config", "validate")
	if err == nil || !strings.Contains(err.Error(), "preflight checks failed") {
		t.Fatalf("err = %v, want preflight failure", err)
	}
	requireContains(t, out, "FAIL Spanish model")
	requireContains(t, out, "ok   English pipeline")
}
