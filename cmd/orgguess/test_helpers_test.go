package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"orgguess/internal/config"
	"orgguess/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{
		"ORGGUESS_LANG", "ORGGUESS_TIE", "ORGGUESS_EN_MODEL", "ORGGUESS_ES_MODEL",
		"ORGGUESS_LOG_FORMAT", "ORGGUESS_LOG_LEVEL", "ORGGUESS_LOG_FILE",
		"ORGGUESS_FALLBACK", "ORGGUESS_TEMPLATE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Chdir(t.TempDir())

	cfg := testsupport.NewConfig(t, opts...)
	return &cliTestEnv{
		cfg:        cfg,
		configPath: testsupport.WriteConfig(t, cfg),
		baseDir:    testsupport.BaseDir(cfg),
	}
}

func runCLI(t *testing.T, env *cliTestEnv, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	cmd.SetIn(stdin)
	var flags []string
	if env != nil && env.configPath != "" {
		flags = append(flags, "--config", env.configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected %q to contain %q", haystack, needle)
	}
}
