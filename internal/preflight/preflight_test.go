package preflight

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"orgguess/internal/config"
	"orgguess/internal/logging"
	"orgguess/internal/ner"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir, true)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"), false)
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f, false)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckLogFile(t *testing.T) {
	base := t.TempDir()

	nested := CheckLogFile("log", filepath.Join(base, "a", "b", "orgguess.log"))
	if !nested.Passed || !strings.Contains(nested.Detail, "will be created under "+base) {
		t.Fatalf("nested log file: %+v", nested)
	}

	existing := filepath.Join(base, "existing.log")
	if err := os.WriteFile(existing, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if r := CheckLogFile("log", existing); !r.Passed {
		t.Fatalf("existing log file: %+v", r)
	}

	if r := CheckLogFile("log", base); r.Passed {
		t.Fatalf("directory as log file should fail: %+v", r)
	}
}

func TestCheckPipeline(t *testing.T) {
	reg := ner.NewRegistry(logging.NewNop())
	reg.Register("en", func() (*ner.Pipeline, error) { return ner.NewPipeline("en"), nil })

	if r := CheckPipeline(reg, "en"); !r.Passed || r.Name != "English pipeline" {
		t.Fatalf("registered pipeline: %+v", r)
	}
	if r := CheckPipeline(reg, "fr"); r.Passed || r.Detail != "language not registered" {
		t.Fatalf("unregistered pipeline: %+v", r)
	}
}

func TestRunAllReportsMissingModel(t *testing.T) {
	cfg := config.Default()
	cfg.Models.Spanish = filepath.Join(t.TempDir(), "missing-model")
	cfg.Logging.File = filepath.Join(t.TempDir(), "orgguess.log")
	reg := ner.NewDefaultRegistry(ner.Options{ModelDirs: cfg.ModelDirs(), Logger: logging.NewNop()})

	results := RunAll(context.Background(), &cfg, reg)

	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Name)
	}
	want := "Spanish model,Log file,English pipeline,Spanish pipeline"
	if got := strings.Join(names, ","); got != want {
		t.Fatalf("checks = %s, want %s", got, want)
	}

	failed := Failed(results)
	if len(failed) != 2 {
		t.Fatalf("failed = %+v, want model dir and Spanish pipeline", failed)
	}
	if !strings.Contains(failed[1].Detail, "model directory missing") {
		t.Fatalf("pipeline failure detail = %q", failed[1].Detail)
	}
}

func TestRunAllNilConfig(t *testing.T) {
	if got := RunAll(context.Background(), nil, nil); got != nil {
		t.Fatalf("RunAll(nil) = %+v", got)
	}
}
