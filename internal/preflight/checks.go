package preflight

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"

	"orgguess/internal/language"
	"orgguess/internal/ner"
)

// CheckDirectoryAccess verifies that the directory exists and is readable,
// and writable when writable is set.
func CheckDirectoryAccess(name, path string, writable bool) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	mode := uint32(unix.R_OK | unix.X_OK)
	access := "read"
	if writable {
		mode |= unix.W_OK
		access = "read/write"
	}
	if err := unix.Access(path, mode); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s ok)", path, access)}
}

// CheckLogFile verifies that path can be appended to, or created under its
// nearest existing ancestor directory.
func CheckLogFile(name, path string) Result {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", path)}
		}
		if err := unix.Access(path, unix.W_OK); err != nil {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: not writable: %v)", path, err)}
		}
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (append ok)", path)}
	}

	dir := filepath.Dir(path)
	for {
		if _, err := os.Stat(dir); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	result := CheckDirectoryAccess(name, dir, true)
	if result.Passed {
		result.Detail = fmt.Sprintf("%s (will be created under %s)", path, dir)
	}
	return result
}

// CheckPipeline loads the pipeline for lang and reports how long it took.
func CheckPipeline(registry *ner.Registry, lang string) Result {
	name := language.DisplayName(lang) + " pipeline"
	started := time.Now()
	if _, err := registry.Pipeline(lang); err != nil {
		return Result{Name: name, Detail: summarizeLoadError(err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("loaded in %s", time.Since(started).Round(time.Millisecond))}
}

// summarizeLoadError produces a human-readable summary for pipeline failures.
func summarizeLoadError(err error) string {
	switch {
	case errors.Is(err, ner.ErrUnsupportedLanguage):
		return "language not registered"
	case errors.Is(err, os.ErrNotExist):
		return "model directory missing: " + err.Error()
	default:
		return err.Error()
	}
}
