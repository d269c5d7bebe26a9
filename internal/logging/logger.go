package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"orgguess/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	// OutputPaths lists "stdout", "stderr" or file paths to append to.
	OutputPaths []string
	// Writer, when set, receives output in addition to OutputPaths.
	Writer io.Writer
	// Development adds caller locations at every level.
	Development bool
}

// New constructs a slog logger using the provided options. Without any
// output it writes to stderr.
func New(opts Options) (*slog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	w, err := openOutputs(opts.OutputPaths, opts.Writer)
	if err != nil {
		return nil, err
	}
	source := opts.Development || level <= slog.LevelDebug

	switch format := strings.ToLower(strings.TrimSpace(opts.Format)); format {
	case "", "console":
		return slog.New(newConsoleHandler(w, level, source)), nil
	case "json":
		return slog.New(newJSONHandler(w, level, source)), nil
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}
}

// NewFromConfig creates a logger from the [logging] section. Output goes to
// stderr, or the given writer in its place, so stdout stays reserved for
// results. The optional log file receives a copy.
func NewFromConfig(cfg *config.Config, stderr io.Writer) (*slog.Logger, error) {
	opts := Options{Level: "warn", Format: "console", Writer: stderr}
	if stderr == nil {
		opts.OutputPaths = []string{"stderr"}
	}
	if cfg != nil {
		opts.Level = cfg.Logging.Level
		opts.Format = cfg.Logging.Format
		if file := strings.TrimSpace(cfg.Logging.File); file != "" {
			opts.OutputPaths = append(opts.OutputPaths, file)
		}
	}
	return New(opts)
}

// ParseLevel maps a textual level to its slog value. Empty means warn.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("log level: unsupported value %q", level)
	}
}

func openOutputs(paths []string, extra io.Writer) (io.Writer, error) {
	var writers []io.Writer
	if extra != nil {
		writers = append(writers, extra)
	}
	opened := make(map[string]bool, len(paths))
	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" || opened[path] {
			continue
		}
		opened[path] = true
		switch path {
		case "stdout":
			writers = append(writers, os.Stdout)
		case "stderr":
			writers = append(writers, os.Stderr)
		default:
			file, err := openLogFile(path)
			if err != nil {
				return nil, err
			}
			writers = append(writers, file)
		}
	}
	switch len(writers) {
	case 0:
		return os.Stderr, nil
	case 1:
		return writers[0], nil
	default:
		return io.MultiWriter(writers...), nil
	}
}

func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory %s: %w", dir, err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return file, nil
}
