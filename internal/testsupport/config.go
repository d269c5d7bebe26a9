package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"orgguess/internal/config"
)

// ConfigOption mutates a test configuration before it is returned.
type ConfigOption func(*config.Config)

// NewConfig returns the default configuration with its log file redirected
// into a fresh temp directory, then applies opts in order.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Logging.File = filepath.Join(t.TempDir(), "logs", "orgguess.log")
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithLanguage sets guess.language.
func WithLanguage(lang string) ConfigOption {
	return func(cfg *config.Config) { cfg.Guess.Language = lang }
}

// WithTiePolicy sets guess.tie_break.
func WithTiePolicy(policy string) ConfigOption {
	return func(cfg *config.Config) { cfg.Guess.TieBreak = policy }
}

// WithOutput sets guess.fallback and guess.template.
func WithOutput(fallback, template string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Guess.Fallback = fallback
		cfg.Guess.Template = template
	}
}

// WithPatterns adds exact organization phrases to the ruler.
func WithPatterns(patterns ...string) ConfigOption {
	return func(cfg *config.Config) { cfg.Ruler.Patterns = append(cfg.Ruler.Patterns, patterns...) }
}

// WriteConfig encodes cfg as TOML in its temp directory and returns the
// file path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	encoded, err := cfg.Encode()
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	path := filepath.Join(BaseDir(cfg), "orgguess.toml")
	if err := os.WriteFile(path, []byte(encoded), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// BaseDir returns the temp directory that holds the config's log directory.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(filepath.Dir(cfg.Logging.File))
}
