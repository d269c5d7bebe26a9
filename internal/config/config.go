package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string // commented template written by CreateSample

// Guess contains the organization guessing defaults.
type Guess struct {
	Language  string   `toml:"language" env:"ORGGUESS_LANG"`
	TieBreak  string   `toml:"tie_break" env:"ORGGUESS_TIE"`
	OrgLabels []string `toml:"org_labels"`
	// Fallback is printed instead of failing when no organization can be
	// guessed. Empty keeps the failure.
	Fallback string `toml:"fallback" env:"ORGGUESS_FALLBACK"`
	// Template formats the printed guess; %o expands to the organization.
	Template string `toml:"template" env:"ORGGUESS_TEMPLATE"`
}

// Models contains prose model directories per language.
type Models struct {
	English string `toml:"en" env:"ORGGUESS_EN_MODEL"`
	Spanish string `toml:"es" env:"ORGGUESS_ES_MODEL"`
}

// Ruler contains extensions to the rule-based organization recognizer.
type Ruler struct {
	Patterns        []string `toml:"patterns"`
	EnglishSuffixes []string `toml:"en_suffixes"`
	SpanishSuffixes []string `toml:"es_suffixes"`
}

// Input contains preprocessing and spreadsheet settings for input readers.
type Input struct {
	StripHTML  bool   `toml:"strip_html"`
	StripNoise bool   `toml:"strip_noise"`
	Sheet      string `toml:"sheet"`
	Column     string `toml:"column"`
}

// Logging selects the log format, threshold and optional file copy.
type Logging struct {
	Format string `toml:"format" env:"ORGGUESS_LOG_FORMAT"`
	Level  string `toml:"level" env:"ORGGUESS_LOG_LEVEL"`
	File   string `toml:"file" env:"ORGGUESS_LOG_FILE"`
}

// Config encapsulates all configuration values for orgguess.
type Config struct {
	Guess   Guess   `toml:"guess"`
	Models  Models  `toml:"models"`
	Ruler   Ruler   `toml:"ruler"`
	Input   Input   `toml:"input"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the user-level config location,
// ~/.config/orgguess/config.toml, as an absolute path.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/orgguess/config.toml")
}

// projectConfigName is looked up in the working directory when the
// user-level file is absent.
const projectConfigName = "orgguess.toml"

// Load reads the config file at path, or the first of the user-level and
// project files that exists when path is empty, then layers ORGGUESS_*
// environment variables on top. The returned string is the file that was
// read, or the default location when none was found.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	source, found, err := locate(strings.TrimSpace(path))
	if err != nil {
		return nil, "", false, err
	}
	if found {
		if err := cfg.decodeFile(source); err != nil {
			return nil, "", false, err
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, "", false, fmt.Errorf("read env overrides: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, source, found, nil
}

// locate picks the config file. An explicit path must exist.
func locate(explicit string) (string, bool, error) {
	if explicit != "" {
		target, err := ExpandPath(explicit)
		if err != nil {
			return "", false, err
		}
		ok, err := isRegularFile(target)
		switch {
		case err != nil:
			return "", false, err
		case !ok:
			return "", false, fmt.Errorf("config file %s not found", target)
		}
		return target, true, nil
	}

	userPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}
	for _, candidate := range []string{userPath, projectPath} {
		if ok, _ := isRegularFile(candidate); ok {
			return candidate, true, nil
		}
	}
	return userPath, false, nil
}

func isRegularFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("inspect config %s: %w", path, err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("config path %s is a directory", path)
	}
	return true, nil
}

func (c *Config) decodeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ModelDirs returns the configured prose model directory per language code.
func (c *Config) ModelDirs() map[string]string {
	dirs := make(map[string]string, 2)
	for lang, dir := range map[string]string{"en": c.Models.English, "es": c.Models.Spanish} {
		if dir != "" {
			dirs[lang] = dir
		}
	}
	return dirs
}

// ExtraSuffixes returns the configured ruler suffixes per language code.
func (c *Config) ExtraSuffixes() map[string][]string {
	extra := make(map[string][]string, 2)
	for lang, suffixes := range map[string][]string{"en": c.Ruler.EnglishSuffixes, "es": c.Ruler.SpanishSuffixes} {
		if len(suffixes) > 0 {
			extra[lang] = slices.Clone(suffixes)
		}
	}
	return extra
}

// ExpandPath resolves a leading "~" to the home directory and returns the
// absolute form of p. Empty input stays empty.
func ExpandPath(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		p = filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", p, err)
	}
	return abs, nil
}

// CreateSample writes the commented sample configuration to path, creating
// parent directories as needed.
func CreateSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Encode renders c as TOML.
func (c *Config) Encode() (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return buf.String(), nil
}
