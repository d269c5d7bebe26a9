package config

import (
	"fmt"
	"strings"

	"orgguess/internal/language"
)

func (c *Config) normalize() error {
	c.normalizeGuess()
	if err := c.normalizeModels(); err != nil {
		return err
	}
	c.normalizeRuler()
	c.normalizeInput()
	return c.normalizeLogging()
}

func (c *Config) normalizeGuess() {
	lang := strings.TrimSpace(c.Guess.Language)
	if lang == "" {
		lang = defaultLanguage
	}
	// Unrecognized codes are kept so Validate can report them verbatim.
	if code := language.ToISO2(lang); code != "" {
		lang = code
	}
	c.Guess.Language = lang

	c.Guess.TieBreak = strings.ToLower(strings.TrimSpace(c.Guess.TieBreak))
	if c.Guess.TieBreak == "" {
		c.Guess.TieBreak = defaultTieBreak
	}

	c.Guess.Fallback = strings.TrimSpace(c.Guess.Fallback)
	c.Guess.Template = strings.TrimSpace(c.Guess.Template)

	labels := make([]string, 0, len(c.Guess.OrgLabels))
	seen := make(map[string]struct{}, len(c.Guess.OrgLabels))
	for _, label := range c.Guess.OrgLabels {
		label = strings.ToUpper(strings.TrimSpace(label))
		if label == "" {
			continue
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}
	if len(labels) == 0 {
		labels = []string{defaultOrgLabel}
	}
	c.Guess.OrgLabels = labels
}

func (c *Config) normalizeModels() error {
	var err error
	if c.Models.English, err = ExpandPath(strings.TrimSpace(c.Models.English)); err != nil {
		return fmt.Errorf("models.en: %w", err)
	}
	if c.Models.Spanish, err = ExpandPath(strings.TrimSpace(c.Models.Spanish)); err != nil {
		return fmt.Errorf("models.es: %w", err)
	}
	return nil
}

func (c *Config) normalizeRuler() {
	c.Ruler.Patterns = trimList(c.Ruler.Patterns)
	c.Ruler.EnglishSuffixes = trimList(c.Ruler.EnglishSuffixes)
	c.Ruler.SpanishSuffixes = trimList(c.Ruler.SpanishSuffixes)
}

func (c *Config) normalizeInput() {
	c.Input.Sheet = strings.TrimSpace(c.Input.Sheet)
	c.Input.Column = strings.ToUpper(strings.TrimSpace(c.Input.Column))
	if c.Input.Column == "" {
		c.Input.Column = "A"
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.File, err = ExpandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}

func trimList(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
