package config

import (
	"fmt"
	"strings"

	"orgguess/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateGuess(); err != nil {
		return err
	}
	if err := c.validateInput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateGuess() error {
	if language.ToISO2(c.Guess.Language) == "" {
		return fmt.Errorf("guess.language: unrecognized language %q", c.Guess.Language)
	}
	switch c.Guess.TieBreak {
	case TieFirst, TieLexical, TieError:
	default:
		return fmt.Errorf("guess.tie_break must be one of %s, %s, %s (got %q)", TieFirst, TieLexical, TieError, c.Guess.TieBreak)
	}
	return nil
}

func (c *Config) validateInput() error {
	if strings.IndexFunc(c.Input.Column, func(r rune) bool { return r < 'A' || r > 'Z' }) >= 0 {
		return fmt.Errorf("input.column must be a spreadsheet column letter such as A or AB (got %q)", c.Input.Column)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error (got %q)", c.Logging.Level)
	}
	return nil
}
