package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"orgguess/internal/config"
	"orgguess/internal/input"
	"orgguess/internal/logging"
	"orgguess/internal/ner"
	"orgguess/internal/orgguess"
)

type rootFlags struct {
	config    string
	logLevel  string
	logFormat string
}

type commandContext struct {
	flags *rootFlags

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	logger   *slog.Logger
	registry *ner.Registry
}

func newCommandContext(flags *rootFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if level := strings.TrimSpace(c.flags.logLevel); level != "" {
			cfg.Logging.Level = strings.ToLower(level)
		}
		if format := strings.TrimSpace(c.flags.logFormat); format != "" {
			cfg.Logging.Format = strings.ToLower(format)
		}
		c.config = cfg
		c.configPath = path
	})
	return c.config, c.configErr
}

// prepare loads configuration, builds the logger and tags the command
// context with a fresh run ID.
func (c *commandContext) prepare(cmd *cobra.Command) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if c.logger != nil {
		return nil
	}
	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	c.logger = logger
	cmd.SetContext(logging.WithRunID(cmd.Context(), uuid.NewString()))
	logging.WithContext(cmd.Context(), c.logger).Debug("configuration loaded",
		logging.String("config_path", c.configPath),
		logging.String(logging.FieldLanguage, cfg.Guess.Language),
		logging.String("tie_policy", cfg.Guess.TieBreak),
	)
	return nil
}

func (c *commandContext) ensureRegistry() *ner.Registry {
	if c.registry == nil {
		cfg := c.config
		c.registry = ner.NewDefaultRegistry(ner.Options{
			ModelDirs:     cfg.ModelDirs(),
			ExtraSuffixes: cfg.ExtraSuffixes(),
			Patterns:      cfg.Ruler.Patterns,
			Logger:        c.logger,
		})
	}
	return c.registry
}

// guessFlags are shared by the commands that analyze texts.
type guessFlags struct {
	lang       string
	texts      []string
	whole      bool
	stripHTML  bool
	stripNoise bool
	sheet      string
	column     string
}

func (f *guessFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.lang, "lang", "l", "", "Language of the texts (ISO 639 code or name); defaults to guess.language")
	cmd.Flags().StringArrayVarP(&f.texts, "text", "t", nil, "Text to analyze (repeatable); read before any files")
	cmd.Flags().BoolVar(&f.whole, "whole", false, "Treat each plain-text file as one text instead of one per line")
	cmd.Flags().BoolVar(&f.stripHTML, "strip-html", false, "Remove HTML markup from texts")
	cmd.Flags().BoolVar(&f.stripNoise, "strip-noise", false, "Remove bracket symbols and punctuation runs from texts")
	cmd.Flags().StringVar(&f.sheet, "sheet", "", "XLSX sheet to read; defaults to input.sheet or the first sheet")
	cmd.Flags().StringVar(&f.column, "column", "", "XLSX column letters to read; defaults to input.column")
}

func (c *commandContext) language(f *guessFlags) string {
	if lang := strings.TrimSpace(f.lang); lang != "" {
		return lang
	}
	return c.config.Guess.Language
}

// readTexts gathers --text values followed by the texts of every path. With
// neither, stdin is read unless it is a terminal.
func (c *commandContext) readTexts(cmd *cobra.Command, f *guessFlags, paths []string) ([]string, error) {
	cfg := c.config
	opts := input.Options{
		Whole:      f.whole,
		StripHTML:  f.stripHTML || cfg.Input.StripHTML,
		StripNoise: f.stripNoise || cfg.Input.StripNoise,
		Sheet:      firstNonEmpty(f.sheet, cfg.Input.Sheet),
		Column:     firstNonEmpty(f.column, cfg.Input.Column),
		Stdin:      cmd.InOrStdin(),
	}

	texts := input.Clean(append([]string(nil), f.texts...), opts)
	if len(paths) == 0 && len(f.texts) == 0 {
		if isTerminal(cmd.InOrStdin()) {
			return nil, orgguess.Wrap(orgguess.ErrNoTexts, "read input", "pass files, --text or pipe texts on stdin", nil)
		}
		paths = []string{input.Stdin}
	}
	fromFiles, err := input.ReadAll(paths, opts)
	if err != nil {
		return nil, err
	}
	texts = append(texts, fromFiles...)
	logging.WithContext(cmd.Context(), c.logger).Debug("texts read",
		logging.Int("texts", len(texts)),
		logging.Strings("sources", paths),
	)
	return texts, nil
}

func (c *commandContext) newGuesser(tie string) (*orgguess.Guesser, error) {
	policy, err := orgguess.ParseTiePolicy(firstNonEmpty(tie, c.config.Guess.TieBreak))
	if err != nil {
		return nil, err
	}
	return orgguess.New(orgguess.Options{
		Registry:  c.ensureRegistry(),
		TiePolicy: policy,
		OrgLabels: c.config.Guess.OrgLabels,
		Language:  c.config.Guess.Language,
		Logger:    c.logger,
	}), nil
}

// annotationStandalone marks commands that load (or write) configuration
// themselves instead of through the shared context.
const annotationStandalone = "orgguess/standalone"

func standalone() map[string]string {
	return map[string]string{annotationStandalone: "true"}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationStandalone] == "true" {
			return true
		}
	}
	return false
}

func isTerminal(stream any) bool {
	file, ok := stream.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
