package ner

import (
	"log/slog"
	"strings"

	"orgguess/internal/logging"
)

// Options configures the built-in language pipelines.
type Options struct {
	// ModelDirs maps a language code to a prose model directory. English
	// falls back to prose's embedded model; other languages run rules only
	// when no directory is set.
	ModelDirs map[string]string
	// ExtraSuffixes maps a language code to suffixes appended to its rules.
	ExtraSuffixes map[string][]string
	// Patterns are exact organization phrases recognized in every language.
	Patterns []string
	Logger   *slog.Logger
}

// NewDefaultRegistry returns a registry with the built-in English and
// Spanish pipelines.
func NewDefaultRegistry(opts Options) *Registry {
	reg := NewRegistry(opts.Logger)
	reg.Register("en", builtinLoader("en", EnglishRules(), TagTokens, true, opts, reg.logger))
	reg.Register("es", builtinLoader("es", SpanishRules(), Tokenize, false, opts, reg.logger))
	return reg
}

// builtinLoader builds the pipeline for lang. prose's tagger is trained on
// English, so only English tokens carry part-of-speech tags for the ruler.
func builtinLoader(lang string, rules Rules, tokenize func(string) ([]Token, error), embedded bool, opts Options, logger *slog.Logger) Loader {
	return func() (*Pipeline, error) {
		var statistical Recognizer
		dir := strings.TrimSpace(opts.ModelDirs[lang])
		switch {
		case dir != "":
			rec, err := LoadProseModel(dir)
			if err != nil {
				return nil, err
			}
			statistical = rec
		case embedded:
			statistical = NewProseRecognizer()
		default:
			logger.Info("no statistical model configured; using organization rules only",
				logging.String(logging.FieldLanguage, lang),
				logging.String(logging.FieldErrorHint, "set models."+lang+" to a prose model directory"),
			)
		}

		ruler, err := NewRuler(rules.Merge(opts.ExtraSuffixes[lang], opts.Patterns), tokenize)
		if err != nil {
			return nil, err
		}
		return NewPipeline(lang, statistical, ruler), nil
	}
}
