package ner

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"orgguess/internal/language"
	"orgguess/internal/logging"
)

// Loader builds the pipeline for one language.
type Loader func() (*Pipeline, error)

type slot struct {
	loader   Loader
	once     sync.Once
	pipeline *Pipeline
	err      error
}

// Registry maps languages to lazily loaded pipelines. Safe for concurrent use;
// each loader runs at most once and its result, including a failure, is
// cached for the life of the registry.
type Registry struct {
	mu     sync.RWMutex
	slots  map[string]*slot
	logger *slog.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		slots:  make(map[string]*slot),
		logger: logging.NewComponentLogger(logger, "ner"),
	}
}

// Register binds loader to lang, replacing any previous binding.
func (r *Registry) Register(lang string, loader Loader) {
	key := registryKey(lang)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[key] = &slot{loader: loader}
}

// Languages returns the registered language codes in sorted order.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.slots))
	for key := range r.slots {
		out = append(out, key)
	}
	slices.Sort(out)
	return out
}

// Supports reports whether lang resolves to a registered language.
func (r *Registry) Supports(lang string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.slots[registryKey(lang)]
	return ok
}

// Pipeline returns the pipeline for lang, loading it on first use.
func (r *Registry) Pipeline(lang string) (*Pipeline, error) {
	key := registryKey(lang)
	r.mu.RLock()
	s, ok := r.slots[key]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedLanguage, lang, strings.Join(r.Languages(), ", "))
	}
	s.once.Do(func() {
		started := time.Now()
		s.pipeline, s.err = s.loader()
		if s.err == nil && s.pipeline == nil {
			s.err = fmt.Errorf("loader returned no pipeline")
		}
		if s.err != nil {
			s.err = fmt.Errorf("%w: %s: %w", ErrModelLoad, key, s.err)
			r.logger.Warn("language pipeline failed to load",
				logging.String(logging.FieldLanguage, key),
				logging.Error(s.err),
				logging.String(logging.FieldImpact, "guesses in this language will fail"),
			)
			return
		}
		r.logger.Debug("language pipeline loaded",
			logging.String(logging.FieldLanguage, key),
			logging.Duration("load_duration", time.Since(started)),
		)
	})
	return s.pipeline, s.err
}

func registryKey(lang string) string {
	if code := language.ToISO2(lang); code != "" {
		return code
	}
	return strings.ToLower(strings.TrimSpace(lang))
}
