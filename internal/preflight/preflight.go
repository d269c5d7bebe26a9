package preflight

import (
	"context"
	"strings"

	"orgguess/internal/config"
	"orgguess/internal/language"
	"orgguess/internal/ner"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
// Model and log checks only run when the corresponding path is configured.
func RunAll(ctx context.Context, cfg *config.Config, registry *ner.Registry) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	for _, lang := range []string{"en", "es"} {
		if dir := cfg.ModelDirs()[lang]; dir != "" {
			results = append(results, CheckDirectoryAccess(language.DisplayName(lang)+" model", dir, false))
		}
	}

	if file := strings.TrimSpace(cfg.Logging.File); file != "" {
		results = append(results, CheckLogFile("Log file", file))
	}

	if registry != nil {
		for _, lang := range registry.Languages() {
			if ctx.Err() != nil {
				break
			}
			results = append(results, CheckPipeline(registry, lang))
		}
	}

	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
