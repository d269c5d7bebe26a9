// Package logging assembles the structured slog loggers used by the CLI and
// the recognition pipeline.
//
// It owns the console and JSON handlers, level parsing and output plumbing,
// and exposes context helpers so every line written during one CLI
// invocation carries the same run ID. A no-op logger is provided for tests
// and library callers that do not want output.
//
// Prefer these constructors over hand-rolled slog setup so warnings raised
// by the guesser (ties, empty texts, model load failures) keep a consistent
// shape.
package logging
