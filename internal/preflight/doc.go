// Package preflight provides readiness checks for the files and language
// pipelines orgguess depends on.
//
// The CLI "orgguess config validate" runs RunAll after the configuration
// parses, so a missing model directory or an unwritable log destination is
// reported before the first guess instead of halfway through a batch.
package preflight
