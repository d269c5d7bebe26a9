// Package config loads, normalizes, and validates orgguess configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts),
// reads TOML files, and applies ORGGUESS_* environment overrides. The Config
// type centralizes the default language, tie policy, organization labels,
// model directories, ruler extensions, input handling and logging.
//
// Always obtain settings through this package so downstream code receives
// canonical language codes, expanded paths and clear validation errors.
package config
