// Package ner runs named-entity recognition over short texts.
//
// A Pipeline chains Recognizers for one language: a statistical model from
// prose and a rule-based Ruler that labels capitalized spans ending in a
// corporate suffix, plus well-known names embedded per language, as
// organizations. The Registry maps language codes to
// pipeline loaders, loads each pipeline at most once and rejects languages
// it does not know instead of falling back to another model.
package ner
