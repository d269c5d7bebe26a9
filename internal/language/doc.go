// Package language normalizes the language selectors accepted on the command
// line and in configuration.
//
// ISO 639-1 and 639-2 codes, English and native language words, and BCP 47
// tags all collapse to a single ISO 639-1 code so the NER registry only has
// to know one key per language.
package language
