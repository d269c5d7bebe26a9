// Package textutil provides the text handling shared by the NER pipeline,
// the input readers and the guesser.
//
// The primary use cases are:
//   - Turning a raw organization mention into its canonical slug form
//   - Reducing HTML fragments to plain text before recognition
//   - Removing punctuation noise that confuses tokenization
//
// Slugs are lowercase, language-aware, NFC-normalized and never contain
// whitespace: runs of whitespace become a single hyphen.
package textutil
