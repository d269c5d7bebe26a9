package ner

import "errors"

// Entity labels produced by the built-in recognizers.
const (
	LabelOrganization = "ORG"
	LabelPerson       = "PERSON"
	LabelGPE          = "GPE"
)

var (
	// ErrUnsupportedLanguage marks lookups for languages without a registered pipeline.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrModelLoad marks failures while building a language pipeline.
	ErrModelLoad = errors.New("model load failed")
)

// Entity is a labeled span recognized in a single text. Text holds the span's
// tokens joined by single spaces.
type Entity struct {
	Label string `json:"label" yaml:"label"`
	Text  string `json:"text" yaml:"text"`
}

// Recognizer extracts entities from one text.
type Recognizer interface {
	Recognize(text string) ([]Entity, error)
}

// RecognizerFunc adapts a function to the Recognizer interface.
type RecognizerFunc func(text string) ([]Entity, error)

// Recognize calls f(text).
func (f RecognizerFunc) Recognize(text string) ([]Entity, error) {
	return f(text)
}
