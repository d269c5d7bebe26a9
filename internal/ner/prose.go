package ner

import (
	"fmt"
	"os"
	"sync"

	"github.com/jdkato/prose/v2"
)

// embeddedModel is prose's built-in tagger and entity extractor. prose
// decodes it on every document unless one is passed in, so it is built once
// and shared.
var embeddedModel = sync.OnceValue(func() *prose.Model {
	return prose.ModelFromData("embedded")
})

// ProseRecognizer runs prose's averaged-perceptron entity extractor. With no
// model it uses prose's embedded English model, which labels PERSON and GPE.
type ProseRecognizer struct {
	model *prose.Model
}

// NewProseRecognizer returns a recognizer backed by prose's default model.
func NewProseRecognizer() *ProseRecognizer {
	return &ProseRecognizer{}
}

// LoadProseModel reads a model previously written with prose's Model.Write
// from dir. prose panics on unreadable model files, so the panic is turned
// into an error here.
func LoadProseModel(dir string) (rec *ProseRecognizer, err error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat model dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("model path %s is not a directory", dir)
	}
	defer func() {
		if r := recover(); r != nil {
			rec = nil
			err = fmt.Errorf("read model %s: %v", dir, r)
		}
	}()
	model := prose.ModelFromDisk(dir)
	if model == nil {
		return nil, fmt.Errorf("read model %s: empty model", dir)
	}
	return &ProseRecognizer{model: model}, nil
}

// Recognize tags text and returns its entities. Sentence segmentation is
// skipped; tagging stays on because the entity classifier consumes POS tags.
func (p *ProseRecognizer) Recognize(text string) ([]Entity, error) {
	model := p.model
	if model == nil {
		model = embeddedModel()
	}
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false), prose.UsingModel(model))
	if err != nil {
		return nil, fmt.Errorf("prose document: %w", err)
	}
	ents := doc.Entities()
	out := make([]Entity, 0, len(ents))
	for _, ent := range ents {
		out = append(out, Entity{Label: ent.Label, Text: ent.Text})
	}
	return out, nil
}

// Tokenize splits text with prose's tokenizer without tagging.
func Tokenize(text string) ([]Token, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("prose tokenize: %w", err)
	}
	return tokens(doc), nil
}

// TagTokens splits text with prose's tokenizer and tags each token with its
// part of speech.
func TagTokens(text string) ([]Token, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
		prose.UsingModel(embeddedModel()),
	)
	if err != nil {
		return nil, fmt.Errorf("prose tag: %w", err)
	}
	return tokens(doc), nil
}

func tokens(doc *prose.Document) []Token {
	toks := doc.Tokens()
	out := make([]Token, 0, len(toks))
	for _, tok := range toks {
		out = append(out, Token{Text: tok.Text, Tag: tok.Tag})
	}
	return out
}
