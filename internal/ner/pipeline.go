package ner

import "fmt"

// Pipeline runs a fixed set of recognizers for one language.
type Pipeline struct {
	language    string
	recognizers []Recognizer
}

// NewPipeline returns a pipeline over recognizers, run in order.
func NewPipeline(lang string, recognizers ...Recognizer) *Pipeline {
	filtered := make([]Recognizer, 0, len(recognizers))
	for _, rec := range recognizers {
		if rec != nil {
			filtered = append(filtered, rec)
		}
	}
	return &Pipeline{language: lang, recognizers: filtered}
}

// Language returns the ISO 639-1 code the pipeline was built for.
func (p *Pipeline) Language() string {
	return p.language
}

// Recognize runs every recognizer over text. When several recognizers report
// the same (label, text) pair, the pair is kept as many times as the most
// any single recognizer reported it, so overlapping recognizers do not
// inflate mention counts. Entities keep the order in which they were first
// reported.
func (p *Pipeline) Recognize(text string) ([]Entity, error) {
	counts := make(map[Entity]int)
	var order []Entity
	for idx, rec := range p.recognizers {
		ents, err := rec.Recognize(text)
		if err != nil {
			return nil, fmt.Errorf("recognizer %d: %w", idx, err)
		}
		local := make(map[Entity]int, len(ents))
		for _, ent := range ents {
			local[ent]++
			if _, seen := counts[ent]; !seen {
				counts[ent] = 0
				order = append(order, ent)
			}
		}
		for ent, n := range local {
			if n > counts[ent] {
				counts[ent] = n
			}
		}
	}
	if len(order) == 0 {
		return nil, nil
	}
	out := make([]Entity, 0, len(order))
	for _, ent := range order {
		for range counts[ent] {
			out = append(out, ent)
		}
	}
	return out, nil
}
