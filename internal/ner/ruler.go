package ner

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxSpanTokens bounds how far the ruler walks back from a suffix.
const maxSpanTokens = 6

// Token is one word of a text. Tag holds its Penn Treebank part of speech,
// or "" when the tokenizer does not tag.
type Token struct {
	Text string
	Tag  string
}

// Rules configures a Ruler for one language. Word lists are matched case
// insensitively; suffixes are compared without their trailing period.
type Rules struct {
	// Suffixes close an organization span ("Corp", "Inc", "S.A").
	Suffixes []string
	// Stopwords never belong to a span even when capitalized ("The", "El",
	// "Monday").
	Stopwords []string
	// Connectors may join capitalized words inside a span ("of", "de", "&").
	Connectors []string
	// Heads are words that may sit left of a word connector ("Bank" in
	// "Bank of America Corp"). Suffixes count as heads too. Symbol
	// connectors such as "&" and a connector right before the suffix
	// ("y Cía") need no head.
	Heads []string
	// Patterns are exact phrases always labeled as organizations. They win
	// over suffix spans.
	Patterns []string
	// Known are organization names recognized when no suffix span covers
	// them, so "Microsoft Corp" stays one span while a bare "Microsoft" is
	// still found.
	Known []string
}

// EnglishRules returns the built-in rules for English text.
func EnglishRules() Rules {
	return Rules{
		Suffixes: []string{
			"corp", "corporation", "inc", "incorporated", "ltd", "limited",
			"llc", "llp", "lp", "plc", "co", "company", "group", "holdings",
			"industries", "technologies", "systems", "partners", "bank",
			"gmbh", "ag", "nv", "bv", "sa", "s.a", "foundation", "institute",
			"association", "university",
		},
		Stopwords: []string{
			"the", "a", "an", "this", "that", "our", "their",
			"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
			"january", "february", "april", "june", "july", "august",
			"september", "october", "november", "december",
		},
		Connectors: []string{"&", "and", "of", "for"},
		Heads: []string{
			"bank", "university", "institute", "college", "school", "museum",
			"society", "council", "department", "ministry", "federation",
			"union", "board", "league", "church", "academy", "center", "centre",
		},
		Known: knownOrganizations("en"),
	}
}

// SpanishRules returns the built-in rules for Spanish text.
func SpanishRules() Rules {
	return Rules{
		Suffixes: []string{
			"s.a", "sa", "s.a.u", "sau", "s.l", "sl", "s.l.u", "slu",
			"s.a.b", "s.c", "s.coop", "cía", "cia", "hnos", "grupo",
			"corp", "inc", "ltd", "llc", "gmbh", "ag", "plc",
		},
		Stopwords:  []string{"el", "la", "los", "las", "un", "una", "unos", "unas", "este", "esta"},
		Connectors: []string{"&", "y", "e", "de", "del"},
		Heads: []string{
			"banco", "caja", "compañía", "compania", "corporación", "instituto",
			"universidad", "fundación", "asociación", "ministerio", "cámara",
			"consejo", "federación", "sociedad", "club", "hermanos",
		},
		Known: knownOrganizations("es"),
	}
}

// Merge returns r with extra suffixes and patterns appended.
func (r Rules) Merge(suffixes, patterns []string) Rules {
	return Rules{
		Suffixes:   append(append([]string(nil), r.Suffixes...), suffixes...),
		Stopwords:  append([]string(nil), r.Stopwords...),
		Connectors: append([]string(nil), r.Connectors...),
		Heads:      append([]string(nil), r.Heads...),
		Patterns:   append(append([]string(nil), r.Patterns...), patterns...),
		Known:      append([]string(nil), r.Known...),
	}
}

// Ruler labels organization spans with deterministic token rules.
type Ruler struct {
	tokenize   func(string) ([]Token, error)
	suffixes   map[string]struct{}
	stopwords  map[string]struct{}
	connectors map[string]struct{}
	heads      map[string]struct{}
	patterns   [][]string
	known      [][]string
}

type span struct{ start, end int }

// NewRuler builds a ruler that tokenizes with tokenize. A nil tokenize uses
// prose's tokenizer without tagging.
func NewRuler(rules Rules, tokenize func(string) ([]Token, error)) (*Ruler, error) {
	if tokenize == nil {
		tokenize = Tokenize
	}
	r := &Ruler{
		tokenize:   tokenize,
		suffixes:   wordSet(rules.Suffixes, true),
		stopwords:  wordSet(rules.Stopwords, false),
		connectors: wordSet(rules.Connectors, false),
		heads:      wordSet(rules.Heads, false),
	}
	var err error
	if r.patterns, err = phrases(rules.Patterns, tokenize); err != nil {
		return nil, err
	}
	if r.known, err = phrases(rules.Known, tokenize); err != nil {
		return nil, err
	}
	return r, nil
}

func phrases(list []string, tokenize func(string) ([]Token, error)) ([][]string, error) {
	var out [][]string
	for _, phrase := range list {
		if strings.TrimSpace(phrase) == "" {
			continue
		}
		tokens, err := tokenize(phrase)
		if err != nil {
			return nil, err
		}
		if len(tokens) == 0 {
			continue
		}
		words := make([]string, len(tokens))
		for i, tok := range tokens {
			words[i] = tok.Text
		}
		out = append(out, words)
	}
	return out, nil
}

// Recognize tokenizes text and applies RecognizeTokens.
func (r *Ruler) Recognize(text string) ([]Entity, error) {
	tokens, err := r.tokenize(text)
	if err != nil {
		return nil, err
	}
	return r.RecognizeTokens(tokens), nil
}

// RecognizeTokens returns organization entities in token order. Pattern
// matches win over suffix spans, which win over known names; spans never
// overlap.
func (r *Ruler) RecognizeTokens(tokens []Token) []Entity {
	covered := make([]bool, len(tokens))
	var spans []span
	mark := func(s span) {
		spans = append(spans, s)
		for j := s.start; j < s.end; j++ {
			covered[j] = true
		}
	}

	r.matchPhrases(tokens, covered, r.patterns, mark)
	for i := range tokens {
		if s, ok := r.suffixSpan(tokens, covered, i); ok {
			mark(s)
		}
	}
	r.matchPhrases(tokens, covered, r.known, mark)

	if len(spans) == 0 {
		return nil
	}
	// Restore token order between the three passes.
	for i := 1; i < len(spans); i++ {
		for j := i; j > 0 && spans[j].start < spans[j-1].start; j-- {
			spans[j], spans[j-1] = spans[j-1], spans[j]
		}
	}
	out := make([]Entity, 0, len(spans))
	for _, s := range spans {
		out = append(out, Entity{Label: LabelOrganization, Text: r.spanText(tokens[s.start:s.end])})
	}
	return out
}

func (r *Ruler) matchPhrases(tokens []Token, covered []bool, list [][]string, mark func(span)) {
	for i := 0; i < len(tokens); i++ {
		if covered[i] {
			continue
		}
		if n := longestPhrase(tokens, covered, i, list); n > 0 {
			mark(span{i, i + n})
			i += n - 1
		}
	}
}

// suffixSpan walks back from a suffix at i over name words, stopwords ending
// the walk.
func (r *Ruler) suffixSpan(tokens []Token, covered []bool, i int) (span, bool) {
	if covered[i] || !r.isSuffix(tokens[i].Text) {
		return span{}, false
	}
	// Chained suffixes ("Acme Holdings Inc") close at the last one.
	if i+1 < len(tokens) && !covered[i+1] && r.isSuffix(tokens[i+1].Text) {
		return span{}, false
	}
	start := i
	for j := i - 1; j >= 0 && i-j <= maxSpanTokens && !covered[j]; j-- {
		word := tokens[j].Text
		if r.isStopword(word) {
			break
		}
		if isNameWord(tokens, j) {
			start = j
			continue
		}
		if r.canCross(tokens, covered, j, i) {
			continue
		}
		break
	}
	if start == i {
		return span{}, false
	}
	return span{start, i + 1}, true
}

// canCross reports whether the connector at j may join the name words on
// either side of it inside a span closing at suffix.
func (r *Ruler) canCross(tokens []Token, covered []bool, j, suffix int) bool {
	word := tokens[j].Text
	if !r.isConnector(word) || j == 0 || covered[j-1] || !isNameWord(tokens, j-1) {
		return false
	}
	left := tokens[j-1].Text
	if r.isStopword(left) {
		return false
	}
	if j+1 == suffix || !hasLetter(word) {
		return true
	}
	key := strings.ToLower(left)
	if _, ok := r.heads[key]; ok {
		return true
	}
	_, ok := r.suffixes[suffixKey(left)]
	return ok
}

// spanText joins span tokens with single spaces. A trailing period is kept
// only on dotted abbreviations ("S.A."), where it belongs to the name.
func (r *Ruler) spanText(tokens []Token) string {
	words := make([]string, len(tokens))
	for i, tok := range tokens {
		words[i] = tok.Text
	}
	text := strings.Join(words, " ")
	last := tokens[len(tokens)-1].Text
	if strings.HasSuffix(last, ".") && !strings.Contains(suffixKey(last), ".") {
		text = strings.TrimSuffix(text, ".")
	}
	return text
}

func longestPhrase(tokens []Token, covered []bool, at int, list [][]string) int {
	best := 0
	for _, phrase := range list {
		if len(phrase) <= best || at+len(phrase) > len(tokens) {
			continue
		}
		matched := true
		for k, want := range phrase {
			if covered[at+k] || tokens[at+k].Text != want {
				matched = false
				break
			}
		}
		if matched {
			best = len(phrase)
		}
	}
	return best
}

func (r *Ruler) isSuffix(token string) bool {
	first, _ := utf8.DecodeRuneInString(token)
	if !unicode.IsUpper(first) {
		return false
	}
	_, ok := r.suffixes[suffixKey(token)]
	return ok
}

func (r *Ruler) isStopword(token string) bool {
	_, ok := r.stopwords[strings.ToLower(token)]
	return ok
}

func (r *Ruler) isConnector(token string) bool {
	_, ok := r.connectors[strings.ToLower(token)]
	return ok
}

// isNameWord reports whether tokens[j] can be part of an organization name.
// Capitalization is enough mid-sentence. At the start of a sentence every
// word is capitalized, so a tagged token must also be a proper noun there.
func isNameWord(tokens []Token, j int) bool {
	tok := tokens[j]
	if !isCapitalized(tok.Text) {
		return false
	}
	if tok.Tag == "" || !sentenceInitial(tokens, j) {
		return true
	}
	switch tok.Tag {
	case "NNP", "NNPS", "FW":
		return true
	case "CD":
		return !unicode.IsUpper(firstRune(tok.Text))
	}
	return false
}

func sentenceInitial(tokens []Token, j int) bool {
	if j == 0 {
		return true
	}
	switch tokens[j-1].Text {
	case ".", "!", "?", ":", ";", `"`, "(", "[":
		return true
	}
	return false
}

// isCapitalized reports whether token starts with an uppercase letter, or is
// an alphanumeric token such as "3M" that contains one.
func isCapitalized(token string) bool {
	first := firstRune(token)
	if unicode.IsUpper(first) {
		return true
	}
	if !unicode.IsDigit(first) {
		return false
	}
	return strings.IndexFunc(token, unicode.IsUpper) >= 0
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func hasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}

func suffixKey(token string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(token)), ".")
}

func wordSet(words []string, suffix bool) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		key := strings.ToLower(strings.TrimSpace(w))
		if suffix {
			key = suffixKey(w)
		}
		if key != "" {
			set[key] = struct{}{}
		}
	}
	return set
}
