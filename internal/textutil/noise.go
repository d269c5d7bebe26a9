package textutil

import "regexp"

var (
	// symbolRun matches characters that never belong to an organization mention.
	symbolRun = regexp.MustCompile(`[@^&*(){}\[\]<>|+;]+`)
	// punctuationRun matches doubled or tripled separators such as "--" or "...".
	punctuationRun = regexp.MustCompile(`[-/,.?'\\]{2,3}`)
)

// StripNoise removes symbol runs and repeated punctuation that confuse the
// tokenizer, then collapses whitespace. Ampersands are removed too, so
// callers that care about names like "AT&T" should leave this disabled.
func StripNoise(s string) string {
	s = symbolRun.ReplaceAllString(s, " ")
	s = punctuationRun.ReplaceAllString(s, " ")
	return CollapseWhitespace(s)
}
