package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// CollapseWhitespace replaces every run of Unicode whitespace with a single
// space and trims both ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeOrganization converts an organization mention to its slug form:
// whitespace collapsed, lowercased using the case rules of tag, and spaces
// replaced with hyphens. Returns empty string when name has no visible text.
func NormalizeOrganization(name string, tag language.Tag) string {
	collapsed := CollapseWhitespace(norm.NFC.String(name))
	if collapsed == "" {
		return ""
	}
	// Casers are stateful, so one is built per call.
	lowered := cases.Lower(tag).String(collapsed)
	return strings.ReplaceAll(lowered, " ", "-")
}
