package textutil

import (
	"strings"
	"unicode"
)

// fileNameReplacer maps characters that are unsafe in file names.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName makes name safe to use as a file name component. Path
// separators, colons and asterisks become dashes; other reserved characters
// and control characters are dropped.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, fileNameReplacer.Replace(name))
	return strings.TrimSpace(name)
}

// ExpandTemplate replaces each %o in template with the file-name-safe form of
// org and each %% with a single percent sign. Other verbs are copied as is.
func ExpandTemplate(template, org string) string {
	if !strings.Contains(template, "%") {
		return template
	}
	safe := SanitizeFileName(org)
	var b strings.Builder
	b.Grow(len(template) + len(safe))
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' || i+1 == len(template) {
			b.WriteByte(c)
			continue
		}
		switch template[i+1] {
		case 'o':
			b.WriteString(safe)
			i++
		case '%':
			b.WriteByte('%')
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
