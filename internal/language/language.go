package language

import (
	"strings"

	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// names maps language names, in English and in the language itself, to
// ISO 639-1 codes.
var names = map[string]string{
	"english":    "en",
	"spanish":    "es",
	"español":    "es",
	"espanol":    "es",
	"castellano": "es",
	"french":     "fr",
	"français":   "fr",
	"german":     "de",
	"deutsch":    "de",
	"italian":    "it",
	"italiano":   "it",
	"portuguese": "pt",
	"português":  "pt",
	"dutch":      "nl",
	"nederlands": "nl",
	"catalan":    "ca",
	"català":     "ca",
}

// bibliographic maps ISO 639-2/B codes to their terminologic form.
var bibliographic = map[string]string{
	"fre": "fra",
	"ger": "deu",
	"dut": "nld",
	"chi": "zho",
	"cze": "ces",
	"gre": "ell",
	"per": "fas",
	"rum": "ron",
	"slo": "slk",
	"wel": "cym",
}

// base resolves an ISO 639 code, language name or BCP 47 tag ("es-MX",
// "en_US") to its base language.
func base(code string) (xlanguage.Base, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return xlanguage.Base{}, false
	}
	if mapped, ok := names[code]; ok {
		code = mapped
	} else if mapped, ok := bibliographic[code]; ok {
		code = mapped
	}
	tag, err := xlanguage.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil || tag == xlanguage.Und {
		return xlanguage.Base{}, false
	}
	b, _ := tag.Base()
	return b, true
}

// ToISO2 converts any recognized language code, name or BCP 47 tag to
// ISO 639-1. Returns "" for unrecognized input and for languages without a
// two-letter code.
func ToISO2(code string) string {
	b, ok := base(code)
	if !ok {
		return ""
	}
	if s := b.String(); len(s) == 2 {
		return s
	}
	return ""
}

// ToISO3 converts any recognized language code to ISO 639-2/T.
// Returns "und" for unrecognized input.
func ToISO3(code string) string {
	b, ok := base(code)
	if !ok {
		return "und"
	}
	return b.ISO3()
}

// DisplayName returns the English name of the language. Returns "Unknown"
// for empty input, or the uppercased code for unrecognized input.
func DisplayName(code string) string {
	if strings.TrimSpace(code) == "" {
		return "Unknown"
	}
	if b, ok := base(code); ok {
		if name := display.English.Languages().Name(b); name != "" {
			return name
		}
	}
	return strings.ToUpper(strings.TrimSpace(code))
}

// Tag returns the base-language tag for code, or language.Und when the code
// is not recognized. Used for language-aware case mapping.
func Tag(code string) xlanguage.Tag {
	b, ok := base(code)
	if !ok {
		return xlanguage.Und
	}
	tag, err := xlanguage.Compose(b)
	if err != nil {
		return xlanguage.Und
	}
	return tag
}
