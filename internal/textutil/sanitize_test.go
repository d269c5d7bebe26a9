package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "   ", ""},
		{"plain slug", "acme-corp", "acme-corp"},
		{"separators", "at&t/mobility\\us", "at&t-mobility-us"},
		{"reserved removed", `<org>?"|`, "org"},
		{"colon and star", "acme:corp*", "acme-corp-"},
		{"control characters", "acme\x00\tcorp", "acmecorp"},
		{"dotted abbreviation kept", "telefónica-s.a.", "telefónica-s.a."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFileName(tt.input); got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpandTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		org      string
		want     string
	}{
		{"no verbs", "scan.pdf", "acme-corp", "scan.pdf"},
		{"organization", "%o_scan.pdf", "acme-corp", "acme-corp_scan.pdf"},
		{"repeated", "%o/%o", "acme-corp", "acme-corp/acme-corp"},
		{"literal percent", "100%%_%o", "acme-corp", "100%_acme-corp"},
		{"unknown verb kept", "%d_%o", "acme-corp", "%d_acme-corp"},
		{"trailing percent", "%o%", "acme-corp", "acme-corp%"},
		{"unsafe organization", "%o.pdf", "a/b", "a-b.pdf"},
		{"fallback placeholder", "%o_scan", "[org]", "[org]_scan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandTemplate(tt.template, tt.org); got != tt.want {
				t.Errorf("ExpandTemplate(%q, %q) = %q, want %q", tt.template, tt.org, got, tt.want)
			}
		})
	}
}
