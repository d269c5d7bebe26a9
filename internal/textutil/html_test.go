package textutil

import "testing"

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "Acme  Corp denied it.", "Acme Corp denied it."},
		{"inline markup", "<p><b>Acme Corp</b> denied it.</p>", "Acme Corp denied it."},
		{"adjacent blocks", "<div>Acme Corp</div><div>Globex Inc</div>", "Acme Corp Globex Inc"},
		{"script dropped", "<p>Acme Corp</p><script>var x = 'Globex Inc';</script>", "Acme Corp"},
		{"style dropped", "<style>p { color: red }</style><p>Initech</p>", "Initech"},
		{"entities decoded", "AT&amp;T Inc said", "AT&T Inc said"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.input); got != tt.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
