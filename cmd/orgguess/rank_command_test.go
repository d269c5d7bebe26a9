package main

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

var rankTexts = []string{
	"--text", "Globex Corp opened a plant.",
	"--text", "Initech Inc hired staff.",
	"--text", "Globex Corp closed the plant.",
}

func TestRankTSVWhenNotTerminal(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, nil, append([]string{"rank"}, rankTexts...)...)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{
		"Rank\tOrganization\tText\tMentions\tFirst Seen",
		"1\tglobex-corp\tGlobex Corp\t2\t0",
		"2\tinitech-inc\tInitech Inc\t1\t1",
	}
	if len(lines) != len(want) {
		t.Fatalf("rank output = %q", out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRankStructuredOutputs(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, nil, append([]string{"rank", "--output", "json", "--limit", "1"}, rankTexts...)...)
	if err != nil {
		t.Fatalf("rank json: %v", err)
	}
	var rows []rankRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if len(rows) != 1 || rows[0].Organization != "globex-corp" || rows[0].Mentions != 2 {
		t.Fatalf("json rows = %+v", rows)
	}

	out, _, err = runCLI(t, env, nil, append([]string{"rank", "-o", "yaml"}, rankTexts...)...)
	if err != nil {
		t.Fatalf("rank yaml: %v", err)
	}
	rows = nil
	if err := yaml.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode yaml: %v\n%s", err, out)
	}
	if len(rows) != 2 || rows[1].Text != "Initech Inc" {
		t.Fatalf("yaml rows = %+v", rows)
	}

	out, _, err = runCLI(t, env, nil, append([]string{"rank", "-o", "table"}, rankTexts...)...)
	if err != nil {
		t.Fatalf("rank table: %v", err)
	}
	requireContains(t, out, "globex-corp")
	requireContains(t, out, "╭")
}

func TestRankRejectsUnknownOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, env, nil, append([]string{"rank", "-o", "xml"}, rankTexts...)...)
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("err = %v, want unknown output format", err)
	}
}

func TestRankWithoutOrganizationsIsEmpty(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, env, nil, "rank", "-o", "json", "--text", "nothing to see here")
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Fatalf("rank output = %q, want []", out)
	}
}
