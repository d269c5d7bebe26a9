package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestEntitiesJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, nil, "entities", "-o", "json",
		"--text", "Acme Corp released a statement.",
		"--text", "nothing here",
	)
	if err != nil {
		t.Fatalf("entities: %v", err)
	}
	var views []textEntities
	if err := json.Unmarshal([]byte(out), &views); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(views) != 2 {
		t.Fatalf("views = %+v", views)
	}
	found := false
	for _, ent := range views[0].Entities {
		if ent.Label == "ORG" && ent.Text == "Acme Corp" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ORG Acme Corp in %+v", views[0].Entities)
	}
	if views[1].Entities == nil {
		t.Fatal("texts without entities should serialize as an empty list")
	}
}

func TestEntitiesTSV(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, strings.NewReader("Globex Corp rose.\n"), "entities")
	if err != nil {
		t.Fatalf("entities: %v", err)
	}
	requireContains(t, out, "Text\tLabel\tEntity\n")
	requireContains(t, out, "0\tORG\tGlobex Corp\n")
}
