package ner

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed organizations/*.txt
var organizationLists embed.FS

// knownOrganizations returns the built-in organization names for lang, or
// nil when the language has no list.
func knownOrganizations(lang string) []string {
	data, err := organizationLists.ReadFile("organizations/" + lang + ".txt")
	if err != nil {
		return nil
	}
	var names []string
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names
}
