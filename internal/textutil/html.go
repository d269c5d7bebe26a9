package textutil

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML returns the visible text of an HTML fragment with whitespace
// collapsed. Text nodes are joined with spaces so adjacent block elements do
// not fuse words together. Input without markup is returned collapsed.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return CollapseWhitespace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return CollapseWhitespace(s)
	}
	return SelectionText(doc.Selection)
}

// SelectionText flattens the text nodes under sel, skipping script and style
// content.
func SelectionText(sel *goquery.Selection) string {
	var parts []string
	var walk func(*goquery.Selection)
	walk = func(current *goquery.Selection) {
		current.Contents().Each(func(_ int, child *goquery.Selection) {
			switch goquery.NodeName(child) {
			case "#text":
				parts = append(parts, child.Text())
			case "script", "style", "noscript", "#comment":
			default:
				walk(child)
			}
		})
	}
	walk(sel)
	return CollapseWhitespace(strings.Join(parts, " "))
}
