package input

import (
	"io"

	"github.com/PuerkitoBio/goquery"

	"orgguess/internal/textutil"
)

const blockSelector = "p, li, h1, h2, h3, h4, h5, h6, blockquote, td, th, dt, dd, figcaption, pre"

// ReadHTML returns the text of every innermost paragraph-level element. A
// document without such elements yields its body text as one text.
func ReadHTML(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	var texts []string
	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		if sel.Find(blockSelector).Length() > 0 {
			return
		}
		if text := textutil.CollapseWhitespace(textutil.SelectionText(sel)); text != "" {
			texts = append(texts, text)
		}
	})
	if len(texts) == 0 {
		if text := textutil.CollapseWhitespace(textutil.SelectionText(doc.Find("body"))); text != "" {
			texts = append(texts, text)
		}
	}
	return texts, nil
}
