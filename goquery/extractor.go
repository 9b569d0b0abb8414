// Package goquery implements wordchart.Extractor on top of the goquery
// DOM library.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wordchart"
	"golang.org/x/net/html"
)

// hiddenSelector matches elements whose content is never shown as page text.
const hiddenSelector = "style, script, head, title"

var _ wordchart.Extractor = (*Extractor)(nil)

// Extractor returns all visible text of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses markup, records the page title, removes style, script,
// head and title elements, then returns the remaining text content.
func (e *Extractor) Extract(markup string) (*wordchart.ExtractResult, error) {
	// With scripting disabled, noscript content is parsed as elements
	// rather than one raw text node holding tag source.
	root, err := html.ParseWithOptions(strings.NewReader(markup), html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, wordchart.Errorf(wordchart.EINVALID, "failed to parse HTML: %v", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	title := strings.TrimSpace(doc.Find("head title").First().Text())

	// Hidden elements must go before the text is collected, otherwise
	// script and style bodies end up in the token stream.
	doc.Find(hiddenSelector).Remove()

	return &wordchart.ExtractResult{
		Title: title,
		Text:  doc.Text(),
	}, nil
}
