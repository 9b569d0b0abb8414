// Package readability implements wordchart.Extractor using go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/wordchart"
	"github.com/go-shiori/go-readability"
)

var _ wordchart.Extractor = (*Extractor)(nil)

// Extractor returns the readable article text of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article's text content.
func (e *Extractor) Extract(markup string) (*wordchart.ExtractResult, error) {
	if markup == "" {
		return nil, wordchart.Errorf(wordchart.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(markup), nil)
	if err != nil {
		return nil, err
	}

	return &wordchart.ExtractResult{
		Title: article.Title,
		Text:  article.TextContent,
	}, nil
}
