// Package trafilatura implements wordchart.Extractor using go-trafilatura,
// keeping only the main article content of a page.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/wordchart"
	"github.com/markusmobius/go-trafilatura"
)

var _ wordchart.Extractor = (*Extractor)(nil)

// Extractor returns the main content text of a page, dropping navigation,
// sidebars, footers and other boilerplate.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as plain text.
func (e *Extractor) Extract(markup string) (*wordchart.ExtractResult, error) {
	if markup == "" {
		return nil, wordchart.Errorf(wordchart.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(markup), opts)
	if err != nil {
		return nil, err
	}

	return &wordchart.ExtractResult{
		Title: result.Metadata.Title,
		Text:  result.ContentText,
	}, nil
}
