package mock

import "github.com/fwojciec/wordchart"

var _ wordchart.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wordchart.Extractor.
type Extractor struct {
	ExtractFn func(markup string) (*wordchart.ExtractResult, error)
}

func (e *Extractor) Extract(markup string) (*wordchart.ExtractResult, error) {
	return e.ExtractFn(markup)
}
