package mock

import (
	"image"

	"github.com/fwojciec/wordchart"
)

var _ wordchart.ChartRenderer = (*ChartRenderer)(nil)

// ChartRenderer is a mock implementation of wordchart.ChartRenderer.
type ChartRenderer struct {
	RenderBarFn func(m *wordchart.FrequencyMap, topN int) (image.Image, error)
	RenderPieFn func(m *wordchart.FrequencyMap, topN int) (image.Image, error)
}

func (r *ChartRenderer) RenderBar(m *wordchart.FrequencyMap, topN int) (image.Image, error) {
	return r.RenderBarFn(m, topN)
}

func (r *ChartRenderer) RenderPie(m *wordchart.FrequencyMap, topN int) (image.Image, error) {
	return r.RenderPieFn(m, topN)
}
