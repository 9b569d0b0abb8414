package slog

import (
	"image"
	"log/slog"
	"time"

	"github.com/fwojciec/wordchart"
)

// Ensure LoggingRenderer implements wordchart.ChartRenderer.
var _ wordchart.ChartRenderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a ChartRenderer with debug logging.
type LoggingRenderer struct {
	next   wordchart.ChartRenderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next wordchart.ChartRenderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// RenderBar delegates to the wrapped renderer.
func (r *LoggingRenderer) RenderBar(m *wordchart.FrequencyMap, topN int) (img image.Image, err error) {
	defer r.log(wordchart.ChartModeBar, m, topN, time.Now(), &err)
	return r.next.RenderBar(m, topN)
}

// RenderPie delegates to the wrapped renderer.
func (r *LoggingRenderer) RenderPie(m *wordchart.FrequencyMap, topN int) (img image.Image, err error) {
	defer r.log(wordchart.ChartModePie, m, topN, time.Now(), &err)
	return r.next.RenderPie(m, topN)
}

func (r *LoggingRenderer) log(mode wordchart.ChartMode, m *wordchart.FrequencyMap, topN int, begin time.Time, err *error) {
	r.logger.Debug("render",
		"mode", string(mode),
		"words", m.Len(),
		"top", topN,
		"duration", time.Since(begin),
		"err", *err,
	)
}
