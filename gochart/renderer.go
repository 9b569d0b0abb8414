// Package gochart implements wordchart.ChartRenderer with go-chart.
package gochart

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/fwojciec/wordchart"
	chart "github.com/wcharczuk/go-chart/v2"
)

// Default chart dimensions in pixels.
const (
	DefaultWidth  = 1024
	DefaultHeight = 640
)

// axisAllowance is the horizontal space reserved for the y axis labels.
const axisAllowance = 60

// Ensure Renderer implements wordchart.ChartRenderer at compile time.
var _ wordchart.ChartRenderer = (*Renderer)(nil)

// Renderer draws word frequencies as PNG-backed images.
type Renderer struct {
	width   int
	height  int
	subject string
	margins chart.Box
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSize sets the width and height of rendered charts.
func WithSize(width, height int) Option {
	return func(r *Renderer) {
		r.width = width
		r.height = height
	}
}

// WithSubject sets what the chart title says the words come from,
// usually the article title.
func WithSubject(subject string) Option {
	return func(r *Renderer) {
		r.subject = subject
	}
}

// NewRenderer creates a new Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		width:   DefaultWidth,
		height:  DefaultHeight,
		margins: chart.Box{Top: 48, Left: 24, Right: 24, Bottom: 24},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderBar draws the topN most frequent words of m as a bar chart with
// words along the x axis and occurrences on the y axis.
func (r *Renderer) RenderBar(m *wordchart.FrequencyMap, topN int) (image.Image, error) {
	top, err := wordchart.TopWords(m, topN)
	if err != nil {
		return nil, err
	}

	bars := make([]chart.Value, 0, len(top))
	for _, wc := range top {
		bars = append(bars, chart.Value{Label: wc.Word, Value: float64(wc.Count)})
	}

	// Slot width leaves a third of each slot as spacing between bars.
	slot := (r.width - r.margins.Left - r.margins.Right - axisAllowance) / len(bars)
	barWidth := max(slot*2/3, 1)

	bc := chart.BarChart{
		Title:      wordchart.ChartTitle(topN, r.subject),
		Background: chart.Style{Padding: r.margins},
		Width:      r.width,
		Height:     r.height,
		BarWidth:   barWidth,
		BarSpacing: max(slot-barWidth, 1),
		YAxis: chart.YAxis{
			Name:  "Occurrences",
			Range: &chart.ContinuousRange{Min: 0, Max: float64(top[0].Count)},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render bar chart: %w", err)
	}
	return decode(&buf)
}

// RenderPie draws the topN most frequent words of m as a pie chart with
// one slice per word.
func (r *Renderer) RenderPie(m *wordchart.FrequencyMap, topN int) (image.Image, error) {
	top, err := wordchart.TopWords(m, topN)
	if err != nil {
		return nil, err
	}

	values := make([]chart.Value, 0, len(top))
	for _, wc := range top {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%d)", wc.Word, wc.Count),
			Value: float64(wc.Count),
		})
	}

	pc := chart.PieChart{
		Title:      wordchart.ChartTitle(topN, r.subject),
		Background: chart.Style{Padding: r.margins},
		Width:      r.width,
		Height:     r.height,
		Values:     values,
	}

	var buf bytes.Buffer
	if err := pc.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render pie chart: %w", err)
	}
	return decode(&buf)
}

func decode(buf *bytes.Buffer) (image.Image, error) {
	img, err := png.Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	return img, nil
}
