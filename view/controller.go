// Package view holds the chart view state machine that connects UI controls
// to chart rendering.
package view

import (
	"github.com/fwojciec/wordchart"
)

// DefaultTopN is the number of words charted when none is configured.
const DefaultTopN = 10

// NoDataMessage is shown in place of a chart when no words remain after
// stop-word filtering.
const NoDataMessage = "No words to chart"

// transitions maps each control to the chart mode it selects.
var transitions = map[wordchart.Control]wordchart.ChartMode{
	wordchart.ControlBarChart: wordchart.ChartModeBar,
	wordchart.ControlPieChart: wordchart.ChartModePie,
}

// controls lists the controls in display order.
var controls = []wordchart.Control{
	wordchart.ControlBarChart,
	wordchart.ControlPieChart,
}

// Controller owns the frequencies of one article and the currently selected
// chart mode. Redraws happen serially on the caller's goroutine.
type Controller struct {
	freq      *wordchart.FrequencyMap
	renderer  wordchart.ChartRenderer
	surface   wordchart.Surface
	stopWords wordchart.StopWordSet
	topN      int
	mode      wordchart.ChartMode
}

// Option configures a Controller.
type Option func(*Controller)

// WithTopN sets how many words are charted.
func WithTopN(n int) Option {
	return func(c *Controller) {
		c.topN = n
	}
}

// WithMode sets the initial chart mode. Defaults to bar.
func WithMode(mode wordchart.ChartMode) Option {
	return func(c *Controller) {
		c.mode = mode
	}
}

// WithStopWords replaces the stop-word set applied before every render.
func WithStopWords(s wordchart.StopWordSet) Option {
	return func(c *Controller) {
		c.stopWords = s
	}
}

// NewController returns a controller for freq drawing onto surface.
func NewController(freq *wordchart.FrequencyMap, renderer wordchart.ChartRenderer, surface wordchart.Surface, opts ...Option) *Controller {
	c := &Controller{
		freq:      freq,
		renderer:  renderer,
		surface:   surface,
		stopWords: wordchart.DefaultStopWords,
		topN:      DefaultTopN,
		mode:      wordchart.ChartModeBar,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mode returns the current chart mode.
func (c *Controller) Mode() wordchart.ChartMode {
	return c.mode
}

// Controls returns the labels of the mode controls in display order.
func (c *Controller) Controls() []wordchart.Control {
	out := make([]wordchart.Control, len(controls))
	copy(out, controls)
	return out
}

// Dispatch handles a click on control: it selects the control's chart mode
// and redraws once. Unknown controls return EINVALID and leave the mode as is.
func (c *Controller) Dispatch(control wordchart.Control) error {
	mode, ok := transitions[control]
	if !ok {
		return wordchart.Errorf(wordchart.EINVALID, "unknown control %q", control)
	}
	c.mode = mode
	return c.Redraw()
}

// Redraw clears the surface, filters stop words from the held frequencies
// and renders them in the current mode. An empty result is shown as a
// no-data message rather than returned as an error.
func (c *Controller) Redraw() error {
	c.surface.Clear()

	filtered := c.stopWords.Filter(c.freq)

	render := c.renderer.RenderBar
	if c.mode == wordchart.ChartModePie {
		render = c.renderer.RenderPie
	}

	img, err := render(filtered, c.topN)
	switch {
	case err == nil:
		c.surface.Draw(img)
	case wordchart.ErrorCode(err) == wordchart.ENODATA:
		c.surface.ShowMessage(NoDataMessage)
	default:
		// Show the cleared surface rather than the previous chart.
		_ = c.surface.Refresh()
		return err
	}

	return c.surface.Refresh()
}
