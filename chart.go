package wordchart

import (
	"fmt"
	"image"
)

// ChartMode is the visualization style used to draw word frequencies.
type ChartMode string

// ChartMode constants.
const (
	ChartModeBar ChartMode = "bar"
	ChartModePie ChartMode = "pie"
)

// ParseChartMode converts a name such as "bar" into a ChartMode.
func ParseChartMode(s string) (ChartMode, error) {
	switch mode := ChartMode(s); mode {
	case ChartModeBar, ChartModePie:
		return mode, nil
	default:
		return "", Errorf(EINVALID, "unknown chart mode %q", s)
	}
}

// Control identifies a UI control by its label.
type Control string

// Control constants.
const (
	ControlBarChart Control = "Bar Chart"
	ControlPieChart Control = "Pie Chart"
)

// ChartRenderer draws frequency maps as images.
type ChartRenderer interface {
	// RenderBar draws the topN most frequent words as a bar chart.
	// Returns *InsufficientDataError when m has no entries.
	RenderBar(m *FrequencyMap, topN int) (image.Image, error)

	// RenderPie draws the topN most frequent words as a pie chart.
	// Returns *InsufficientDataError when m has no entries.
	RenderPie(m *FrequencyMap, topN int) (image.Image, error)
}

// Surface is the display area a chart is drawn onto.
type Surface interface {
	// Clear removes the current chart or message.
	Clear()

	// Draw places img on the surface.
	Draw(img image.Image)

	// ShowMessage displays text in place of a chart.
	ShowMessage(msg string)

	// Refresh requests that the surface be repainted.
	Refresh() error
}

// TopWords selects the n most frequent entries of m for charting.
// It returns *InsufficientDataError when m is empty.
func TopWords(m *FrequencyMap, n int) ([]WordCount, error) {
	if n < 1 {
		return nil, Errorf(EINVALID, "top word count must be positive, got %d", n)
	}
	if m.Len() < 1 {
		return nil, &InsufficientDataError{Entries: m.Len()}
	}
	return m.Top(n), nil
}

// ChartTitle returns the heading used for a chart of n words about subject.
func ChartTitle(n int, subject string) string {
	if subject == "" {
		subject = "Article"
	}
	return fmt.Sprintf("Top %d Words in %s", n, subject)
}
