package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/wordchart"
)

// Ensure LoggingExtractor implements wordchart.Extractor.
var _ wordchart.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   wordchart.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next wordchart.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the size of the result.
func (e *LoggingExtractor) Extract(markup string) (result *wordchart.ExtractResult, err error) {
	defer func(begin time.Time) {
		var title string
		var chars int
		if result != nil {
			title = result.Title
			chars = len(result.Text)
		}
		e.logger.Info("extract",
			"title", title,
			"chars", chars,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(markup)
}
