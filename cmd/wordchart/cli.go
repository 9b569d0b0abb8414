package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/wordchart"
	"github.com/fwojciec/wordchart/analyze"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Analyzer *analyze.Analyzer
	// NewRenderer builds the chart renderer for one article, logging to logger.
	NewRenderer func(subject string, logger *slog.Logger) wordchart.ChartRenderer
	ShowWindow WindowFunc
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL       string        `arg:"" optional:"" help:"Article URL (prompted for when omitted)"`
	Top       int           `short:"n" default:"10" help:"Number of words to chart"`
	Mode      string        `short:"m" default:"bar" enum:"bar,pie" help:"Initial chart type (bar, pie)"`
	Extractor string        `short:"e" default:"goquery" enum:"goquery,trafilatura,readability" help:"Text extraction strategy (goquery, trafilatura, readability)"`
	Timeout   time.Duration `short:"t" default:"30s" help:"HTTP request timeout"`
	StopWords []string      `short:"s" name:"stop-word" help:"Additional stop word to ignore (repeatable)"`
	Output    string        `short:"o" help:"Write the chart to a PNG file instead of opening a window"`
	Width     int           `default:"1024" help:"Chart width in pixels"`
	Height    int           `default:"640" help:"Chart height in pixels"`
	Verbose   bool          `short:"v" help:"Log pipeline steps to stderr"`
}

// ChartCmd analyzes one article and displays its chart.
type ChartCmd struct {
	URL       string
	Top       int
	Mode      wordchart.ChartMode
	StopWords wordchart.StopWordSet
	Output    string
	Width     int
	Height    int
}
