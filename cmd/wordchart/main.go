package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/alecthomas/kong"
	"github.com/fwojciec/wordchart"
	"github.com/fwojciec/wordchart/analyze"
	wcfyne "github.com/fwojciec/wordchart/fyne"
	"github.com/fwojciec/wordchart/gochart"
	"github.com/fwojciec/wordchart/goquery"
	wchttp "github.com/fwojciec/wordchart/http"
	"github.com/fwojciec/wordchart/readability"
	wcslog "github.com/fwojciec/wordchart/slog"
	"github.com/fwojciec/wordchart/trafilatura"
	"github.com/fwojciec/wordchart/view"
)

const appID = "io.github.fwojciec.wordchart"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// ShowWindow opens the interactive viewer and blocks until it is closed.
	// Replaced in tests.
	ShowWindow WindowFunc
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ShowWindow: showFyneWindow,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wordchart"),
		kong.Description("Chart the most frequent words of a web article"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.Top < 1 {
		return wordchart.Errorf(wordchart.EINVALID, "--top must be at least 1, got %d", cli.Top)
	}
	if cli.Width < 1 || cli.Height < 1 {
		return wordchart.Errorf(wordchart.EINVALID, "--width and --height must be at least 1, got %dx%d", cli.Width, cli.Height)
	}

	mode, err := wordchart.ParseChartMode(cli.Mode)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	fetcher := wcslog.NewLoggingFetcher(wchttp.NewFetcher(wchttp.WithTimeout(cli.Timeout)), logger)
	defer fetcher.Close()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Analyzer: &analyze.Analyzer{
			Fetcher:   fetcher,
			Extractor: wcslog.NewLoggingExtractor(newExtractor(cli.Extractor), logger),
		},
		NewRenderer: func(subject string, logger *slog.Logger) wordchart.ChartRenderer {
			r := gochart.NewRenderer(
				gochart.WithSize(cli.Width, cli.Height),
				gochart.WithSubject(subject),
			)
			return wcslog.NewLoggingRenderer(r, logger)
		},
		ShowWindow: m.ShowWindow,
	}

	cmd := &ChartCmd{
		URL:       cli.URL,
		Top:       cli.Top,
		Mode:      mode,
		StopWords: wordchart.DefaultStopWords.With(cli.StopWords...),
		Output:    cli.Output,
		Width:     cli.Width,
		Height:    cli.Height,
	}

	return cmd.Run(deps)
}

func newExtractor(name string) wordchart.Extractor {
	switch name {
	case "trafilatura":
		return trafilatura.NewExtractor()
	case "readability":
		return readability.NewExtractor()
	default:
		return goquery.NewExtractor()
	}
}

// showFyneWindow runs the Fyne viewer for the controller built by newController.
func showFyneWindow(title string, width, height int, newController ControllerFunc) error {
	a := app.NewWithID(appID)
	v := wcfyne.NewViewer(a, title, width, height)

	c := newController(v)
	v.Bind(c)
	if err := c.Redraw(); err != nil {
		return err
	}

	v.Run()
	return nil
}

// ControllerFunc builds a controller drawing onto surface.
type ControllerFunc func(surface wordchart.Surface) *view.Controller

// WindowFunc opens an interactive window and blocks until it is closed.
type WindowFunc func(title string, width, height int, newController ControllerFunc) error
