package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/wordchart"
	"github.com/fwojciec/wordchart/fs"
	wcfyne "github.com/fwojciec/wordchart/fyne"
	"github.com/fwojciec/wordchart/lipgloss"
	"github.com/fwojciec/wordchart/view"
)

// Run executes the chart command.
func (c *ChartCmd) Run(deps *Dependencies) error {
	url := c.URL
	if url == "" {
		var err error
		if url, err = promptURL(deps.Stdin, deps.Stdout); err != nil {
			return err
		}
	}

	article, err := deps.Analyzer.Analyze(deps.Ctx, url)
	if err != nil {
		return err
	}

	logger := deps.Logger.With("session", article.ID)
	logger.Info("analyze",
		"url", article.URL,
		"title", article.Title,
		"words", article.Frequencies.Total(),
		"distinct", article.Frequencies.Len(),
		"fetched_at", article.FetchedAt,
	)

	if err := lipgloss.WriteSummary(deps.Stdout, article.Title, c.StopWords.Filter(article.Frequencies), c.Top); err != nil {
		return err
	}

	renderer := deps.NewRenderer(article.Title, logger)
	newController := func(surface wordchart.Surface) *view.Controller {
		return view.NewController(article.Frequencies, renderer, surface,
			view.WithTopN(c.Top),
			view.WithMode(c.Mode),
			view.WithStopWords(c.StopWords),
		)
	}

	if c.Output != "" {
		surface := fs.NewImageSurface(c.Output)
		if err := newController(surface).Redraw(); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Chart written to %s\n", surface.Path())
		return nil
	}

	title := wcfyne.DefaultTitle
	if article.Title != "" {
		title = article.Title + " - " + wcfyne.DefaultTitle
	}
	return deps.ShowWindow(title, c.Width, c.Height, newController)
}

// promptURL asks for the article URL and reads one line of input.
func promptURL(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, "Enter the article URL: ")

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return "", wordchart.Errorf(wordchart.EINVALID, "article URL required")
	}
	return line, nil
}
