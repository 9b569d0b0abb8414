// Package analyze runs the article pipeline: fetch, extract, clean and count.
package analyze

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/wordchart"
	"github.com/google/uuid"
)

// Article is the result of analyzing one URL.
type Article struct {
	ID          string
	URL         string
	Title       string
	FetchedAt   time.Time
	Frequencies *wordchart.FrequencyMap
}

// Analyzer turns a URL into word frequencies.
type Analyzer struct {
	Fetcher   wordchart.Fetcher
	Extractor wordchart.Extractor

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Analyze fetches rawURL, strips its markup and counts the cleaned words.
// Stop words are kept; filtering happens at display time.
func (a *Analyzer) Analyze(ctx context.Context, rawURL string) (*Article, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, wordchart.Errorf(wordchart.EINVALID, "article URL required")
	}

	now := a.Now
	if now == nil {
		now = time.Now
	}

	markup, err := a.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	fetchedAt := now()

	result, err := a.Extractor.Extract(markup)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	return &Article{
		ID:          uuid.NewString(),
		URL:         rawURL,
		Title:       result.Title,
		FetchedAt:   fetchedAt,
		Frequencies: wordchart.CountWords(wordchart.Clean(result.Text)),
	}, nil
}
