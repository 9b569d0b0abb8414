package wordchart

import "context"

// Fetcher retrieves raw markup from URLs.
type Fetcher interface {
	// Fetch issues a single request for url and returns the response body.
	// A completed request with a non-success status returns a *FetchError.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (markup string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
