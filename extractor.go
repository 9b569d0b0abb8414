package wordchart

// ExtractResult holds the visible text of a page.
type ExtractResult struct {
	// Title is the page title, when the page declares one.
	Title string

	// Text is the plain text content with all markup removed.
	Text string
}

// Extractor strips markup down to visible text.
type Extractor interface {
	// Extract parses markup and returns its text content. Non-visible
	// elements such as scripts and styles are removed before the text is
	// collected so that their bodies never reach the token stream.
	Extract(markup string) (*ExtractResult, error)
}
