package goquery_test

import (
	"testing"

	"github.com/fwojciec/wordchart"
	"github.com/fwojciec/wordchart/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ wordchart.Extractor = (*goquery.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns visible text", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Cats</title></head>
<body>
<h1>The Cat</h1>
<p>The cat sat on the mat.</p>
</body>
</html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Cats", result.Title)
		assert.Contains(t, result.Text, "The Cat")
		assert.Contains(t, result.Text, "The cat sat on the mat.")
		assert.NotContains(t, result.Text, "Cats")
	})

	t.Run("removes script and style bodies", func(t *testing.T) {
		t.Parallel()

		html := `<html>
<head>
<meta charset="utf-8">
<style>body { color: red; }</style>
<script>var headScript = 1;</script>
</head>
<body>
<p>visible</p>
<script>var bodyScript = "hidden";</script>
<style>.inline { display: none; }</style>
</body>
</html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "visible")
		assert.NotContains(t, result.Text, "headScript")
		assert.NotContains(t, result.Text, "bodyScript")
		assert.NotContains(t, result.Text, "color")
		assert.NotContains(t, result.Text, "display")
	})

	t.Run("removes title elements outside head", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>shown</p><svg><title>tooltip</title></svg></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "shown")
		assert.NotContains(t, result.Text, "tooltip")
		assert.Empty(t, result.Title)
	})

	t.Run("removes noscript markup", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>visible</p><noscript><img src="//login.wikimedia.org/wiki/Special:CentralAutoLogin/start?type=1x1" alt="" width="1" height="1"></noscript></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "visible", wordchart.Clean(result.Text))
	})

	t.Run("keeps noscript text", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractor().Extract(`<body><noscript><p>enable javascript</p></noscript></body>`)

		require.NoError(t, err)
		assert.Equal(t, "enable javascript", wordchart.Clean(result.Text))
	})

	t.Run("excludes comments", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractor().Extract(`<body><!-- secret --><p>open</p></body>`)

		require.NoError(t, err)
		assert.NotContains(t, result.Text, "secret")
	})

	t.Run("empty input yields empty text", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractor().Extract("")

		require.NoError(t, err)
		assert.Empty(t, wordchart.Clean(result.Text))
	})
}
