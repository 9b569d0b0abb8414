package gochart_test

import (
	"testing"

	"github.com/fwojciec/wordchart"
	"github.com/fwojciec/wordchart/gochart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ wordchart.ChartRenderer = (*gochart.Renderer)(nil)

func sampleMap() *wordchart.FrequencyMap {
	return wordchart.CountWords("cat sat mat cat ran cat dog dog")
}

func TestRenderer_RenderBar(t *testing.T) {
	t.Parallel()

	t.Run("renders an image of the configured size", func(t *testing.T) {
		t.Parallel()

		r := gochart.NewRenderer(gochart.WithSize(640, 400), gochart.WithSubject("Cats"))
		img, err := r.RenderBar(sampleMap(), 10)

		require.NoError(t, err)
		assert.Equal(t, 640, img.Bounds().Dx())
		assert.Equal(t, 400, img.Bounds().Dy())
	})

	t.Run("renders a single entry", func(t *testing.T) {
		t.Parallel()

		img, err := gochart.NewRenderer().RenderBar(wordchart.CountWords("lonely"), 10)

		require.NoError(t, err)
		assert.NotNil(t, img)
	})

	t.Run("empty map signals insufficient data", func(t *testing.T) {
		t.Parallel()

		_, err := gochart.NewRenderer().RenderBar(wordchart.CountWords(""), 10)

		var de *wordchart.InsufficientDataError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, wordchart.ENODATA, wordchart.ErrorCode(err))
	})
}

func TestRenderer_RenderPie(t *testing.T) {
	t.Parallel()

	t.Run("renders an image of the configured size", func(t *testing.T) {
		t.Parallel()

		r := gochart.NewRenderer(gochart.WithSize(500, 500))
		img, err := r.RenderPie(sampleMap(), 3)

		require.NoError(t, err)
		assert.Equal(t, 500, img.Bounds().Dx())
		assert.Equal(t, 500, img.Bounds().Dy())
	})

	t.Run("empty map signals insufficient data", func(t *testing.T) {
		t.Parallel()

		_, err := gochart.NewRenderer().RenderPie(wordchart.NewFrequencyMap(), 10)

		var de *wordchart.InsufficientDataError
		require.ErrorAs(t, err, &de)
	})

	t.Run("rejects non-positive top count", func(t *testing.T) {
		t.Parallel()

		_, err := gochart.NewRenderer().RenderPie(sampleMap(), 0)

		assert.Equal(t, wordchart.EINVALID, wordchart.ErrorCode(err))
	})
}
