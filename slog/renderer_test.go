package slog_test

import (
	"bytes"
	"image"
	"log/slog"
	"testing"

	"github.com/fwojciec/wordchart"
	"github.com/fwojciec/wordchart/mock"
	wcslog "github.com/fwojciec/wordchart/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRenderer(t *testing.T) {
	t.Parallel()

	inner := &mock.ChartRenderer{
		RenderBarFn: func(m *wordchart.FrequencyMap, topN int) (image.Image, error) {
			return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
		},
		RenderPieFn: func(m *wordchart.FrequencyMap, topN int) (image.Image, error) {
			return nil, &wordchart.InsufficientDataError{}
		},
	}

	t.Run("logs bar renders at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		img, err := wcslog.NewLoggingRenderer(inner, logger).RenderBar(wordchart.CountWords("a b c"), 5)

		require.NoError(t, err)
		assert.NotNil(t, img)
		output := buf.String()
		assert.Contains(t, output, "render")
		assert.Contains(t, output, "mode=bar")
		assert.Contains(t, output, "words=3")
		assert.Contains(t, output, "top=5")
	})

	t.Run("logs pie errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		_, err := wcslog.NewLoggingRenderer(inner, logger).RenderPie(wordchart.CountWords(""), 5)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "mode=pie")
		assert.Contains(t, buf.String(), "insufficient data")
	})

	t.Run("silent at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		_, _ = wcslog.NewLoggingRenderer(inner, logger).RenderBar(wordchart.CountWords("a"), 5)

		assert.Empty(t, buf.String())
	})
}
