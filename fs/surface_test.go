package fs_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/wordchart/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeFile(t *testing.T, path string) image.Image {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func TestImageSurface(t *testing.T) {
	t.Parallel()

	t.Run("writes drawn image as PNG", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "charts", "out.png")
		s := fs.NewImageSurface(path)

		img := image.NewRGBA(image.Rect(0, 0, 20, 10))
		img.Set(1, 1, color.RGBA{R: 255, A: 255})

		s.Clear()
		s.Draw(img)
		require.NoError(t, s.Refresh())

		got := decodeFile(t, path)
		assert.Equal(t, 20, got.Bounds().Dx())
		assert.Equal(t, 10, got.Bounds().Dy())
		r, _, _, _ := got.At(1, 1).RGBA()
		assert.Equal(t, uint32(0xffff), r)

		_, err := os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("writes placeholder for messages", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.png")
		s := fs.NewImageSurface(path)

		s.Draw(image.NewRGBA(image.Rect(0, 0, 5, 5)))
		s.ShowMessage("No words to chart")
		require.NoError(t, s.Refresh())

		assert.Equal(t, "No words to chart", s.Message())
		assert.Nil(t, s.Image())
		got := decodeFile(t, path)
		assert.Equal(t, 640, got.Bounds().Dx())
	})

	t.Run("clear resets state", func(t *testing.T) {
		t.Parallel()

		s := fs.NewImageSurface(filepath.Join(t.TempDir(), "out.png"))
		s.ShowMessage("x")
		s.Clear()

		assert.Empty(t, s.Message())
		assert.Nil(t, s.Image())
	})

	t.Run("returns error when directory cannot be created", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		blocker := filepath.Join(dir, "file")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

		s := fs.NewImageSurface(filepath.Join(blocker, "out.png"))
		s.Draw(image.NewRGBA(image.Rect(0, 0, 1, 1)))

		assert.Error(t, s.Refresh())
	})
}
