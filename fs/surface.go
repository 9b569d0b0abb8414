// Package fs provides a file-backed wordchart.Surface for headless runs.
package fs

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/fwojciec/wordchart"
)

// Size of the placeholder image written when no chart is available.
const (
	placeholderWidth  = 640
	placeholderHeight = 400
)

// Ensure ImageSurface implements wordchart.Surface at compile time.
var _ wordchart.Surface = (*ImageSurface)(nil)

// ImageSurface writes the current chart to a PNG file on every Refresh.
// The file is written to a temporary path and renamed into place.
type ImageSurface struct {
	path    string
	img     image.Image
	message string
}

// NewImageSurface creates a surface that writes to path.
func NewImageSurface(path string) *ImageSurface {
	return &ImageSurface{path: path}
}

// Path returns the output file path.
func (s *ImageSurface) Path() string {
	return s.path
}

// Message returns the message shown instead of a chart, if any.
func (s *ImageSurface) Message() string {
	return s.message
}

// Image returns the chart currently on the surface.
func (s *ImageSurface) Image() image.Image {
	return s.img
}

func (s *ImageSurface) Clear() {
	s.img = nil
	s.message = ""
}

func (s *ImageSurface) Draw(img image.Image) {
	s.img = img
	s.message = ""
}

// ShowMessage records msg and replaces the chart with a blank placeholder.
func (s *ImageSurface) ShowMessage(msg string) {
	s.img = nil
	s.message = msg
}

// Refresh writes the surface to disk.
func (s *ImageSurface) Refresh() error {
	img := s.img
	if img == nil {
		img = placeholder()
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, s.path)
}

func placeholder() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, placeholderWidth, placeholderHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	return img
}
