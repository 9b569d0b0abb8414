package mock

import (
	"image"

	"github.com/fwojciec/wordchart"
)

var _ wordchart.Surface = (*Surface)(nil)

// Surface is a mock implementation of wordchart.Surface.
type Surface struct {
	ClearFn       func()
	DrawFn        func(img image.Image)
	ShowMessageFn func(msg string)
	RefreshFn     func() error
}

func (s *Surface) Clear() {
	s.ClearFn()
}

func (s *Surface) Draw(img image.Image) {
	s.DrawFn(img)
}

func (s *Surface) ShowMessage(msg string) {
	s.ShowMessageFn(msg)
}

func (s *Surface) Refresh() error {
	return s.RefreshFn()
}
