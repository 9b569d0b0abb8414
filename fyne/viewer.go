// Package fyne provides an interactive window for word charts built on the
// Fyne toolkit. The window implements wordchart.Surface and forwards button
// clicks to a controller.
package fyne

import (
	"image"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/fwojciec/wordchart"
)

// DefaultTitle is the window title.
const DefaultTitle = "Word Frequency"

// Dispatcher receives control clicks.
type Dispatcher interface {
	Dispatch(control wordchart.Control) error
	Controls() []wordchart.Control
}

// Ensure Viewer implements wordchart.Surface at compile time.
var _ wordchart.Surface = (*Viewer)(nil)

// Viewer is a window with a row of chart-type buttons above the chart.
type Viewer struct {
	window  fyne.Window
	chart   *canvas.Image
	message *widget.Label
	buttons map[wordchart.Control]*widget.Button
}

// NewViewer creates the window on app. The chart area starts at the given
// minimum size in pixels.
func NewViewer(app fyne.App, title string, width, height int) *Viewer {
	if title == "" {
		title = DefaultTitle
	}

	chart := canvas.NewImageFromImage(nil)
	chart.FillMode = canvas.ImageFillContain
	chart.SetMinSize(fyne.NewSize(float32(width), float32(height)))

	message := widget.NewLabel("")
	message.Alignment = fyne.TextAlignCenter
	message.Hide()

	w := app.NewWindow(title)
	w.SetContent(container.NewStack(chart, message))

	return &Viewer{
		window:  w,
		chart:   chart,
		message: message,
		buttons: make(map[wordchart.Control]*widget.Button),
	}
}

// Bind builds one button per control and routes clicks to d. Dispatch
// errors are shown in a dialog.
func (v *Viewer) Bind(d Dispatcher) {
	row := container.NewHBox()
	for _, control := range d.Controls() {
		control := control
		b := widget.NewButton(string(control), func() {
			if err := d.Dispatch(control); err != nil {
				dialog.ShowError(err, v.window)
			}
		})
		v.buttons[control] = b
		row.Add(b)
	}
	v.window.SetContent(container.NewBorder(row, nil, nil, nil, container.NewStack(v.chart, v.message)))
}

// Button returns the button for control, or nil.
func (v *Viewer) Button(control wordchart.Control) *widget.Button {
	return v.buttons[control]
}

// Window returns the underlying window.
func (v *Viewer) Window() fyne.Window {
	return v.window
}

// Chart returns the image currently displayed, or nil.
func (v *Viewer) Chart() image.Image {
	return v.chart.Image
}

// Message returns the text shown in place of a chart, or "".
func (v *Viewer) Message() string {
	if !v.message.Visible() {
		return ""
	}
	return v.message.Text
}

func (v *Viewer) Clear() {
	v.chart.Image = nil
	v.message.SetText("")
	v.message.Hide()
}

func (v *Viewer) Draw(img image.Image) {
	v.chart.Image = img
}

func (v *Viewer) ShowMessage(msg string) {
	v.chart.Image = nil
	v.message.SetText(msg)
	v.message.Show()
}

func (v *Viewer) Refresh() error {
	v.chart.Refresh()
	return nil
}

// Run shows the window and blocks in the host event loop until it closes.
func (v *Viewer) Run() {
	v.window.ShowAndRun()
}
