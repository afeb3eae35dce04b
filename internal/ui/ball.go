package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/lotto-picker/internal/model"
)

var (
	ballTextColor   = color.NRGBA{R: 0x1E, G: 0x1E, B: 0x1E, A: 0xFF}
	ballStrokeColor = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x33}
	fallbackColor   = color.NRGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF}
)

// CategoryColor returns the fill colour of balls in the given category
func CategoryColor(c model.Category) color.NRGBA {
	rgba, err := parseHexColor(c.Hex())
	if err != nil {
		return fallbackColor
	}
	return rgba
}

// BallColor returns the fill colour for number n
func BallColor(n int) color.NRGBA {
	return CategoryColor(model.CategoryOf(n))
}

func parseHexColor(hex string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xFF}
	if _, err := fmt.Sscanf(hex, "#%2x%2x%2x", &c.R, &c.G, &c.B); err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	return c, nil
}

// BallSlot is one of the six ball positions on screen. It stays hidden until
// a number is placed in it.
type BallSlot struct {
	number int
	circle *canvas.Circle
	label  *canvas.Text
	box    *fyne.Container
}

// NewBallSlot creates an empty slot of the given diameter
func NewBallSlot(size float32) *BallSlot {
	circle := canvas.NewCircle(fallbackColor)
	circle.StrokeColor = ballStrokeColor
	circle.StrokeWidth = BallStroke

	label := canvas.NewText("", ballTextColor)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.TextSize = BallTextSize

	box := container.NewGridWrap(fyne.NewSize(size, size), container.NewStack(circle, label))

	b := &BallSlot{circle: circle, label: label, box: box}
	b.Reset()
	return b
}

// Set shows number n in the slot, coloured by its category
func (b *BallSlot) Set(n int) {
	b.number = n
	b.circle.FillColor = BallColor(n)
	b.label.Text = strconv.Itoa(n)
	b.circle.Show()
	b.label.Show()
	b.circle.Refresh()
	b.label.Refresh()
}

// Reset empties the slot
func (b *BallSlot) Reset() {
	b.number = 0
	b.label.Text = ""
	b.circle.Hide()
	b.label.Hide()
}

// Number returns the number shown, or 0 when the slot is empty
func (b *BallSlot) Number() int {
	return b.number
}

// IsEmpty reports whether no number is shown
func (b *BallSlot) IsEmpty() bool {
	return b.number == 0
}

// Container returns the canvas object to place in a layout
func (b *BallSlot) Container() fyne.CanvasObject {
	return b.box
}
