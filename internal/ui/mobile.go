package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// isMobileDevice checks if the app is running on a phone or tablet
func isMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// ballSize returns the ball diameter for the current device
func ballSize() float32 {
	if isMobileDevice() {
		return MobileBallSize
	}
	return BallSize
}

// ballColumns returns how many balls fit on one row.
// Phones show the six balls as two rows of three.
func ballColumns() int {
	if isMobileDevice() {
		return MobileBallColumns
	}
	return DesktopBallColumns
}

// newBallRow lays out the slots for the current device
func newBallRow(slots []*BallSlot) *fyne.Container {
	objects := make([]fyne.CanvasObject, 0, len(slots))
	for _, slot := range slots {
		objects = append(objects, slot.Container())
	}
	return container.NewCenter(container.NewGridWithColumns(ballColumns(), objects...))
}

// newActionButton creates a button large enough to be tapped on touch screens
func newActionButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)
	if isMobileDevice() {
		btn.Resize(fyne.NewSize(MinTouchTargetSize*2, MinTouchTargetSize))
	}
	return btn
}
