package model

// Mode represents whether manual picks are still being collected
type Mode string

const (
	// ModeAccumulating means the user may still add numbers manually
	ModeAccumulating Mode = "Accumulating"

	// ModeDrawn means a draw has completed and manual picks are locked until cleared
	ModeDrawn Mode = "Drawn"
)

// String returns the string representation of Mode
func (m Mode) String() string {
	return string(m)
}

// IsDrawn returns true if a draw has completed since the last clear
func (m Mode) IsDrawn() bool {
	return m == ModeDrawn
}

// AcceptsPicks returns true if manual picks may still be added
func (m Mode) AcceptsPicks() bool {
	return m == ModeAccumulating
}
