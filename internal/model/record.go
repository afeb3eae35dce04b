package model

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// DrawRecord is one completed draw kept in the session history
type DrawRecord struct {
	ID      string     `json:"id" yaml:"id"`
	Result  DrawResult `json:"result" yaml:"result"`
	Picked  []int      `json:"picked,omitempty" yaml:"picked,omitempty"` // numbers chosen by hand before the draw
	DrawnAt time.Time  `json:"drawn_at" yaml:"drawn_at"`
}

// NewDrawRecord creates a record with a fresh ID
func NewDrawRecord(result DrawResult, picked []int) *DrawRecord {
	return &DrawRecord{
		ID:      uuid.NewString(),
		Result:  result,
		Picked:  slices.Clone(picked),
		DrawnAt: time.Now(),
	}
}

// IsPicked reports whether n was chosen by hand rather than drawn
func (dr *DrawRecord) IsPicked(n int) bool {
	return slices.Contains(dr.Picked, n)
}

// DrawnCount returns how many numbers were filled in by the draw
func (dr *DrawRecord) DrawnCount() int {
	return DrawSize - len(dr.Picked)
}

// GetTimeString returns the draw time formatted as hh:mm:ss
func (dr *DrawRecord) GetTimeString() string {
	if dr.DrawnAt.IsZero() {
		return "—"
	}
	return dr.DrawnAt.Format(time.TimeOnly)
}
