package selection

import (
	"fmt"
	"slices"

	"github.com/ytget/lotto-picker/internal/model"
)

// State is the pick set plus the mode flag. The zero value is not usable; call NewState.
// State is not safe for concurrent use.
type State struct {
	picked []int
	mode   model.Mode
}

// NewState creates an empty state that accepts picks
func NewState() *State {
	return &State{
		picked: make([]int, 0, model.MaxPicks),
		mode:   model.ModeAccumulating,
	}
}

// Add records n as a manual pick.
// Checks run in order: drawn lock, pick limit, range, duplicate.
func (s *State) Add(n int) error {
	if s.mode.IsDrawn() {
		return ErrAlreadyDrawn
	}
	if len(s.picked) >= model.MaxPicks {
		return ErrLimitReached
	}
	if !model.InRange(n) {
		return fmt.Errorf("%w: %d not in %d..%d", ErrOutOfRange, n, model.MinNumber, model.MaxNumber)
	}
	if s.Contains(n) {
		return fmt.Errorf("%w: %d", ErrDuplicate, n)
	}

	s.picked = append(s.picked, n)
	return nil
}

// Clear empties the pick set and accepts picks again
func (s *State) Clear() {
	s.picked = s.picked[:0]
	s.mode = model.ModeAccumulating
}

// MarkDrawn locks manual picks until the next Clear
func (s *State) MarkDrawn() {
	s.mode = model.ModeDrawn
}

// Picked returns a copy of the picks in the order they were added
func (s *State) Picked() []int {
	return slices.Clone(s.picked)
}

// Mode returns the current mode
func (s *State) Mode() model.Mode {
	return s.mode
}

// Len returns the number of picks
func (s *State) Len() int {
	return len(s.picked)
}

// Contains reports whether n has been picked
func (s *State) Contains(n int) bool {
	return slices.Contains(s.picked, n)
}

// Remaining returns how many more numbers can be picked by hand
func (s *State) Remaining() int {
	if s.mode.IsDrawn() {
		return 0
	}
	return model.MaxPicks - len(s.picked)
}
