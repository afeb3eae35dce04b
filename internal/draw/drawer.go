package draw

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ytget/lotto-picker/internal/model"
)

var ErrInvalidPicks = errors.New("invalid picks")

// Drawer completes partial pick sets with a bound random source
type Drawer struct {
	src Source
}

// NewDrawer creates a drawer; a nil source falls back to NewSource
func NewDrawer(src Source) *Drawer {
	if src == nil {
		src = NewSource()
	}
	return &Drawer{src: src}
}

// Draw completes picked into a full result using the drawer's source
func (d *Drawer) Draw(picked []int) (model.DrawResult, error) {
	return Draw(d.src, picked)
}

// Draw returns model.DrawSize distinct numbers sorted ascending that include
// every number in picked. The missing numbers are the head of a uniform
// shuffle of the range minus picked. picked is not modified.
func Draw(src Source, picked []int) (model.DrawResult, error) {
	if err := validatePicks(picked); err != nil {
		return model.DrawResult{}, err
	}

	remaining := make([]int, 0, model.MaxNumber-model.MinNumber+1-len(picked))
	for n := model.MinNumber; n <= model.MaxNumber; n++ {
		if !slices.Contains(picked, n) {
			remaining = append(remaining, n)
		}
	}

	src.Shuffle(len(remaining), func(i, j int) {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	})

	numbers := make([]int, 0, model.DrawSize)
	numbers = append(numbers, picked...)
	numbers = append(numbers, remaining[:model.DrawSize-len(picked)]...)
	return model.NewDrawResult(numbers)
}

func validatePicks(picked []int) error {
	if len(picked) > model.MaxPicks {
		return fmt.Errorf("%w: %d picks, at most %d allowed", ErrInvalidPicks, len(picked), model.MaxPicks)
	}
	for i, n := range picked {
		if !model.InRange(n) {
			return fmt.Errorf("%w: %d not in %d..%d", ErrInvalidPicks, n, model.MinNumber, model.MaxNumber)
		}
		if slices.Contains(picked[:i], n) {
			return fmt.Errorf("%w: %d picked twice", ErrInvalidPicks, n)
		}
	}
	return nil
}
