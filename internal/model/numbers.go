package model

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Number range and draw sizing
const (
	MinNumber = 1
	MaxNumber = 45

	// DrawSize is the number of balls in a completed draw
	DrawSize = 6

	// MaxPicks is how many numbers may be chosen by hand; the last ball is always drawn
	MaxPicks = DrawSize - 1
)

// Text fragments
const (
	NumberSeparator = " · "
)

// InRange reports whether n lies within [MinNumber, MaxNumber]
func InRange(n int) bool {
	return n >= MinNumber && n <= MaxNumber
}

// AllNumbers returns every number in the range in ascending order
func AllNumbers() []int {
	numbers := make([]int, 0, MaxNumber-MinNumber+1)
	for n := MinNumber; n <= MaxNumber; n++ {
		numbers = append(numbers, n)
	}
	return numbers
}

// DrawResult is a completed draw: DrawSize distinct numbers sorted ascending
type DrawResult [DrawSize]int

// NewDrawResult builds a sorted result from exactly DrawSize distinct numbers
// within the range
func NewDrawResult(numbers []int) (DrawResult, error) {
	var r DrawResult
	if len(numbers) != DrawSize {
		return r, fmt.Errorf("draw result needs %d numbers, got %d", DrawSize, len(numbers))
	}

	sorted := slices.Clone(numbers)
	slices.Sort(sorted)
	for i, n := range sorted {
		if !InRange(n) {
			return r, fmt.Errorf("number %d outside %d..%d", n, MinNumber, MaxNumber)
		}
		if i > 0 && sorted[i-1] == n {
			return r, fmt.Errorf("duplicate number %d", n)
		}
		r[i] = n
	}
	return r, nil
}

// Numbers returns the result as a slice
func (r DrawResult) Numbers() []int {
	return slices.Clone(r[:])
}

// Contains reports whether n is part of the result
func (r DrawResult) Contains(n int) bool {
	return slices.Contains(r[:], n)
}

// ContainsAll reports whether every number in picked is part of the result
func (r DrawResult) ContainsAll(picked []int) bool {
	for _, n := range picked {
		if !r.Contains(n) {
			return false
		}
	}
	return true
}

// String returns numbers joined with a middle dot, e.g. "3 · 8 · 17 · 22 · 39 · 44"
func (r DrawResult) String() string {
	parts := make([]string, len(r))
	for i, n := range r {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, NumberSeparator)
}
