package model

import (
	"testing"
)

func TestInRange(t *testing.T) {
	tests := []struct {
		n        int
		expected bool
	}{
		{0, false},
		{1, true},
		{23, true},
		{45, true},
		{46, false},
		{-3, false},
	}

	for _, test := range tests {
		if got := InRange(test.n); got != test.expected {
			t.Errorf("InRange(%d) = %v, expected %v", test.n, got, test.expected)
		}
	}
}

func TestAllNumbers(t *testing.T) {
	all := AllNumbers()
	if len(all) != MaxNumber {
		t.Fatalf("Expected %d numbers, got %d", MaxNumber, len(all))
	}
	for i, n := range all {
		if n != i+1 {
			t.Errorf("AllNumbers()[%d] = %d, expected %d", i, n, i+1)
		}
	}
}

func TestNewDrawResult(t *testing.T) {
	tests := []struct {
		name    string
		numbers []int
		want    DrawResult
		wantErr bool
	}{
		{"sorted input", []int{1, 2, 3, 4, 5, 6}, DrawResult{1, 2, 3, 4, 5, 6}, false},
		{"unsorted input", []int{44, 3, 17, 9, 30, 21}, DrawResult{3, 9, 17, 21, 30, 44}, false},
		{"too few", []int{1, 2, 3}, DrawResult{}, true},
		{"too many", []int{1, 2, 3, 4, 5, 6, 7}, DrawResult{}, true},
		{"duplicate", []int{1, 2, 3, 4, 5, 5}, DrawResult{}, true},
		{"out of range", []int{0, 2, 3, 4, 5, 6}, DrawResult{}, true},
		{"above range", []int{1, 2, 3, 4, 5, 46}, DrawResult{}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := NewDrawResult(test.numbers)
			if test.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %v", test.numbers)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != test.want {
				t.Errorf("NewDrawResult(%v) = %v, expected %v", test.numbers, got, test.want)
			}
		})
	}
}

func TestNewDrawResult_DoesNotModifyInput(t *testing.T) {
	input := []int{6, 5, 4, 3, 2, 1}
	if _, err := NewDrawResult(input); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if input[0] != 6 {
		t.Errorf("Input slice was reordered: %v", input)
	}
}

func TestDrawResult_Contains(t *testing.T) {
	r := DrawResult{3, 9, 17, 21, 30, 44}

	if !r.Contains(17) {
		t.Error("Expected result to contain 17")
	}
	if r.Contains(18) {
		t.Error("Expected result not to contain 18")
	}
	if !r.ContainsAll([]int{3, 17, 44}) {
		t.Error("Expected result to contain 3, 17 and 44")
	}
	if r.ContainsAll([]int{3, 18}) {
		t.Error("Expected ContainsAll to fail for 18")
	}
	if !r.ContainsAll(nil) {
		t.Error("Expected ContainsAll(nil) to be true")
	}
}

func TestDrawResult_String(t *testing.T) {
	r := DrawResult{3, 9, 17, 21, 30, 44}
	expected := "3 · 9 · 17 · 21 · 30 · 44"
	if r.String() != expected {
		t.Errorf("DrawResult.String() = %q, expected %q", r.String(), expected)
	}
}

func TestDrawResult_NumbersIsCopy(t *testing.T) {
	r := DrawResult{3, 9, 17, 21, 30, 44}
	numbers := r.Numbers()
	numbers[0] = 99
	if r[0] != 3 {
		t.Errorf("Numbers() should return a copy, result changed to %v", r)
	}
}
