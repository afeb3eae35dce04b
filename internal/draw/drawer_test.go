package draw

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/lotto-picker/internal/model"
)

// noopSource leaves the remaining numbers in ascending order
type noopSource struct{}

func (noopSource) Shuffle(n int, swap func(i, j int)) {}

// reverseSource reverses the remaining numbers
type reverseSource struct{}

func (reverseSource) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

func requireValidResult(t *testing.T, result model.DrawResult, picked []int) {
	t.Helper()
	for i, n := range result {
		require.True(t, model.InRange(n), "number %d out of range in %v", n, result)
		if i > 0 {
			require.Less(t, result[i-1], n, "result not strictly ascending: %v", result)
		}
	}
	require.True(t, result.ContainsAll(picked), "result %v misses picks %v", result, picked)
}

func TestDraw_FillsFromHeadOfShuffle(t *testing.T) {
	cases := []struct {
		name   string
		src    Source
		picked []int
		want   model.DrawResult
	}{
		{"no picks, identity", noopSource{}, nil, model.DrawResult{1, 2, 3, 4, 5, 6}},
		{"picks, identity", noopSource{}, []int{3, 17, 44}, model.DrawResult{1, 2, 3, 4, 17, 44}},
		{"no picks, reversed", reverseSource{}, nil, model.DrawResult{40, 41, 42, 43, 44, 45}},
		{"picks, reversed", reverseSource{}, []int{3, 17, 44}, model.DrawResult{3, 17, 42, 43, 44, 45}},
		{"five picks", reverseSource{}, []int{5, 12, 8, 30, 1}, model.DrawResult{1, 5, 8, 12, 30, 45}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Draw(tc.src, tc.picked)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDraw_Properties(t *testing.T) {
	src := NewSeededSource(42)
	pickSets := [][]int{
		nil,
		{1},
		{45},
		{3, 17, 44},
		{10, 20, 30, 40},
		{5, 12, 8, 30, 1},
	}

	for _, picked := range pickSets {
		for i := 0; i < 500; i++ {
			result, err := Draw(src, picked)
			require.NoError(t, err)
			requireValidResult(t, result, picked)
		}
	}
}

func TestDraw_ScenarioFixedPicks(t *testing.T) {
	picked := []int{3, 17, 44}
	result, err := Draw(NewSeededSource(7), picked)
	require.NoError(t, err)

	requireValidResult(t, result, picked)
	others := 0
	for _, n := range result {
		if !slices.Contains(picked, n) {
			others++
		}
	}
	assert.Equal(t, 3, others)
}

func TestDraw_DoesNotModifyPicks(t *testing.T) {
	picked := []int{44, 3, 17}
	_, err := Draw(NewSeededSource(1), picked)
	require.NoError(t, err)
	assert.Equal(t, []int{44, 3, 17}, picked)
}

func TestDraw_InvalidPicks(t *testing.T) {
	cases := []struct {
		name   string
		picked []int
	}{
		{"too many", []int{1, 2, 3, 4, 5, 6}},
		{"duplicate", []int{7, 7}},
		{"zero", []int{0}},
		{"above range", []int{46}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Draw(NewSource(), tc.picked)
			assert.ErrorIs(t, err, ErrInvalidPicks)
		})
	}
}

func TestDraw_SeededIsReproducible(t *testing.T) {
	a := NewDrawer(NewSeededSource(2024))
	b := NewDrawer(NewSeededSource(2024))

	for i := 0; i < 20; i++ {
		ra, err := a.Draw(nil)
		require.NoError(t, err)
		rb, err := b.Draw(nil)
		require.NoError(t, err)
		assert.Equal(t, ra, rb)
	}
}

func TestDraw_UniformWithoutPicks(t *testing.T) {
	const trials = 45000
	src := NewSeededSource(1)
	counts := make(map[int]int)

	for i := 0; i < trials; i++ {
		result, err := Draw(src, nil)
		require.NoError(t, err)
		for _, n := range result {
			counts[n]++
		}
	}

	// each number appears with probability 6/45
	expected := float64(trials) * model.DrawSize / model.MaxNumber
	for n := model.MinNumber; n <= model.MaxNumber; n++ {
		assert.InEpsilon(t, expected, float64(counts[n]), 0.06, "number %d drawn %d times", n, counts[n])
	}

	// low and high halves are drawn equally often
	low, high := 0, 0
	for n := 1; n <= 22; n++ {
		low += counts[n]
	}
	for n := 24; n <= 45; n++ {
		high += counts[n]
	}
	assert.InEpsilon(t, float64(low), float64(high), 0.02)
}

func TestDraw_UniformFillAroundPicks(t *testing.T) {
	const trials = 42000
	picked := []int{3, 17, 44}
	src := NewSeededSource(99)
	counts := make(map[int]int)

	for i := 0; i < trials; i++ {
		result, err := Draw(src, picked)
		require.NoError(t, err)
		for _, n := range result {
			counts[n]++
		}
	}

	for _, n := range picked {
		assert.Equal(t, trials, counts[n])
	}

	// 3 fills spread over the 42 numbers not picked
	expected := float64(trials) * 3 / 42
	for n := model.MinNumber; n <= model.MaxNumber; n++ {
		if slices.Contains(picked, n) {
			continue
		}
		assert.InEpsilon(t, expected, float64(counts[n]), 0.1, "number %d drawn %d times", n, counts[n])
	}
}

func TestNewDrawer_NilSource(t *testing.T) {
	d := NewDrawer(nil)
	result, err := d.Draw([]int{9})
	require.NoError(t, err)
	requireValidResult(t, result, []int{9})
}
