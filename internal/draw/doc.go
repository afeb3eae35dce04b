package draw

// Package draw implements the draw pipeline: a pure fill algorithm that
// completes a partial pick set with uniformly shuffled numbers, pluggable
// random sources, and the Service that front ends drive (picks, draws, clear,
// history and update callbacks).
