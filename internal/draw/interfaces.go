package draw

import (
	"github.com/ytget/lotto-picker/internal/model"
)

// Picker defines the interface front ends use to drive a draw session.
type Picker interface {
	SetUpdateCallback(func(Snapshot))
	Add(n int) error
	Clear()
	Draw() (*model.DrawRecord, error)
	Snapshot() Snapshot
	History() []*model.DrawRecord

	// SetHistoryLimit bounds how many past draws are kept
	SetHistoryLimit(limit int)

	// SetSource replaces the random source used by later draws
	SetSource(src Source)
}

// Source produces uniform random permutations.
type Source interface {
	// Shuffle permutes n elements through swap; every permutation is equally likely.
	Shuffle(n int, swap func(i, j int))
}
