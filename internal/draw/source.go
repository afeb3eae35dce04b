package draw

import (
	cryptorand "crypto/rand"
	"errors"
	"fmt"
	"math/rand/v2"
)

var ErrUnknownSource = errors.New("unknown random source")

// SourceKind names a random source selectable from settings or flags
type SourceKind string

const (
	SourceFast   SourceKind = "fast"
	SourceSecure SourceKind = "secure"
)

// pcgStream is the fixed second PCG word used for seeded sources
const pcgStream = 0x9e3779b97f4a7c15

// randSource shuffles with a math/rand/v2 generator; nil uses the global one.
// A non-nil generator is not safe for concurrent use.
type randSource struct {
	r *rand.Rand
}

func (s randSource) Shuffle(n int, swap func(i, j int)) {
	if s.r == nil {
		rand.Shuffle(n, swap)
		return
	}
	s.r.Shuffle(n, swap)
}

// NewSource returns a source backed by the global math/rand/v2 generator
func NewSource() Source {
	return randSource{}
}

// NewSeededSource returns a reproducible PCG source
func NewSeededSource(seed uint64) Source {
	return randSource{r: rand.New(rand.NewPCG(seed, pcgStream))}
}

// NewSecureSource returns a ChaCha8 source keyed from crypto/rand
func NewSecureSource() (Source, error) {
	var key [32]byte
	if _, err := cryptorand.Read(key[:]); err != nil {
		return nil, fmt.Errorf("failed to seed secure source: %w", err)
	}
	return randSource{r: rand.New(rand.NewChaCha8(key))}, nil
}

// NewSourceOfKind builds the source named by kind
func NewSourceOfKind(kind SourceKind) (Source, error) {
	switch kind {
	case SourceFast, "":
		return NewSource(), nil
	case SourceSecure:
		return NewSecureSource()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, kind)
	}
}

// SourceKinds lists the selectable source kinds
func SourceKinds() []SourceKind {
	return []SourceKind{SourceFast, SourceSecure}
}
