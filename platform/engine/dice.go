package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Roller produces single die values in [1,6]. Two rollers built with
// the same seed produce the same sequence.
type Roller struct {
	rng *rand.Rand
}

// NewRoller returns a deterministic roller for the given seed.
func NewRoller(seed int64) *Roller {
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

// NewRandomRoller seeds a roller from crypto/rand. The stream itself
// is still math/rand; only the seed is high-entropy.
func NewRandomRoller() (*Roller, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return NewRoller(int64(binary.LittleEndian.Uint64(b[:]))), nil
}

// Roll returns one die value in [1,6].
func (r *Roller) Roll() int {
	return r.rng.Intn(6) + 1
}
