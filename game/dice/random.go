package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// Sides is the number of faces on each die
const Sides = 6

// Random rolls a fair six-sided die. It is safe for concurrent use.
type Random struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seed uint64
}

// NewRandom creates a die seeded with seed. A zero seed draws one from crypto/rand.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = cryptoSeed()
	}
	return &Random{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

// Roll returns a value between 1 and Sides
func (r *Random) Roll() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(Sides) + 1
}

// Seed returns the seed in use, so a game can be replayed
func (r *Random) Seed() uint64 {
	return r.seed
}

func cryptoSeed() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 1
	}
	seed := binary.LittleEndian.Uint64(buf[:])
	if seed == 0 {
		return 1
	}
	return seed
}
