package core

import "math/rand"

// Random is the uniform random source of the console.
type Random interface {
	Byte() uint8
	Word() uint16
	Seed(seed int64)
}

// NewRandom returns a Random backed by math/rand seeded with seed.
func NewRandom(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Rand implements Random.
type Rand struct {
	r *rand.Rand
}

// Byte returns a uniformly distributed byte.
func (r *Rand) Byte() uint8 {
	return uint8(r.r.Intn(256))
}

// Word returns a uniformly distributed 16-bit value.
func (r *Rand) Word() uint16 {
	return uint16(r.r.Intn(1 << 16))
}

// Seed reseeds the generator.
func (r *Rand) Seed(seed int64) {
	r.r.Seed(seed)
}
