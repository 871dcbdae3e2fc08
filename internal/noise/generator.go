// Package noise generates random lowercase strings with no linguistic
// structure. They form the "invalid" half of a dataset.
package noise

import (
	"math/rand/v2"
)

const (
	// MinLength is the shortest string the generator produces.
	MinLength = 3

	alphabet = "abcdefghijklmnopqrstuvwxyz"
)

// NewRand returns a PCG-backed random source. A zero seed draws a random one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generator produces random strings from a single source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Length draws a string length uniformly from [MinLength, maxSize), or
// returns MinLength when maxSize <= MinLength.
func (g *Generator) Length(maxSize int) int {
	if maxSize <= MinLength {
		return MinLength
	}
	return MinLength + g.rng.IntN(maxSize-MinLength)
}

// String returns a random string of Length(maxSize) characters, each drawn
// independently and uniformly from a..z.
func (g *Generator) String(maxSize int) string {
	n := g.Length(maxSize)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[g.rng.IntN(len(alphabet))]
	}
	return string(b)
}

// Pool returns n random strings generated with the same maxSize.
func (g *Generator) Pool(n, maxSize int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = g.String(maxSize)
	}
	return out
}
