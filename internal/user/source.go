package user

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/zarlcorp/core/pkg/zcrypto"
)

// Source is the random stream the generator draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
	Int64N(n int64) int64
	Float64() float64
}

// NewSource returns a deterministic source for the given seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomSeed reads a seed from the system's secure random generator.
func RandomSeed() (uint64, error) {
	b, err := zcrypto.RandBytes(8)
	if err != nil {
		return 0, fmt.Errorf("random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b), nil
}
