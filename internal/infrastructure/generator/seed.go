package generator

import (
	"math/rand/v2"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// seedStream keeps the two PCG words apart so a seed never collapses to a trivial state.
const seedStream = 0x9e3779b97f4a7c15

// Seed derives a stable 64-bit seed from a generator version and a list of name parts.
// The value depends only on its inputs, so a given (version, parts) pair always produces the
// same records on every platform and process.
func Seed(version int, parts ...string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString("v")
	_, _ = d.WriteString(strconv.Itoa(version))
	for _, p := range parts {
		_, _ = d.Write([]byte{0x1f})
		_, _ = d.WriteString(p)
	}
	return d.Sum64()
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^seedStream))
}

// between draws an integer in [lo, hi].
func between(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

func between64(r *rand.Rand, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Int64N(hi-lo+1)
}
