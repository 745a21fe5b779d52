// Package testutil provides shared helpers for collkit test suites.
package testutil

import (
	"math/rand"
	"os"
	"strconv"
	"testing"
)

// NewRand returns a seeded PRNG for workload tests. The seed is taken from
// COLLKIT_TEST_SEED when set so a failing run can be replayed, and is always
// logged.
func NewRand(tb testing.TB) *rand.Rand {
	tb.Helper()

	seed := int64(1)
	if env := os.Getenv("COLLKIT_TEST_SEED"); env != "" {
		parsed, err := strconv.ParseInt(env, 10, 64)
		if err != nil {
			tb.Fatalf("bad COLLKIT_TEST_SEED %q: %v", env, err)
		}
		seed = parsed
	}
	tb.Logf("workload seed: %d (set COLLKIT_TEST_SEED to replay)", seed)
	return rand.New(rand.NewSource(seed))
}

// Perm returns a random permutation of 0..n-1 as int keys.
func Perm(rng *rand.Rand, n int) []int {
	return rng.Perm(n)
}
