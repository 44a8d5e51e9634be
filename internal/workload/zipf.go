// Package workload generates streams of integers to factorize.
//
// A stream is a sequence of ranks in [0, keySpace) mapped onto integers
// starting at a base, so that every rank is a distinct factorization input.
package workload

import (
	"math"
	"math/rand/v2"
)

// Zipf generates n inputs whose ranks follow a Zipfian distribution.
// keySpace is the number of distinct inputs, theta controls the skew
// (higher = more skewed) and seed makes the stream reproducible.
func Zipf(n, keySpace int, base int64, theta float64, seed uint64) []int64 {
	ranks := zipfRanks(n, keySpace, theta, seed)
	nums := make([]int64, n)
	for i, r := range ranks {
		nums[i] = base + int64(r)
	}
	return nums
}

func zipfRanks(n, keySpace int, theta float64, seed uint64) []int {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	ranks := make([]int, n)

	spread := keySpace + 1
	zeta2 := computeZeta(2, theta)
	zetaN := computeZeta(uint64(spread), theta)
	alpha := 1.0 / (1.0 - theta)
	eta := (1 - math.Pow(2.0/float64(spread), 1.0-theta)) / (1.0 - zeta2/zetaN)
	halfPowTheta := 1.0 + math.Pow(0.5, theta)

	for i := range n {
		u := rng.Float64()
		uz := u * zetaN
		var result int
		switch {
		case uz < 1.0:
			result = 0
		case uz < halfPowTheta:
			result = 1
		default:
			result = int(float64(spread) * math.Pow(eta*u-eta+1.0, alpha))
		}
		if result >= keySpace {
			result = keySpace - 1
		}
		ranks[i] = result
	}
	return ranks
}

func computeZeta(n uint64, theta float64) float64 {
	sum := 0.0
	for i := uint64(1); i <= n; i++ {
		sum += 1.0 / math.Pow(float64(i), theta)
	}
	return sum
}
