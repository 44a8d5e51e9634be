package prime

import (
	"context"
	"fmt"
	"math/bits"
)

// pollInterval is the number of wheel steps between context checks in
// FactorizeContext.
const pollInterval = 1 << 16

// Factorize returns the prime factors of n in ascending order, each repeated
// once per power, so 12 yields [2 2 3]. The product of the result equals n.
//
// Values below 1 have no prime factorization and fail with an
// *InvalidNumberError. 1 yields an empty list.
func Factorize[T Integer](n T) ([]T, error) {
	return factorize(context.Background(), n)
}

// FactorizeContext is Factorize with cancellation. Trial division is
// CPU-bound, so ctx is polled periodically rather than on every step.
func FactorizeContext[T Integer](ctx context.Context, n T) ([]T, error) {
	return factorize(ctx, n)
}

func factorize[T Integer](ctx context.Context, n T) ([]T, error) {
	if n < 1 {
		return nil, invalidNumber(n)
	}
	orig := n
	factors := make([]T, 0, 16)
	if n == 1 {
		return factors, nil
	}

	if tz := bits.TrailingZeros64(uint64(n)); tz > 0 {
		for range tz {
			factors = append(factors, 2)
		}
		n >>= tz
	}

	for n%3 == 0 {
		factors = append(factors, 3)
		n /= 3
	}

	limit := MaxDivisor[T]()
	steps := 0
	for d := T(5); d <= limit && d <= n/d; d += 6 {
		for n%d == 0 {
			factors = append(factors, d)
			n /= d
		}
		for n%(d+2) == 0 {
			factors = append(factors, d+2)
			n /= d + 2
		}

		steps++
		if steps%pollInterval == 0 && ctx.Err() != nil {
			return nil, fmt.Errorf("factorize %v: %w", orig, ctx.Err())
		}
		if !headroom(d, 6) {
			return nil, fmt.Errorf("factorize %v: %w", orig, ErrOverflow)
		}
	}

	if n > 1 {
		factors = append(factors, n)
	}
	return factors, nil
}

// LargestFactor returns the largest prime factor of n, or n itself when n is 1.
func LargestFactor[T Integer](n T) (T, error) {
	factors, err := Factorize(n)
	if err != nil {
		return 0, err
	}
	if len(factors) == 0 {
		return n, nil
	}
	return factors[len(factors)-1], nil
}

// SmallestFactor returns the smallest prime factor of n, or n itself when n is 1.
func SmallestFactor[T Integer](n T) (T, error) {
	factors, err := Factorize(n)
	if err != nil {
		return 0, err
	}
	if len(factors) == 0 {
		return n, nil
	}
	return factors[0], nil
}
