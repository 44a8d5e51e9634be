// Package prime factors integers, tests them for primality and enumerates
// the primes in a bounded range.
//
// Every operation is generic over the fixed-width Go integer types and uses
// deterministic trial division on the 6k±1 wheel. Bounds are compared with
// division (d <= n/d) instead of squaring, so inputs at or near the type's
// maximum value never overflow.
//
// Factorize rejects zero and negative inputs with an *InvalidNumberError;
// 1 has no prime factors and yields an empty list. PrimesInRange and
// NewSequence reject a lower bound below 1 and spans wider than the
// configured ceiling with a *RangeError, and return nothing for inverted
// ranges.
//
// Cache memoizes factorizations behind a whole-map flush once its capacity
// is reached, and FactorizeAll fans a batch out to one goroutine per input.
// Neither holds package-level state; callers own their lifetime.
package prime
