package prime

// Term is one prime power of a factorization.
type Term[T Integer] struct {
	Prime T
	Power int
}

// Exponents collapses an ascending factor list such as [2 2 3] into its
// prime powers, [{2 2} {3 1}].
func Exponents[T Integer](factors []T) []Term[T] {
	var terms []Term[T]
	for _, f := range factors {
		if n := len(terms); n > 0 && terms[n-1].Prime == f {
			terms[n-1].Power++
			continue
		}
		terms = append(terms, Term[T]{Prime: f, Power: 1})
	}
	return terms
}

// Divisors returns every positive divisor of n in ascending order,
// including 1 and n.
func Divisors[T Integer](n T) ([]T, error) {
	if n < 1 {
		return nil, invalidNumber(n)
	}

	var low, high []T
	for i := T(1); i <= n/i; i++ {
		if n%i != 0 {
			continue
		}
		low = append(low, i)
		if j := n / i; j != i {
			high = append(high, j)
		}
		if !headroom(i, 1) {
			break
		}
	}

	for k := len(high) - 1; k >= 0; k-- {
		low = append(low, high[k])
	}
	return low, nil
}
