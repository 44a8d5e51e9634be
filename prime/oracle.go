package prime

// IsPrime reports whether n is prime. It never fails: zero, one and
// negative values are simply not prime.
func IsPrime[T Integer](n T) bool {
	switch {
	case n <= 1:
		return false
	case n <= 3:
		return true
	case n%2 == 0 || n%3 == 0:
		return false
	}

	limit := MaxDivisor[T]()
	for d := T(5); d <= limit && d <= n/d; d += 6 {
		if n%d == 0 {
			return false
		}
		// d+2 may exceed √n; a hit there is still a proper divisor.
		if n%(d+2) == 0 {
			return false
		}
		if !headroom(d, 6) {
			break
		}
	}
	return true
}
