package prime

import "unsafe"

// Integer is the set of fixed-width integer types the package operates on.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// MaxValue returns the largest value representable by T.
func MaxValue[T Integer]() T {
	var zero T
	if ^zero < 0 {
		bits := unsafe.Sizeof(zero) * 8
		return T(1)<<(bits-1) - 1
	}
	return ^zero
}

// maxDivisors holds ⌊√max⌋ for 1, 2, 4 and 8 byte integers, signed then
// unsigned.
var maxDivisors = [4][2]uint64{
	{11, 15},
	{181, 255},
	{46340, 65535},
	{3037000499, 4294967295},
}

// MaxDivisor returns ⌊√MaxValue[T]⌋, the largest trial divisor any value of
// type T can require.
func MaxDivisor[T Integer]() T {
	var zero T
	var roots [2]uint64
	switch unsafe.Sizeof(zero) {
	case 1:
		roots = maxDivisors[0]
	case 2:
		roots = maxDivisors[1]
	case 4:
		roots = maxDivisors[2]
	default:
		roots = maxDivisors[3]
	}
	if ^zero < 0 {
		return T(roots[0])
	}
	return T(roots[1])
}

// headroom reports whether n+step stays within T.
func headroom[T Integer](n, step T) bool {
	return n <= MaxValue[T]()-step
}
