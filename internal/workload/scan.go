package workload

// Scan generates n inputs that walk [base, base+keySpace) in order and wrap
// around. A scan larger than a cache defeats recency-based eviction.
func Scan(n, keySpace int, base int64) []int64 {
	nums := make([]int64, n)
	for i := range n {
		nums[i] = base + int64(i%keySpace)
	}
	return nums
}

// Mixed interleaves a Zipf stream with a scan: every scanEvery-th input is
// taken from the scan instead.
func Mixed(n, keySpace int, base int64, theta float64, seed uint64, scanEvery int) []int64 {
	nums := Zipf(n, keySpace, base, theta, seed)
	if scanEvery <= 0 {
		return nums
	}
	// Scan inputs sit above the Zipf key space so they never collide with hot keys.
	scanBase := base + int64(keySpace)
	j := 0
	for i := scanEvery - 1; i < n; i += scanEvery {
		nums[i] = scanBase + int64(j%keySpace)
		j++
	}
	return nums
}
