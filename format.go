package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tstromberg/primemark/prime"
)

// simpleArray renders a list as "[2, 2, 3]".
func simpleArray[T prime.Integer](xs []T) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// factorizationString renders a factor list in exponent form, such as
// "2^2 × 3^3 × 5". The empty product is "1".
func factorizationString[T prime.Integer](factors []T) string {
	terms := prime.Exponents(factors)
	if len(terms) == 0 {
		return "1"
	}
	parts := make([]string, len(terms))
	for i, t := range terms {
		if t.Power == 1 {
			parts[i] = fmt.Sprint(t.Prime)
			continue
		}
		parts[i] = fmt.Sprintf("%v^%d", t.Prime, t.Power)
	}
	return strings.Join(parts, " × ")
}

// parseInts parses every argument as a base-10 int64.
func parseInts(args []string) ([]int64, error) {
	nums := make([]int64, len(args))
	for i, a := range args {
		n, err := strconv.ParseInt(strings.TrimSpace(a), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", a, err)
		}
		nums[i] = n
	}
	return nums, nil
}

// parseIntList parses a comma-separated string of integers with optional multiplier.
func parseIntList(input string, multiplier int) ([]int, error) {
	var result []int
	for s := range strings.SplitSeq(input, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", s, err)
		}
		result = append(result, v*multiplier)
	}
	return result, nil
}

// parsePositiveList is parseIntList that rejects values below 1.
func parsePositiveList(input string, multiplier int) ([]int, error) {
	values, err := parseIntList(input, multiplier)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		if v < 1 {
			return nil, fmt.Errorf("%d must be at least 1", v/multiplier)
		}
	}
	return values, nil
}
