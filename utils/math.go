package utils

import "golang.org/x/exp/constraints"

// Min returns the smaller value between two numbers.
func Min[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the bigger value between two numbers.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Clamp restricts x to the closed interval [lo, hi].
// If lo > hi the lower bound wins.
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	if x > hi {
		x = hi
	}
	if x < lo {
		x = lo
	}
	return x
}

// InRange reports whether lo <= x <= hi.
func InRange[T constraints.Ordered](x, lo, hi T) bool {
	return x >= lo && x <= hi
}
