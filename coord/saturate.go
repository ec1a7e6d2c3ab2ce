package coord

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// SaturatingAdd returns a+b clamped to the range of T.
func SaturatingAdd[T constraints.Signed](a, b T) T {
	s := a + b
	if b > 0 && s < a {
		return maxOf[T]()
	}
	if b < 0 && s > a {
		return minOf[T]()
	}

	return s
}

// SaturatingSub returns a-b clamped to the range of T.
func SaturatingSub[T constraints.Signed](a, b T) T {
	d := a - b
	if b < 0 && d < a {
		return maxOf[T]()
	}
	if b > 0 && d > a {
		return minOf[T]()
	}

	return d
}

// SaturatingMul returns a*b clamped to the range of T.
func SaturatingMul[T constraints.Signed](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	lo := minOf[T]()
	// Division below cannot detect these two cases: MinInt / -1 wraps back to MinInt.
	overflow := (a == -1 && b == lo) || (b == -1 && a == lo)
	p := a * b
	if overflow || p/b != a {
		if (a > 0) == (b > 0) {
			return maxOf[T]()
		}
		return lo
	}

	return p
}

// Abs returns |a|, saturating MinInt to MaxInt.
func Abs[T constraints.Signed](a T) T {
	if a >= 0 {
		return a
	}
	if a == minOf[T]() {
		return maxOf[T]()
	}

	return -a
}

func maxOf[T constraints.Signed]() T {
	var zero T
	bits := unsafe.Sizeof(zero) * 8
	// T(1) is not a constant for a type parameter, so the shift wraps at runtime.
	return T(1)<<(bits-1) - 1
}

func minOf[T constraints.Signed]() T {
	return -maxOf[T]() - 1
}
