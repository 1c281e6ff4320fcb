// Package numtheory holds the small amount of integer number theory needed to
// reason about arithmetic progressions without enumerating them.
package numtheory

import "math/bits"

// Sign returns -1, 0 or 1 depending on the sign of x.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ExtendedGCD returns gcd(a, b) along with Bézout coefficients u and v such
// that a*u + b*v == gcd. The gcd is never negative.
func ExtendedGCD(a, b int) (gcd, u, v int) {
	oldR, r := a, b
	oldS, s := 1, 0
	oldT, t := 0, 1

	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}

	if Sign(oldR) < 0 {
		return -oldR, -oldS, -oldT
	}
	return oldR, oldS, oldT
}

// FloorMod returns a modulo m in the range [0, m). m must be positive.
func FloorMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// MulMod returns a*b mod m for a and b in [0, m) and a positive m.
// The product is computed on 128 bits so it cannot overflow.
func MulMod(a, b, m int) int {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return int(bits.Rem64(hi, lo, uint64(m)))
}
