package intrange

import (
	"github.com/menmos/intrange-go/numtheory"
)

// Includes returns whether every element of other is also an element of r.
func (r Range) Includes(other Range) bool {
	if r.empty {
		return other.empty
	}
	if other.empty {
		return true
	}

	otherFirst, _ := other.First()
	if other.IsSingle() {
		return r.Contains(otherFirst)
	}

	otherLast, _ := other.Last()
	if numtheory.Abs(r.step) == 1 {
		return r.Contains(otherFirst) && r.Contains(otherLast)
	}

	if other.step%r.step != 0 {
		return false
	}
	if !r.Contains(otherFirst) {
		return false
	}
	if numtheory.Abs(r.step) == numtheory.Abs(other.step) {
		return r.Contains(otherLast)
	}

	return numtheory.Abs(r.step) < numtheory.Abs(other.step) && other.Size() <= r.Size()
}

// bag is an ascending restatement of a range: lower, lower+stride, ... upper,
// with a positive stride and an upper bound that is exactly reached.
type bag struct {
	lower  int
	upper  int
	stride int
}

func (r Range) normalize() bag {
	lo, _ := r.Min()
	hi, _ := r.Max()
	return bag{lower: lo, upper: hi, stride: numtheory.Abs(r.step)}
}

// Intersects returns whether r and other share at least one element.
func (r Range) Intersects(other Range) bool {
	if r.empty || other.empty {
		return false
	}

	a, b := r.normalize(), other.normalize()
	if a.lower > b.upper || b.lower > a.upper {
		return false
	}
	if a.stride == 1 && b.stride == 1 {
		return true
	}

	// Look for x, y >= 0 with a.lower + x*a.stride == b.lower + y*b.stride.
	gcd, u, _ := numtheory.ExtendedGCD(a.stride, b.stride)
	diff := b.lower - a.lower
	if diff%gcd != 0 {
		return false
	}

	// x is determined modulo m; take the smallest non-negative one.
	m := b.stride / gcd
	x := numtheory.MulMod(numtheory.FloorMod(u, m), numtheory.FloorMod(diff/gcd, m), m)
	if x > (a.upper-a.lower)/a.stride {
		return false
	}
	common := a.lower + x*a.stride

	// Solutions repeat every lcm(a.stride, b.stride); climb until y >= 0 too.
	// Every product below is bounded by a.upper-common, so none overflows.
	if common < b.lower {
		room := a.upper - common
		if m > room/a.stride {
			return false
		}
		lcm := a.stride * m
		steps := (b.lower-common-1)/lcm + 1
		if steps > room/lcm {
			return false
		}
		common += steps * lcm
	}

	return common <= a.upper && common <= b.upper
}
