package intrange

import (
	"github.com/menmos/intrange-go/numtheory"
	"github.com/pkg/errors"
)

// Range represents an end-inclusive arithmetic progression of integers.
//
// The progression starts at Lower and advances by Step as long as it does not
// go past Upper in the direction of Step. Ranges are values: every transform
// returns a new Range and leaves the receiver untouched. See Mutable for the
// in-place variants.
//
// The zero Range is not usable, build ranges with New, Empty or one of the
// parsing functions.
type Range struct {
	lower int
	upper int
	step  int

	// Cached at construction time.
	empty bool
}

// New returns the range lower..upper advancing by step.
// A step of 0 is inferred as 1 when lower <= upper and -1 otherwise.
func New(lower int, upper int, step int) Range {
	if step == 0 {
		if lower <= upper {
			step = 1
		} else {
			step = -1
		}
	}

	return Range{
		lower: lower,
		upper: upper,
		step:  step,
		empty: (lower > upper && step > 0) || (lower < upper && step < 0),
	}
}

// Empty returns the canonical empty range.
func Empty() Range {
	return New(0, -1, 1)
}

// FromPacked builds a range from a [lower, upper, step] triple.
func FromPacked(packed []int) (Range, error) {
	if len(packed) != 3 {
		return Range{}, errors.Wrapf(ErrInvalidArgument, "packed range must hold 3 integers, got %d", len(packed))
	}

	if packed[2] == 0 {
		return Range{}, errors.Wrap(ErrInvalidArgument, "packed range has a zero step")
	}

	return New(packed[0], packed[1], packed[2]), nil
}

// Lower returns the lower bound the range was built with.
func (r Range) Lower() int { return r.lower }

// Upper returns the upper bound the range was built with. It is not
// necessarily part of the progression, see Last.
func (r Range) Upper() int { return r.upper }

// Step returns the signed stride between two consecutive elements.
func (r Range) Step() int { return r.step }

// Unpack returns the [lower, upper, step] triple.
func (r Range) Unpack() [3]int {
	return [3]int{r.lower, r.upper, r.step}
}

// Equal reports whether both ranges were built from the same triple.
// Two ranges enumerating the same values with different bounds are not equal.
func (r Range) Equal(other Range) bool {
	return r.lower == other.lower && r.upper == other.upper && r.step == other.step
}

// IsEmpty returns whether the range enumerates no value at all.
func (r Range) IsEmpty() bool {
	return r.empty
}

// Size returns the number of elements in the range.
func (r Range) Size() int {
	if r.empty {
		return 0
	}
	return numtheory.Abs((r.upper-r.lower)/r.step) + 1
}

// IsSingle returns whether the range enumerates exactly one value.
func (r Range) IsSingle() bool {
	if r.empty {
		return false
	}
	last, _ := r.Last()
	return r.upper == r.lower || r.lower == last
}

// First returns the first enumerated element.
func (r Range) First() (int, bool) {
	if r.empty {
		return 0, false
	}
	return r.lower, true
}

// Last returns the last enumerated element, which differs from Upper when the
// stride does not land on it exactly.
func (r Range) Last() (int, bool) {
	if r.empty {
		return 0, false
	}
	return r.lower + (r.Size()-1)*r.step, true
}

// Min returns the smallest enumerated element.
func (r Range) Min() (int, bool) {
	first, ok := r.First()
	if !ok {
		return 0, false
	}
	last, _ := r.Last()
	if last < first {
		return last, true
	}
	return first, true
}

// Max returns the largest enumerated element.
func (r Range) Max() (int, bool) {
	first, ok := r.First()
	if !ok {
		return 0, false
	}
	last, _ := r.Last()
	if last > first {
		return last, true
	}
	return first, true
}

// Nth returns the n-th element (starting at 0).
// The boolean is false when the range holds n elements or fewer.
func (r Range) Nth(n int) (int, bool, error) {
	if n < 0 {
		return 0, false, errors.Wrapf(ErrInvalidArgument, "nth: negative index %d", n)
	}

	if r.empty || n >= r.Size() {
		return 0, false, nil
	}
	return r.lower + r.step*n, true, nil
}

// inBounds returns whether value lies between lower and upper, whatever the
// direction of the range.
func (r Range) inBounds(value int) bool {
	if r.step > 0 {
		return value >= r.lower && value <= r.upper
	}
	return value <= r.lower && value >= r.upper
}

// Contains returns whether value is one of the enumerated elements.
func (r Range) Contains(value int) bool {
	if r.empty {
		return false
	}

	if numtheory.Abs(r.step) == 1 {
		return r.inBounds(value)
	}

	return r.inBounds(value) && (value-r.lower)%r.step == 0
}

// AnyEven returns whether at least one element is even.
func (r Range) AnyEven() bool {
	return r.anyParity(0)
}

// AnyOdd returns whether at least one element is odd.
func (r Range) AnyOdd() bool {
	return r.anyParity(1)
}

// AllEven returns whether the range is non-empty and every element is even.
func (r Range) AllEven() bool {
	return r.allParity(0)
}

// AllOdd returns whether the range is non-empty and every element is odd.
func (r Range) AllOdd() bool {
	return r.allParity(1)
}

func (r Range) anyParity(parity int) bool {
	if r.empty {
		return false
	}
	if r.IsSingle() {
		return isParity(r.lower, parity)
	}
	// An odd stride alternates parity, so both show up.
	return isParity(r.lower, parity) || !isParity(r.step, 0)
}

func (r Range) allParity(parity int) bool {
	if r.empty {
		return false
	}
	if r.IsSingle() {
		return isParity(r.lower, parity)
	}
	return isParity(r.lower, parity) && isParity(r.step, 0)
}

func isParity(value int, parity int) bool {
	return numtheory.FloorMod(value, 2) == parity
}
