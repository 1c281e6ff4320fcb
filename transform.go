package intrange

import "github.com/pkg/errors"

// Shift translates both bounds by n steps.
func (r Range) Shift(n int) Range {
	offset := n * r.step
	return New(r.lower+offset, r.upper+offset, r.step)
}

// Take moves the upper bound of r to lower+n*step, without going past the
// last element. Taking 0 elements yields the empty range.
func (r Range) Take(n int) (Range, error) {
	if n < 0 {
		return Range{}, errors.Wrapf(ErrInvalidArgument, "take: negative count %d", n)
	}
	if n == 0 {
		return Empty(), nil
	}
	if r.empty {
		return r, nil
	}

	if n >= r.Size() {
		last, _ := r.Last()
		return New(r.lower, last, r.step), nil
	}
	return New(r.lower, r.lower+n*r.step, r.step), nil
}

// Skip drops the first n elements of r. The result is empty when n is past
// the end of the range.
func (r Range) Skip(n int) Range {
	return New(r.lower+n*r.step, r.upper, r.step)
}

// Rev swaps the bounds and negates the step. When Upper is not reached by the
// stride, the reversed range starts at Upper and so enumerates other values.
func (r Range) Rev() Range {
	return New(r.upper, r.lower, -r.step)
}

// Scale multiplies the bounds and the step by factor.
// Scaling by 0 yields the single element range 0..0.
func (r Range) Scale(factor int) Range {
	return New(r.lower*factor, r.upper*factor, r.step*factor)
}

// Neg negates the bounds and the step.
func (r Range) Neg() Range {
	return New(-r.lower, -r.upper, -r.step)
}

// Add combines both ranges fieldwise. An empty operand is the identity.
// When the steps cancel out, the step is inferred from the new bounds.
func (r Range) Add(other Range) Range {
	if other.empty {
		return r
	}
	if r.empty {
		return other
	}
	return New(r.lower+other.lower, r.upper+other.upper, r.step+other.step)
}

// Sub subtracts other from r fieldwise. An empty operand is the identity.
// When the steps cancel out, the step is inferred from the new bounds.
func (r Range) Sub(other Range) Range {
	if other.empty {
		return r
	}
	if r.empty {
		return other
	}
	return New(r.lower-other.lower, r.upper-other.upper, r.step-other.step)
}
