package intrange

import "iter"

// All returns a lazy sequence over the elements of r, in stride order.
// The sequence can be ranged over any number of times.
func (r Range) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, size := 0, r.Size(); i < size; i++ {
			if !yield(r.lower + i*r.step) {
				return
			}
		}
	}
}

// Enumerate is like All but also yields the position of every element.
func (r Range) Enumerate() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i, size := 0, r.Size(); i < size; i++ {
			if !yield(i, r.lower+i*r.step) {
				return
			}
		}
	}
}
