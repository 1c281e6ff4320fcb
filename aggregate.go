package intrange

// Sum returns the sum of every element, computed in closed form.
func (r Range) Sum() int {
	if r.empty {
		return 0
	}
	first, _ := r.First()
	last, _ := r.Last()
	return r.Size() * (first + last) / 2
}

// ToList returns every element in stride order.
func (r Range) ToList() []int {
	list := make([]int, 0, r.Size())
	for value := range r.All() {
		list = append(list, value)
	}
	return list
}

// Map applies f to every element of r, in stride order.
func Map[T any](r Range, f func(int) T) []T {
	out := make([]T, 0, r.Size())
	for value := range r.All() {
		out = append(out, f(value))
	}
	return out
}

// Reduce folds f over the elements of r from first to last.
func Reduce[T any](r Range, initial T, f func(T, int) T) T {
	acc := initial
	for value := range r.All() {
		acc = f(acc, value)
	}
	return acc
}
