package intrange

// Mutable holds a Range and transforms it in place.
// It is not safe for concurrent use.
type Mutable struct {
	r Range
}

// NewMutable returns a cell holding r.
func NewMutable(r Range) *Mutable {
	return &Mutable{r: r}
}

// Range returns the current value of the cell.
func (m *Mutable) Range() Range {
	return m.r
}

// Set replaces the value of the cell.
func (m *Mutable) Set(r Range) *Mutable {
	m.r = r
	return m
}

// Shift is the in-place version of Range.Shift.
func (m *Mutable) Shift(n int) *Mutable {
	return m.Set(m.r.Shift(n))
}

// Take is the in-place version of Range.Take.
// On error the cell is left unchanged.
func (m *Mutable) Take(n int) error {
	taken, err := m.r.Take(n)
	if err != nil {
		return err
	}
	m.r = taken
	return nil
}

// Skip is the in-place version of Range.Skip.
func (m *Mutable) Skip(n int) *Mutable {
	return m.Set(m.r.Skip(n))
}

// Rev is the in-place version of Range.Rev.
func (m *Mutable) Rev() *Mutable {
	return m.Set(m.r.Rev())
}

// Scale is the in-place version of Range.Scale.
func (m *Mutable) Scale(factor int) *Mutable {
	return m.Set(m.r.Scale(factor))
}

// Neg is the in-place version of Range.Neg.
func (m *Mutable) Neg() *Mutable {
	return m.Set(m.r.Neg())
}

// Add is the in-place version of Range.Add. Steps are combined the same way.
func (m *Mutable) Add(other Range) *Mutable {
	return m.Set(m.r.Add(other))
}

// Sub is the in-place version of Range.Sub. Steps are combined the same way.
func (m *Mutable) Sub(other Range) *Mutable {
	return m.Set(m.r.Sub(other))
}
