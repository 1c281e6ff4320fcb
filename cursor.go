package intrange

import (
	"io"
)

// A Cursor walks a range one element at a time.
// It is positioned on the first element when created.
type Cursor struct {
	rng Range

	position int
	size     int
}

// Cursor returns a new cursor positioned on the first element of r.
func (r Range) Cursor() *Cursor {
	return &Cursor{rng: r, size: r.Size()}
}

// Valid returns whether the cursor points at an element.
func (c *Cursor) Valid() bool {
	return c.position < c.size
}

// Current returns the element under the cursor. It must only be called while
// Valid returns true.
func (c *Cursor) Current() int {
	return c.rng.lower + c.position*c.rng.step
}

// Key returns the position of the current element, starting at 0.
func (c *Cursor) Key() int {
	return c.position
}

// Next moves the cursor to the following element.
func (c *Cursor) Next() {
	if c.Valid() {
		c.position++
	}
}

// Rewind moves the cursor back to the first element.
func (c *Cursor) Rewind() {
	c.position = 0
}

// Read copies the next elements into buf and advances past them.
// It returns io.EOF once every element was consumed.
func (c *Cursor) Read(buf []int) (int, error) {
	if !c.Valid() {
		return 0, io.EOF
	}

	remaining := c.size - c.position

	var lengthToRead int
	if len(buf) <= remaining {
		lengthToRead = len(buf)
	} else {
		lengthToRead = remaining
	}

	for i := 0; i < lengthToRead; i++ {
		buf[i] = c.Current()
		c.position++
	}

	return lengthToRead, nil
}
