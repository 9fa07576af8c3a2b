// Package pointers covers pointer mechanics: address-of, dereference,
// rebinding, aliasing and indexed access over contiguous storage.
package pointers

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a cursor would leave its backing slice.
var ErrOutOfRange = errors.New("pointers: out of range")

// Cursor is pointer arithmetic over a slice with the bounds kept: moving or
// dereferencing outside the backing storage is an error instead of a read of
// whatever memory happens to be there.
type Cursor[T any] struct {
	s   []T
	pos int
}

// Begin returns a cursor at the first element of s.
func Begin[T any](s []T) Cursor[T] {
	return Cursor[T]{s: s}
}

// Pos returns the current offset.
func (c Cursor[T]) Pos() int { return c.pos }

// Add returns a cursor n elements further on. One past the end is allowed, as
// an end marker that cannot be dereferenced.
func (c Cursor[T]) Add(n int) (Cursor[T], error) {
	next := c.pos + n
	if next < 0 || next > len(c.s) {
		return c, fmt.Errorf("offset %d of %d: %w", next, len(c.s), ErrOutOfRange)
	}
	return Cursor[T]{s: c.s, pos: next}, nil
}

// Deref reads the element under the cursor.
func (c Cursor[T]) Deref() (T, error) {
	return c.Index(0)
}

// Index reads the element i places after the cursor, like p[i].
func (c Cursor[T]) Index(i int) (T, error) {
	at := c.pos + i
	if at < 0 || at >= len(c.s) {
		var zero T
		return zero, fmt.Errorf("index %d of %d: %w", at, len(c.s), ErrOutOfRange)
	}
	return c.s[at], nil
}

// Set writes the element under the cursor. The write is visible through the
// original slice and any other cursor over it.
func (c Cursor[T]) Set(v T) error {
	if c.pos >= len(c.s) {
		return fmt.Errorf("index %d of %d: %w", c.pos, len(c.s), ErrOutOfRange)
	}
	c.s[c.pos] = v
	return nil
}

// Remaining returns the elements from the cursor to the end, with capacity
// clipped so appends cannot bleed into storage the cursor does not own.
func (c Cursor[T]) Remaining() []T {
	return c.s[c.pos:len(c.s):len(c.s)]
}
