package storage

import "errors"

// ErrMoved is returned by a Box whose ownership was transferred or released.
var ErrMoved = errors.New("storage: box is empty")

// Box is the unique owner of one arena allocation. Ownership can be moved to
// another Box but never shared; the source is left empty.
type Box[T any] struct {
	arena  *Arena[T]
	handle Handle
}

// NewBox allocates v in a and returns its owner.
func NewBox[T any](a *Arena[T], v T) (*Box[T], error) {
	h, err := a.Alloc(v)
	if err != nil {
		return nil, err
	}
	return &Box[T]{arena: a, handle: h}, nil
}

// Empty reports whether the box no longer owns anything.
func (b *Box[T]) Empty() bool { return b.handle.IsNil() }

// Get returns a copy of the owned value.
func (b *Box[T]) Get() (T, error) {
	if b.Empty() {
		var zero T
		return zero, ErrMoved
	}
	return b.arena.Load(b.handle)
}

// Set replaces the owned value.
func (b *Box[T]) Set(v T) error {
	if b.Empty() {
		return ErrMoved
	}
	return b.arena.Store(b.handle, v)
}

// Move transfers ownership to a new Box.
func (b *Box[T]) Move() *Box[T] {
	moved := &Box[T]{arena: b.arena, handle: b.handle}
	b.handle = Handle{}
	return moved
}

// Release frees the owned value. Releasing an empty box returns ErrMoved.
func (b *Box[T]) Release() error {
	if b.Empty() {
		return ErrMoved
	}
	err := b.arena.Release(b.handle)
	b.handle = Handle{}
	return err
}
