package binding

import (
	"fmt"
	"io"
)

// Read-only qualification is expressed through method sets: a form that must
// not mutate simply has no method that could. Misuse is a build error.
//
//	View[T]    pointee read-only, binding can be rebound
//	Fixed[T]   binding fixed, pointee writable
//	Frozen[T]  neither
//
// A variable holding one of these can still be assigned a fresh value of the
// same type; that creates a new binding rather than rebinding the old one.

// Reader is the read-only reference form used for parameters.
type Reader[T any] interface {
	Get() T
}

// View reads through a pointer it may later be pointed elsewhere.
type View[T any] struct {
	p *T
}

// ViewOf returns a read-only view of p.
func ViewOf[T any](p *T) *View[T] { return &View[T]{p: p} }

// Get reads the current pointee.
func (v *View[T]) Get() T { return *v.p }

// Rebind points the view at other storage.
func (v *View[T]) Rebind(p *T) { v.p = p }

// Fixed always refers to the storage it was created with: it has no Rebind.
// The variable holding a Fixed is still an ordinary Go variable, so
// f = FixedTo(&other) compiles; it replaces the binding wholesale rather than
// rebinding it. Go has no way to freeze a local variable.
type Fixed[T any] struct {
	p *T
}

// FixedTo returns a binding to p that cannot be rebound.
func FixedTo[T any](p *T) Fixed[T] { return Fixed[T]{p: p} }

// Get reads the pointee.
func (f Fixed[T]) Get() T { return *f.p }

// Set writes the pointee.
func (f Fixed[T]) Set(v T) { *f.p = v }

// Frozen can neither be rebound nor write its pointee.
type Frozen[T any] struct {
	p *T
}

// FrozenAt returns a fully read-only binding to p.
func FrozenAt[T any](p *T) Frozen[T] { return Frozen[T]{p: p} }

// Get reads the pointee.
func (f Frozen[T]) Get() T { return *f.p }

// Print writes x through a read-only reference.
func Print[T any](w io.Writer, x Reader[T]) error {
	_, err := fmt.Fprintln(w, x.Get())
	return err
}
