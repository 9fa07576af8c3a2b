// Package binding models the three ways a name can relate to storage:
// a value copy, a reference (alias that is never nil) and a pointer (address
// that may be nil).
package binding

// ---------- 1. Value binding ----------

// SetByValue receives its own copy of x. The assignment is local to the call
// and the caller's storage is never touched.
func SetByValue(x, v int) {
	x = v
	_ = x
}

// ---------- 2. Reference binding ----------

// Ref is an alias to existing storage. Unlike a plain pointer it is never
// nil: RefTo refuses to bind to nothing.
type Ref[T any] struct {
	p *T
}

// RefTo binds a reference to the storage p points to. It panics on nil.
func RefTo[T any](p *T) Ref[T] {
	if p == nil {
		panic("binding: reference to nil storage")
	}
	return Ref[T]{p: p}
}

// Get reads the referenced storage.
func (r Ref[T]) Get() T { return *r.p }

// Set writes the referenced storage; the caller sees it immediately.
func (r Ref[T]) Set(v T) { *r.p = v }

// Same reports whether both references alias the same storage.
func (r Ref[T]) Same(o Ref[T]) bool { return r.p == o.p }

// SetByReference writes v through the alias.
func SetByReference(x Ref[int], v int) {
	x.Set(v)
}

// ---------- 3. Address binding ----------

// SetByPointer writes v through x if it is not nil and reports whether it did.
func SetByPointer(x *int, v int) bool {
	if x == nil {
		return false
	}
	*x = v
	return true
}

// ---------- 4. All three at once ----------

// Targets are the values each mutator attempts to store.
type Targets struct {
	Value, Reference, Pointer int
}

// Outcome is what the caller observes after the three calls.
type Outcome struct {
	A, B, C int
}

// Pass hands a to SetByValue, b to SetByReference and c to SetByPointer and
// returns the caller's view afterwards.
func Pass(a, b, c int, t Targets) Outcome {
	SetByValue(a, t.Value)
	SetByReference(RefTo(&b), t.Reference)
	SetByPointer(&c, t.Pointer)
	return Outcome{A: a, B: b, C: c}
}
