package pointers

// Aliases reports whether a and b refer to the same storage.
func Aliases[T any](a, b *T) bool {
	return a != nil && a == b
}

// Swap exchanges the values a and b point to.
func Swap[T any](a, b *T) {
	*a, *b = *b, *a
}

// Deref returns *p, or def when p is nil.
func Deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// Outlive returns the address of a variable declared in an inner block. In
// languages with scope-bound stack storage this pointer would dangle; Go moves
// temp to the heap because its address leaves the block, so it stays valid.
func Outlive(v int) *int {
	var p *int
	{
		temp := v
		p = &temp
	}
	return p
}
