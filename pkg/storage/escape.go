package storage

// Go decides stack vs heap by escape analysis rather than by how a value is
// declared. Build with -gcflags=-m to see the decisions for these.

// StackValue keeps x on the stack; only the value leaves the frame.
func StackValue() int {
	x := 42
	p := &x // address used only in this function
	*p = 43
	return x
}

// HeapValue returns the address of a local, so x escapes to the heap and
// stays valid after the frame is gone.
func HeapValue(v int) *int {
	x := v
	return &x
}

// Sequence returns a closure that keeps n alive between calls: Go's way of
// giving one call site persistent state without a package-level variable.
func Sequence() func() int {
	n := 0
	return func() int {
		n++
		return n
	}
}
