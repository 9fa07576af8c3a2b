package lessons

import (
	"errors"

	"memtour/pkg/pointers"
)

func init() {
	register(Lesson{
		Name:    "pointers",
		Summary: "pointer variables vs pointees: address-of, dereference, rebinding and aliasing",
		Run:     runPointers,
	})
}

func runPointers(env *Env) error {
	p := &printer{w: env.Out}
	cfg := env.Config.Pointers

	// ---------- 1. Basic pointer ----------
	value := cfg.Value
	ptr := &value
	p.printf("value: %d at %p\n", value, &value)
	p.printf("ptr stores: %p\n", ptr)
	p.printf("*ptr dereferences to: %d\n", *ptr)

	// ---------- 2. Dereferencing modifies the pointee ----------
	*ptr = 100
	p.printf("After *ptr = 100, value is: %d\n", value)

	// ---------- 3. Rebinding ----------
	x, y := 10, 20
	px := &x
	p.printf("\nInitially p points to x: %d\n", *px)
	px = &y
	p.printf("After p = &y, *p is: %d (y's value)\n", *px)
	pointers.Swap(&x, &y)
	p.printf("After swapping through pointers: x=%d y=%d\n", x, y)

	// ---------- 4. Aliasing ----------
	num := 5
	p1, p2 := &num, &num
	*p1 = 99
	p.printf("\n*p1 changed num to: %d\n", num)
	p.printf("*p2 sees: %d (same object: %t)\n", *p2, pointers.Aliases(p1, p2))

	// ---------- 5. Nil pointer ----------
	var nilPtr *int
	if nilPtr != nil {
		*nilPtr = 5
	}
	p.printf("\nnil pointer deref avoided, fallback: %d\n", pointers.Deref(nilPtr, -1))

	// ---------- 6. Indexed access ----------
	arr := pointers.Begin(cfg.Values)
	p.printf("\n")
	for i := range cfg.Values {
		at, err := arr.Add(i)
		if err != nil {
			return err
		}
		v, err := at.Deref()
		if err != nil {
			return err
		}
		p.printf("arr[%d]: %d\n", i, v)
	}
	if _, err := arr.Index(len(cfg.Values)); errors.Is(err, pointers.ErrOutOfRange) {
		p.printf("arr[%d]: rejected (%v)\n", len(cfg.Values), err)
	}
	tail, err := arr.Add(1)
	if err != nil {
		tail = arr
	}
	rest := tail.Remaining()
	p.printf("from offset %d: %v (len %d, cap %d)\n", tail.Pos(), rest, len(rest), cap(rest))

	// ---------- 7. Pointer to a block-local ----------
	outlived := pointers.Outlive(777)
	p.printf("\nblock-local outlived its block: %d (moved to heap, not dangling)\n", *outlived)

	return p.err
}
