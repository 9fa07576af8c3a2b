package lessons

import (
	"go.uber.org/multierr"

	"memtour/pkg/binding"
	"memtour/pkg/object"
)

func init() {
	register(Lesson{
		Name:    "constness",
		Summary: "read-only bindings, pointers and methods enforced at build time",
		Run:     runConstness,
	})
}

const immutable = 10

func runConstness(env *Env) (err error) {
	p := &printer{w: env.Out}

	// ---------- 1. Constants ----------
	p.section("CONSTANTS")
	p.printf("immutable: %d\n", immutable)
	// immutable = 20 does not compile: cannot assign to immutable

	// ---------- 2. Read-only pointers ----------
	p.section("READ-ONLY POINTERS")
	a, b := 5, 6

	p1 := binding.ViewOf(&a) // pointee read-only
	p.printf("p1 views a: %d\n", p1.Get())
	// p1.Set(7) does not compile: View has no Set
	p1.Rebind(&b)
	p.printf("p1 rebound to b: %d\n", p1.Get())

	p2 := binding.FixedTo(&a) // binding fixed
	p2.Set(12)
	p.printf("p2 wrote a: %d\n", a)
	// p2.Rebind(&b) does not compile: Fixed has no Rebind.
	// p2 = binding.FixedTo(&b) does compile: it replaces the variable's value,
	// Go cannot freeze a local.

	p3 := binding.FrozenAt(&a) // neither
	p.printf("p3 reads a: %d\n", p3.Get())

	// ---------- 3. Read-only references ----------
	p.section("READ-ONLY REFERENCES")
	var ref binding.Reader[int] = binding.FrozenAt(&a)
	a = 9 // the object itself is not read-only
	p.printf("ref sees: %d\n", ref.Get())
	if err := binding.Print(env.Out, ref); err != nil {
		return err
	}

	// ---------- 4. Read-only objects ----------
	p.section("READ-ONLY OBJECTS")
	c, err := object.New(0, object.WithLogger(env.Log))
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, c.Close()) }()

	ro := c.ReadOnly()
	// ro.Increment() does not compile: object.Reader has no Increment
	p.printf("read-only counter: %d\n", ro.Get())

	return p.err
}
