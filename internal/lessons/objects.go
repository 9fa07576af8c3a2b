package lessons

import (
	"go.uber.org/multierr"

	"memtour/pkg/object"
	"memtour/pkg/storage"
)

func init() {
	register(Lesson{
		Name:    "objects",
		Summary: "construction, destruction and copy vs reference for a simple counter",
		Run:     runObjects,
	})
}

func runObjects(env *Env) (err error) {
	p := &printer{w: env.Out}
	cfg := env.Config.Objects

	narrate := object.WithObserver(object.ObserverFunc(func(ev object.Event) {
		if ev.Kind != object.Incremented {
			p.printf("Counter %s\n", ev.Kind)
		}
	}))
	opts := []object.Option{narrate, object.WithLogger(env.Log)}

	p.section("STACK OBJECT")
	a, err := object.New(cfg.Start, opts...)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, a.Close()) // destroyed at the end of the lesson
		err = multierr.Append(err, p.err)
	}()

	if err := a.Increment(); err != nil {
		return err
	}
	p.printf("a value: %d\n", a.Get())

	p.section("PASSING OBJECTS")
	if err := object.IncrementByValue(a); err != nil {
		return err
	}
	p.printf("after by_value: %d\n", a.Get())

	if err := object.IncrementByReference(a); err != nil {
		return err
	}
	p.printf("after by_reference: %d\n", a.Get())

	p.section("HEAP OBJECT")
	arena := storage.NewArena[*object.Counter](1, storage.WithLogger(env.Log))
	heapCounter, err := object.New(cfg.HeapStart, opts...)
	if err != nil {
		return err
	}
	box, err := storage.NewBox(arena, heapCounter)
	if err != nil {
		return err
	}
	owned, err := box.Get()
	if err != nil {
		return err
	}
	if err := owned.Increment(); err != nil {
		return err
	}
	p.printf("heap counter: %d\n", owned.Get())

	// the owner destroys the object, then gives back its slot
	if err := owned.Close(); err != nil {
		return err
	}
	if err := box.Release(); err != nil {
		return err
	}
	if err := arena.Close(); err != nil {
		return err
	}

	p.section("END OF LESSON")
	return nil
}
