package lessons

import (
	"errors"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"memtour/pkg/storage"
)

func init() {
	register(Lesson{
		Name:    "storage",
		Summary: "automatic, dynamic and static lifetimes: where objects live and who ends them",
		Run:     runStorage,
	})
}

func runStorage(env *Env) error {
	p := &printer{w: env.Out}
	cfg := env.Config.Storage

	before := storage.ReadHeap()

	p.section("STACK STORAGE")
	if err := stackExample(p, env.Log); err != nil {
		return err
	}

	p.section("HEAP STORAGE")
	heap := storage.NewArena[int](cfg.ArenaCapacity, storage.WithLogger(env.Log))
	h, err := heapExample(p, heap)
	if err != nil {
		return err
	}
	v, err := heap.Load(h)
	if err != nil {
		return err
	}
	p.printf("  handle %s holds: %d\n", h, v)
	if err := heap.Release(h); err != nil { // explicit release by the owner
		return err
	}
	p.printf("  escaped local: %d\n", *storage.HeapValue(v))

	p.section("UNIQUE OWNERSHIP")
	owner, err := storage.NewBox(heap, 5)
	if err != nil {
		return err
	}
	moved := owner.Move() // ownership transfers, nothing is copied or shared
	if _, err := owner.Get(); errors.Is(err, storage.ErrMoved) {
		p.printf("  source after move: empty (%v)\n", err)
	}
	mv, err := moved.Get()
	if err != nil {
		return err
	}
	p.printf("  new owner holds: %d\n", mv)
	if err := moved.Release(); err != nil {
		return err
	}
	p.printf("  live after release: %d\n", heap.Live())

	p.section("STATIC STORAGE")
	globals := storage.Globals{GlobalVar: cfg.GlobalVar, FileStatic: cfg.FileStatic}
	p.printf("  global_var: %d\n", globals.GlobalVar)
	p.printf("  file_static: %d\n", globals.FileStatic)

	statics := storage.NewStatics(env.Log)
	for i := 0; i < cfg.StaticCalls; i++ {
		staticExample(p, statics)
	}
	next := storage.Sequence()
	for i := 0; i < cfg.StaticCalls; i++ {
		p.printf("  closure sequence: %d\n", next())
	}
	for site, n := range statics.Close() {
		env.Log.Debug("static teardown", zap.String("site", site), zap.Int("value", n))
	}

	p.section("ADDRESS COMPARISON")
	var stack1, stack2 int
	heap1 := storage.HeapValue(1)
	p.printf("  stack1: %p\n", &stack1)
	p.printf("  stack2: %p\n", &stack2)
	p.printf("  heap1:  %p\n", heap1)
	p.printf("  globals (run-lifetime context): %p\n", &globals)
	p.printf("  (Go places each of these by escape analysis, not by declaration)\n")

	p.section("DANGEROUS PATTERNS")
	dangling, err := func() (temp storage.Handle, err error) {
		scope := storage.NewScope("temp_block", env.Log)
		defer func() { err = multierr.Append(err, scope.Close()) }()

		temp, err = heap.Alloc(777)
		if err != nil {
			return storage.Handle{}, err
		}
		scope.Acquire("temp", func() error { return heap.Release(temp) })
		return temp, nil
	}()
	if err != nil {
		return err
	}
	if _, err := heap.Load(dangling); errors.Is(err, storage.ErrStaleHandle) {
		p.printf("  dangling access rejected: %v\n", err)
	}

	if _, err := heap.Alloc(888); err != nil { // never released
		return err
	}
	if err := heap.Close(); errors.Is(err, storage.ErrLeaked) {
		p.printf("  leak detected: %v\n", err)
	}

	after := storage.ReadHeap()
	if err := before.Fprint(env.Out, "start"); err != nil {
		return err
	}
	if err := after.Fprint(env.Out, "end"); err != nil {
		return err
	}
	return p.err
}

// stackExample owns local and array for exactly the duration of the call.
func stackExample(p *printer, log *zap.Logger) (err error) {
	scope := storage.NewScope("stack_example", log)
	defer func() { err = multierr.Append(err, scope.Close()) }()

	local := 10
	array := [3]int{1, 2, 3}
	scope.Acquire("local", nil)
	scope.Acquire("array", nil)

	p.printf("  local: %d\n", local)
	p.printf("  array[0]: %d\n", array[0])
	p.printf("  stack value (address never leaves the frame): %d\n", storage.StackValue())
	return nil
}

// heapExample allocates a value that outlives the call; the caller owns it.
func heapExample(p *printer, heap *storage.Arena[int]) (storage.Handle, error) {
	h, err := heap.Alloc(99)
	if err != nil {
		return storage.Handle{}, err
	}
	v, err := heap.Load(h)
	if err != nil {
		return storage.Handle{}, err
	}
	p.printf("  *p (heap): %d\n", v)
	return h, nil
}

func staticExample(p *printer, statics *storage.Statics) {
	p.printf("  function_static: %d\n", statics.Site("static_example").Next())
}
