package lessons

import (
	"go.uber.org/zap"

	"memtour/pkg/binding"
)

func init() {
	register(Lesson{
		Name:    "passing",
		Summary: "value vs reference vs pointer: which changes persist outside the call",
		Run:     runPassing,
	})
}

func runPassing(env *Env) error {
	p := &printer{w: env.Out}
	cfg := env.Config.Passing

	a, b, c := cfg.A, cfg.B, cfg.C

	binding.SetByValue(a, cfg.ValueTarget)                         // x is a copy of a
	binding.SetByReference(binding.RefTo(&b), cfg.ReferenceTarget) // x aliases b
	binding.SetByPointer(&c, cfg.PointerTarget)                    // x points to c

	env.Log.Debug("passing done", zap.Int("a", a), zap.Int("b", b), zap.Int("c", c))

	p.printf("a (by value): %d\n", a)
	p.printf("b (by reference): %d\n", b)
	p.printf("c (by pointer): %d\n", c)

	if !binding.SetByPointer(nil, cfg.PointerTarget) {
		p.printf("nil pointer: checked, nothing written\n")
	}
	return p.err
}
