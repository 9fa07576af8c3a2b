// Package lessons contains the runnable teaching programs. Each lesson is
// independent: it reads its seed values from the config, prints to Out and
// logs to Log.
package lessons

import (
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"

	"memtour/internal/config"
)

// Env is what a lesson runs against.
type Env struct {
	Out    io.Writer
	Log    *zap.Logger
	Config *config.Config
}

// Lesson is one standalone program.
type Lesson struct {
	Name    string
	Summary string
	Run     func(env *Env) error
}

var registry = map[string]Lesson{}

func register(l Lesson) { registry[l.Name] = l }

// All returns every lesson sorted by name.
func All() []Lesson {
	out := make([]Lesson, 0, len(registry))
	for _, l := range registry {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the lesson called name.
func Lookup(name string) (Lesson, bool) {
	l, ok := registry[name]
	return l, ok
}

// Run executes l, filling in a nop logger and default config when missing.
func Run(l Lesson, env *Env) error {
	if env.Log == nil {
		env.Log = zap.NewNop()
	}
	if env.Config == nil {
		env.Config = config.DefaultConfig()
	}
	env.Log.Debug("lesson started", zap.String("lesson", l.Name))
	if err := l.Run(env); err != nil {
		return fmt.Errorf("lesson %s: %w", l.Name, err)
	}
	env.Log.Debug("lesson finished", zap.String("lesson", l.Name))
	return nil
}

// printer remembers the first write error so lessons can print freely and
// check once at the end.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) section(title string) {
	p.printf("\n===== %s =====\n", title)
}
