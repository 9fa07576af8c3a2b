// Package storage models the three storage durations: automatic (Scope),
// dynamic (Arena, Box) and static (Statics, Globals).
package storage

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Scope owns cleanups whose lifetime is bound to a lexical block. Cleanups run
// in reverse order of acquisition when the scope closes:
//
//	scope := storage.NewScope("stack_example", logger)
//	defer scope.Close()
//
// Because Close is deferred it also runs on early return and panic unwind.
type Scope struct {
	name     string
	logger   *zap.Logger
	releases []release
	closed   bool
}

type release struct {
	name string
	fn   func() error
}

// NewScope opens a scope. A nil logger is replaced by a nop logger.
func NewScope(name string, logger *zap.Logger) *Scope {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scope{name: name, logger: logger.With(zap.String("scope", name))}
}

// Acquire registers fn to run when the scope closes. fn may be nil when the
// object needs no cleanup beyond going out of scope.
func (s *Scope) Acquire(name string, fn func() error) {
	if s.closed {
		panic("storage: acquire on closed scope " + s.name)
	}
	s.releases = append(s.releases, release{name: name, fn: fn})
	s.logger.Debug("acquired", zap.String("object", name), zap.Int("depth", len(s.releases)))
}

// Len returns the number of objects still owned by the scope.
func (s *Scope) Len() int { return len(s.releases) }

// Close releases everything in reverse order. Every cleanup runs even if an
// earlier one fails; errors are combined. Closing twice is a no-op.
func (s *Scope) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var err error
	for i := len(s.releases) - 1; i >= 0; i-- {
		r := s.releases[i]
		if r.fn != nil {
			err = multierr.Append(err, r.fn())
		}
		s.logger.Debug("released", zap.String("object", r.name))
	}
	s.releases = nil
	return err
}
