// Package object provides Counter, a small value object with an explicit
// construction and destruction lifecycle.
package object

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	// ErrNegativeStart is returned when a Counter would start below zero.
	ErrNegativeStart = errors.New("object: counter start must be non-negative")
	// ErrDestroyed is returned when a destroyed Counter is used.
	ErrDestroyed = errors.New("object: counter already destroyed")
	// ErrOverflow is returned when an increment would wrap below zero.
	ErrOverflow = errors.New("object: counter overflow")
)

// Counter holds a non-negative integer. It is constructed by New or Copy and
// must be destroyed exactly once with Close.
type Counter struct {
	id        uuid.UUID
	origin    uuid.UUID // zero unless copied
	value     int
	destroyed bool

	observer Observer
	logger   *zap.Logger
}

// Reader is the read-only method set of a Counter. Only these methods are
// reachable through a read-only handle; Increment is rejected at build time.
type Reader interface {
	ID() uuid.UUID
	Get() int
}

// Option configures a Counter.
type Option func(*Counter)

// WithObserver delivers lifecycle events to o. A nil observer is ignored.
func WithObserver(o Observer) Option {
	return func(c *Counter) {
		if o != nil {
			c.observer = o
		}
	}
}

// WithLogger lets callers plug in their preferred logger. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Counter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New constructs a Counter starting at start.
func New(start int, opts ...Option) (*Counter, error) {
	if start < 0 {
		return nil, fmt.Errorf("new counter(%d): %w", start, ErrNegativeStart)
	}
	c := &Counter{
		id:       uuid.New(),
		value:    start,
		observer: nopObserver{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.emit(Constructed)
	return c, nil
}

// Copy constructs an independent Counter with the same value, observer and
// logger. The copy has its own identity and its own lifecycle.
func (c *Counter) Copy() (*Counter, error) {
	if c.destroyed {
		return nil, fmt.Errorf("copy %s: %w", c.id, ErrDestroyed)
	}
	cp := &Counter{
		id:       uuid.New(),
		origin:   c.id,
		value:    c.value,
		observer: c.observer,
		logger:   c.logger,
	}
	cp.emit(Copied)
	return cp, nil
}

// ID returns the instance identity.
func (c *Counter) ID() uuid.UUID { return c.id }

// Origin returns the identity of the Counter this one was copied from, or
// uuid.Nil.
func (c *Counter) Origin() uuid.UUID { return c.origin }

// Get returns the current value.
func (c *Counter) Get() int { return c.value }

// Increment adds one. Using a destroyed Counter returns ErrDestroyed; a
// Counter at math.MaxInt is left unchanged and returns ErrOverflow.
func (c *Counter) Increment() error {
	if c.destroyed {
		return fmt.Errorf("increment %s: %w", c.id, ErrDestroyed)
	}
	if c.value == math.MaxInt {
		return fmt.Errorf("increment %s: %w", c.id, ErrOverflow)
	}
	c.value++
	c.emit(Incremented)
	return nil
}

// ReadOnly returns the read-only view of c. The view is not a *Counter, so a
// type assertion cannot recover the mutating methods.
func (c *Counter) ReadOnly() Reader { return readOnly{c: c} }

type readOnly struct {
	c *Counter
}

func (r readOnly) ID() uuid.UUID { return r.c.id }

func (r readOnly) Get() int { return r.c.value }

// Destroyed reports whether Close has run.
func (c *Counter) Destroyed() bool { return c.destroyed }

// Close destroys the Counter. A second Close returns ErrDestroyed.
func (c *Counter) Close() error {
	if c.destroyed {
		return fmt.Errorf("close %s: %w", c.id, ErrDestroyed)
	}
	c.destroyed = true
	c.emit(Destroyed)
	return nil
}

func (c *Counter) emit(kind EventKind) {
	ev := Event{Kind: kind, ID: c.id, Origin: c.origin, Value: c.value}
	c.observer.OnEvent(ev)
	c.logger.Debug("counter "+kind.String(),
		zap.Stringer("id", c.id),
		zap.Int("value", c.value),
	)
}

// IncrementByValue works on a copy of c that is destroyed before returning.
// c itself is unchanged.
func IncrementByValue(c *Counter) (err error) {
	cp, err := c.Copy()
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, cp.Close()) }()
	return cp.Increment()
}

// IncrementByReference increments c itself.
func IncrementByReference(c *Counter) error {
	return c.Increment()
}
