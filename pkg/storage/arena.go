package storage

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	// ErrNilHandle is returned for the zero Handle, which never refers to storage.
	ErrNilHandle = errors.New("storage: nil handle")
	// ErrStaleHandle is returned when a handle outlived the slot it referred to:
	// use after release, or a second release.
	ErrStaleHandle = errors.New("storage: stale handle")
	// ErrExhausted is returned by Alloc when every slot is live.
	ErrExhausted = errors.New("storage: arena exhausted")
	// ErrLeaked is returned by Close when slots were never released.
	ErrLeaked = errors.New("storage: leaked allocations")
)

// Handle names one allocation in an Arena. It is only valid while the slot's
// generation matches; after Release every copy of the handle goes stale.
type Handle struct {
	index uint32
	gen   uint32
}

// IsNil reports whether h is the zero handle.
func (h Handle) IsNil() bool { return h.gen == 0 }

func (h Handle) String() string {
	if h.IsNil() {
		return "handle(nil)"
	}
	return fmt.Sprintf("handle(%d#%d)", h.index, h.gen)
}

type slot[T any] struct {
	value T
	gen   uint32 // odd = live, even = free
}

// Arena is a fixed-capacity slab for dynamically owned values. Ownership is
// explicit: whoever holds the handle must Release it. Unlike raw memory, a
// released or never-issued handle is detected rather than undefined.
type Arena[T any] struct {
	slots  []slot[T]
	free   []uint32
	live   int
	logger *zap.Logger
}

// ArenaOption configures an Arena.
type ArenaOption func(*arenaOptions)

type arenaOptions struct {
	logger *zap.Logger
}

// WithLogger lets callers plug in a logger for allocation events. A nil
// logger is ignored.
func WithLogger(logger *zap.Logger) ArenaOption {
	return func(o *arenaOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewArena creates an arena with room for capacity live values.
func NewArena[T any](capacity int, opts ...ArenaOption) *Arena[T] {
	o := arenaOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	a := &Arena[T]{
		slots:  make([]slot[T], capacity),
		free:   make([]uint32, 0, capacity),
		logger: o.logger,
	}
	// hand out low indexes first
	for i := capacity - 1; i >= 0; i-- {
		a.free = append(a.free, uint32(i))
	}
	return a
}

// Alloc stores v in a free slot and returns the owning handle.
func (a *Arena[T]) Alloc(v T) (Handle, error) {
	if len(a.free) == 0 {
		return Handle{}, fmt.Errorf("alloc of %d slots: %w", len(a.slots), ErrExhausted)
	}
	idx := a.free[len(a.free)-1]
	a.free = a.free[:len(a.free)-1]

	s := &a.slots[idx]
	s.gen++ // even -> odd
	s.value = v
	a.live++

	h := Handle{index: idx, gen: s.gen}
	a.logger.Debug("alloc", zap.Stringer("handle", h), zap.Int("live", a.live))
	return h, nil
}

func (a *Arena[T]) lookup(h Handle) (*slot[T], error) {
	if h.IsNil() {
		return nil, ErrNilHandle
	}
	if int(h.index) >= len(a.slots) {
		return nil, fmt.Errorf("%s: %w", h, ErrStaleHandle)
	}
	s := &a.slots[h.index]
	if s.gen != h.gen {
		return nil, fmt.Errorf("%s: %w", h, ErrStaleHandle)
	}
	return s, nil
}

// Load returns a copy of the value behind h.
func (a *Arena[T]) Load(h Handle) (T, error) {
	s, err := a.lookup(h)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.value, nil
}

// Store replaces the value behind h.
func (a *Arena[T]) Store(h Handle, v T) error {
	s, err := a.lookup(h)
	if err != nil {
		return err
	}
	s.value = v
	return nil
}

// Update mutates the value behind h in place. The pointer passed to fn must
// not be retained after fn returns.
func (a *Arena[T]) Update(h Handle, fn func(*T)) error {
	s, err := a.lookup(h)
	if err != nil {
		return err
	}
	fn(&s.value)
	return nil
}

// Release frees the slot behind h. Every copy of h is stale afterwards.
func (a *Arena[T]) Release(h Handle) error {
	s, err := a.lookup(h)
	if err != nil {
		return fmt.Errorf("release: %w", err)
	}
	var zero T
	s.value = zero
	s.gen++ // odd -> even
	a.free = append(a.free, h.index)
	a.live--

	a.logger.Debug("release", zap.Stringer("handle", h), zap.Int("live", a.live))
	return nil
}

// Live returns the number of allocated slots.
func (a *Arena[T]) Live() int { return a.live }

// Cap returns the arena capacity.
func (a *Arena[T]) Cap() int { return len(a.slots) }

// Close reports allocations that were never released. The arena remains usable.
func (a *Arena[T]) Close() error {
	if a.live == 0 {
		return nil
	}
	a.logger.Warn("arena closed with live allocations", zap.Int("leaked", a.live))
	return fmt.Errorf("%d allocation(s): %w", a.live, ErrLeaked)
}
