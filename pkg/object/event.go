package object

import "github.com/google/uuid"

// EventKind identifies a lifecycle transition.
type EventKind int

const (
	Constructed EventKind = iota + 1
	Copied
	Incremented
	Destroyed
)

func (k EventKind) String() string {
	switch k {
	case Constructed:
		return "constructed"
	case Copied:
		return "copied"
	case Incremented:
		return "incremented"
	case Destroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Event is one lifecycle transition of a Counter.
type Event struct {
	Kind   EventKind
	ID     uuid.UUID
	Origin uuid.UUID
	Value  int
}

// Observer receives lifecycle events.
type Observer interface {
	OnEvent(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// OnEvent calls f(ev).
func (f ObserverFunc) OnEvent(ev Event) { f(ev) }

type nopObserver struct{}

func (nopObserver) OnEvent(Event) {}

// Recorder keeps every event in order.
type Recorder struct {
	Events []Event
}

// OnEvent appends ev.
func (r *Recorder) OnEvent(ev Event) { r.Events = append(r.Events, ev) }

// Kinds returns the recorded event kinds, optionally restricted to one instance.
func (r *Recorder) Kinds(id ...uuid.UUID) []EventKind {
	kinds := make([]EventKind, 0, len(r.Events))
	for _, ev := range r.Events {
		if len(id) > 0 && ev.ID != id[0] {
			continue
		}
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}

// Count returns how many events of kind were recorded.
func (r *Recorder) Count(kind EventKind) int {
	n := 0
	for _, ev := range r.Events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
