package ui

import "github.com/OpticalFlyer/hitkit/geom"

// EventKind identifies a control event.
type EventKind int

const (
	Entered EventKind = iota
	Exited
	LeftClicked
	RightClicked

	numEventKinds
)

func (k EventKind) String() string {
	switch k {
	case Entered:
		return "Entered"
	case Exited:
		return "Exited"
	case LeftClicked:
		return "LeftClicked"
	case RightClicked:
		return "RightClicked"
	default:
		return "Unknown"
	}
}

// Event is delivered to listeners synchronously from Button.Update.
type Event struct {
	Kind     EventKind
	ID       int        // id of the control that raised the event
	Position geom.Point // pointer position of the sample that caused it
}

// Listener receives control events. Listeners run on the caller's goroutine
// inside Update and must not block.
type Listener func(Event)

type listenerEntry struct {
	id uint32
	fn Listener
}

type listenerRegistry struct {
	byKind [numEventKinds][]listenerEntry
	nextID uint32
}

// Subscription removes a registered listener.
type Subscription struct {
	id   uint32
	reg  *listenerRegistry
	kind EventKind
}

// Remove unregisters the listener. It is safe to call from inside the
// listener itself and more than once.
func (s Subscription) Remove() {
	if s.reg == nil {
		return
	}
	s.reg.remove(s.kind, s.id)
}

func (r *listenerRegistry) add(kind EventKind, fn Listener) Subscription {
	if kind < 0 || kind >= numEventKinds || fn == nil {
		return Subscription{}
	}
	r.nextID++
	id := r.nextID
	r.byKind[kind] = append(r.byKind[kind], listenerEntry{id: id, fn: fn})
	return Subscription{id: id, reg: r, kind: kind}
}

// remove builds a fresh slice so a dispatch already iterating the old one is
// unaffected.
func (r *listenerRegistry) remove(kind EventKind, id uint32) {
	old := r.byKind[kind]
	for i := range old {
		if old[i].id != id {
			continue
		}
		next := make([]listenerEntry, 0, len(old)-1)
		next = append(next, old[:i]...)
		next = append(next, old[i+1:]...)
		r.byKind[kind] = next
		return
	}
}

func (r *listenerRegistry) dispatch(e Event) {
	for _, l := range r.byKind[e.Kind] {
		l.fn(e)
	}
}
