package core

// EventKind identifies a discrete simulation occurrence that a presentation
// layer may map to sound, haptics or visuals.
type EventKind string

const (
	EventStarted      EventKind = "started"
	EventJumped       EventKind = "jumped"
	EventDoubleJumped EventKind = "double-jumped"
	EventLanded       EventKind = "landed"
	EventCollected    EventKind = "collected"
	EventDied         EventKind = "died"
)

// Event is a single occurrence emitted by the simulation.
// Each logical occurrence is delivered exactly once.
type Event struct {
	Kind EventKind
	Tick uint64 // Fixed step at which it happened
	ID   int    // Related entity id (collectible id for EventCollected), 0 otherwise
}

// EventQueue accumulates events during simulation steps until drained.
type EventQueue struct {
	events []Event
}

// Emit appends an event.
func (q *EventQueue) Emit(kind EventKind, tick uint64, id int) {
	q.events = append(q.events, Event{Kind: kind, Tick: tick, ID: id})
}

// Drain returns all pending events and empties the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}
