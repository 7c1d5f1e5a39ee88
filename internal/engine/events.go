package engine

// EventType identifies what kind of mutation just completed.
type EventType int

const (
	EventPackCreated EventType = iota
	EventPackDeleted
	EventPackReset
	EventItemAdded
	EventItemEdited
	EventItemToggled
	EventItemDeleted
)

// Event describes a completed mutation. ItemID is empty for pack-level
// events.
type Event struct {
	Type   EventType
	PackID string
	ItemID string
}

// Listener receives change events after a mutation has been persisted.
// Listeners run synchronously on the mutating goroutine and must not call
// back into the engine.
type Listener func(Event)

// Subscribe registers a listener for all future change events.
func (e *Engine) Subscribe(l Listener) {
	e.listeners = append(e.listeners, l)
}

func (e *Engine) emit(ev Event) {
	for _, l := range e.listeners {
		l(ev)
	}
}
