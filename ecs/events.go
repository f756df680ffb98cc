package ecs

// Event is a world event published by a system during a frame. Events
// live for one frame: anything not drained before the frame ends is
// dropped.
type Event struct {
	Type string
	Data any
}

// EventActionDiff carries an action.Diff emitted for a press or
// release transition observed this frame.
const EventActionDiff = "action_diff"

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all pending events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
