package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// EventQueue is a FIFO command queue. Producers push at any point in a step;
// each consumer drains only the types it owns, so unrelated events keep their
// relative order for the next reader.
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

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// DrainTypes removes and returns, in push order, every event whose type is in types.
func (q *EventQueue) DrainTypes(types ...string) []Event {
	if q == nil || len(q.items) == 0 || len(types) == 0 {
		return nil
	}
	var out []Event
	kept := q.items[:0]
	for _, evt := range q.items {
		if matchesType(evt.Type, types) {
			out = append(out, evt)
			continue
		}
		kept = append(kept, evt)
	}
	for i := len(kept); i < len(q.items); i++ {
		q.items[i] = Event{}
	}
	q.items = kept
	return out
}

func matchesType(t string, types []string) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}
