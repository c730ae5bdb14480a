package ecs

// EventType identifies gameplay events raised during a tick.
type EventType string

const (
	EventJumped           EventType = "jumped"
	EventDoubleJumped     EventType = "double_jumped"
	EventLanded           EventType = "landed"
	EventDied             EventType = "died"
	EventBananaCollected  EventType = "banana_collected"
	EventPowerUpCollected EventType = "powerup_collected"
	EventEffectExpired    EventType = "effect_expired"
	EventObstacleHit      EventType = "obstacle_hit"
	EventHighScore        EventType = "high_score"
)

// Event is a generic ECS event payload.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

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
