package cognitive

import "time"

// DefaultEventCap bounds the in-memory event feed. The cap is a display
// concern, not a correctness invariant; consumers may trim further.
const DefaultEventCap = 50

// Event is one entry in the recent-activity feed.
type Event struct {
	State     State
	Score     int
	Timestamp time.Time
}

// EventLog is a bounded append-only feed of recent classifications.
type EventLog struct {
	events []Event
	cap    int
}

// NewEventLog creates a log that retains at most cap events (DefaultEventCap
// when cap <= 0).
func NewEventLog(cap int) *EventLog {
	if cap <= 0 {
		cap = DefaultEventCap
	}
	return &EventLog{cap: cap}
}

// Append records an event, dropping the oldest entries beyond the cap.
func (l *EventLog) Append(e Event) {
	l.events = append(l.events, e)
	if len(l.events) > l.cap {
		l.events = l.events[len(l.events)-l.cap:]
	}
}

// Recent returns up to n events, newest last. n <= 0 returns all retained.
func (l *EventLog) Recent(n int) []Event {
	if n <= 0 || n >= len(l.events) {
		n = len(l.events)
	}
	out := make([]Event, n)
	copy(out, l.events[len(l.events)-n:])
	return out
}

// Len returns the number of retained events.
func (l *EventLog) Len() int {
	return len(l.events)
}
