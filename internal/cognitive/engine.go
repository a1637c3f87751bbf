package cognitive

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/cognify/internal/friction"
	"github.com/abhisek/cognify/internal/store"
)

// Engine fuses the three signal sources and publishes the current state.
// Construct one per tutoring session and inject it where needed; there is no
// package-level singleton.
//
// Every mutator recomputes the state synchronously before returning, so a
// caller that just updated one input can never observe a stale
// classification. Observers read the latest state; they do not drive the
// computation.
type Engine struct {
	sessionID string
	detector  *friction.Detector

	facialExpression string
	vocalState       string

	state State
	score int

	log         *EventLog
	subscribers []func(State)
	eventRepo   store.EventRepo

	now func() time.Time
}

// NewEngine creates an engine with a fresh friction detector and an empty
// event feed. eventRepo may be nil (no persistence of state changes).
func NewEngine(eventRepo store.EventRepo) *Engine {
	e := &Engine{
		sessionID: uuid.NewString(),
		detector:  friction.NewDetector(),
		state:     StateFocused,
		log:       NewEventLog(DefaultEventCap),
		eventRepo: eventRepo,
		now:       time.Now,
	}
	// Friction republishes flow back into the engine so counter-only changes
	// also trigger reclassification.
	e.detector.OnChange = func(friction.Snapshot) {
		e.recompute()
	}
	return e
}

// SessionID returns the identifier attached to persisted state events.
func (e *Engine) SessionID() string {
	return e.sessionID
}

// SetFacialExpression records a new facial-expression label (empty clears it)
// and reclassifies.
func (e *Engine) SetFacialExpression(label string) {
	e.facialExpression = label
	e.recompute()
}

// SetVocalState records a new vocal-state label (empty clears it) and
// reclassifies.
func (e *Engine) SetVocalState(label string) {
	e.vocalState = label
	e.recompute()
}

// ObserveText feeds the current full text-input value to the friction
// detector. Reclassification happens via the detector's republish hook.
func (e *Engine) ObserveText(value string) {
	e.detector.Observe(value)
}

// DecayFriction applies one friction decay tick. Intensity does not feed the
// classifier, so no reclassification is needed.
func (e *Engine) DecayFriction() {
	e.detector.Decay()
}

// ResetFriction clears the friction session (new question, new input) and
// reclassifies with zeroed counters.
func (e *Engine) ResetFriction() {
	e.detector.Reset()
	e.recompute()
}

// State returns the latest classification.
func (e *Engine) State() State {
	return e.state
}

// Score returns the score behind the latest classification (0 when a hard
// override fired).
func (e *Engine) Score() int {
	return e.score
}

// Friction returns the live friction counters and intensity.
func (e *Engine) Friction() friction.Snapshot {
	return e.detector.Snapshot()
}

// Signals returns the classifier inputs as of the latest recomputation.
func (e *Engine) Signals() Signals {
	fs := e.detector.Snapshot()
	return Signals{
		FacialExpression: e.facialExpression,
		VocalState:       e.vocalState,
		RephraseCount:    fs.RephraseCount,
		BackspaceCount:   fs.BackspaceCount,
	}
}

// RecentEvents returns up to n recent classification events, newest last.
func (e *Engine) RecentEvents(n int) []Event {
	return e.log.Recent(n)
}

// Subscribe registers a callback invoked after every state change.
func (e *Engine) Subscribe(fn func(State)) {
	e.subscribers = append(e.subscribers, fn)
}

// recompute reclassifies from the current signals, feeds the event log, and
// on a state change notifies subscribers and persists a state event.
func (e *Engine) recompute() {
	sig := e.Signals()
	state, score := Classify(sig)

	changed := state != e.state
	e.state = state
	e.score = score

	e.log.Append(Event{State: state, Score: score, Timestamp: e.now()})

	if !changed {
		return
	}
	for _, fn := range e.subscribers {
		fn(state)
	}
	if e.eventRepo != nil {
		err := e.eventRepo.AppendState(context.Background(), store.StateEventData{
			SessionID:      e.sessionID,
			State:          string(state),
			Score:          score,
			Facial:         sig.FacialExpression,
			Vocal:          sig.VocalState,
			RephraseCount:  sig.RephraseCount,
			BackspaceCount: sig.BackspaceCount,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log state event: %v\n", err)
		}
	}
}
