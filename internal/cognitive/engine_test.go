package cognitive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_StartsFocused(t *testing.T) {
	e := NewEngine(nil)
	assert.Equal(t, StateFocused, e.State())
}

func TestEngine_RecomputesOnLabelChange(t *testing.T) {
	e := NewEngine(nil)

	e.SetVocalState("stressed")
	assert.Equal(t, StateConfused, e.State(), "stressed alone scores 4")

	e.SetVocalState("frustrated")
	assert.Equal(t, StateFrustrated, e.State(), "hard override")

	e.SetVocalState("")
	assert.Equal(t, StateFocused, e.State(), "cleared label drops back to focused")
}

func TestEngine_RecomputesOnTextFriction(t *testing.T) {
	e := NewEngine(nil)
	e.SetVocalState("hesitant") // +3, still focused

	// Type a long answer, then delete enough to cross backspace > 10 (+2)
	// and > 20 (+3): 3 + 5 = 8 -> frustrated.
	e.ObserveText("this is my long draft answer")
	e.ObserveText("this")

	assert.Equal(t, StateFrustrated, e.State())
	assert.Equal(t, 8, e.Score())
}

func TestEngine_ResetFrictionReclassifies(t *testing.T) {
	e := NewEngine(nil)
	e.ObserveText("a long enough draft answer text")
	e.ObserveText("")
	require.Greater(t, e.Friction().BackspaceCount, 20)

	e.ResetFriction()
	assert.Equal(t, StateFocused, e.State())
	assert.Equal(t, 0, e.Friction().BackspaceCount)
	assert.Zero(t, e.Friction().Intensity)
}

func TestEngine_SubscribersNotifiedOnChangeOnly(t *testing.T) {
	e := NewEngine(nil)

	var notified []State
	e.Subscribe(func(s State) { notified = append(notified, s) })

	e.SetFacialExpression("neutral") // still focused, no change
	e.SetVocalState("frustrated")    // focused -> frustrated
	e.SetVocalState("frustrated")    // no change
	e.SetVocalState("")              // frustrated -> focused

	require.Len(t, notified, 2)
	assert.Equal(t, StateFrustrated, notified[0])
	assert.Equal(t, StateFocused, notified[1])
}

func TestEngine_EventFeedRecordsClassifications(t *testing.T) {
	e := NewEngine(nil)
	e.SetVocalState("stressed")
	e.SetVocalState("")

	events := e.RecentEvents(0)
	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, StateFocused, last.State)
}

func TestEventLog_Bounded(t *testing.T) {
	l := NewEventLog(3)
	for i := 0; i < 10; i++ {
		l.Append(Event{Score: i})
	}
	require.Equal(t, 3, l.Len())

	recent := l.Recent(0)
	assert.Equal(t, 7, recent[0].Score, "oldest retained")
	assert.Equal(t, 9, recent[2].Score, "newest last")
}

func TestEngine_DecayDoesNotChangeClassification(t *testing.T) {
	e := NewEngine(nil)
	e.ObserveText("some reasonably long text")
	e.ObserveText("some")
	state := e.State()
	before := e.Friction().Intensity

	e.DecayFriction()

	assert.Equal(t, state, e.State(), "intensity is not a classifier input")
	assert.Less(t, e.Friction().Intensity, before)
}
