package friction

import (
	"math"
	"testing"
	"time"
)

// fixedClock pins the detector's clock so rephrase-window checks are
// deterministic.
func fixedClock(d *Detector, at time.Time) {
	d.now = func() time.Time { return at }
}

func TestObserve_BackspaceAccumulation(t *testing.T) {
	d := NewDetector()
	d.Observe("hello world")
	d.Observe("hello wor") // 2 deleted
	d.Observe("hello")     // 4 more

	snap := d.Snapshot()
	if snap.BackspaceCount != 6 {
		t.Errorf("backspaceCount = %d, want 6", snap.BackspaceCount)
	}
	if math.Abs(snap.Intensity-0.2) > 1e-12 {
		t.Errorf("intensity = %v, want 0.2 (6/30)", snap.Intensity)
	}
}

func TestObserve_IntensityCapsAtOne(t *testing.T) {
	d := NewDetector()
	d.Observe(string(make([]byte, 100)))
	d.Observe("")
	snap := d.Snapshot()
	if snap.BackspaceCount != 100 {
		t.Errorf("backspaceCount = %d, want 100", snap.BackspaceCount)
	}
	if snap.Intensity != 1 {
		t.Errorf("intensity = %v, want capped at 1", snap.Intensity)
	}
}

func TestObserve_RephraseDetected(t *testing.T) {
	d := NewDetector()
	fixedClock(d, time.Now())

	d.Observe("the quick brown fox")
	// Same instant, both values long, low similarity, big length delta.
	d.Observe("completely different answer text")

	snap := d.Snapshot()
	if snap.RephraseCount != 1 {
		t.Fatalf("rephraseCount = %d, want 1", snap.RephraseCount)
	}
	want := 1*rephraseWeight + float64(snap.BackspaceCount)/backspaceNorm
	if math.Abs(snap.Intensity-want) > 1e-12 {
		t.Errorf("intensity = %v, want %v", snap.Intensity, want)
	}
}

func TestObserve_SimilarEditIsNotRephrase(t *testing.T) {
	d := NewDetector()
	fixedClock(d, time.Now())

	d.Observe("hello there my friend")
	d.Observe("hello there my friends")

	if got := d.Snapshot().RephraseCount; got != 0 {
		t.Errorf("rephraseCount = %d, want 0 for a small similar edit", got)
	}
}

func TestObserve_ShortValuesNeverRephrase(t *testing.T) {
	d := NewDetector()
	fixedClock(d, time.Now())

	d.Observe("short")
	d.Observe("different!")

	if got := d.Snapshot().RephraseCount; got != 0 {
		t.Errorf("rephraseCount = %d, want 0 when either value is <= 10 chars", got)
	}
}

func TestObserve_StaleWindowSkipsRephrase(t *testing.T) {
	d := NewDetector()
	base := time.Now()
	fixedClock(d, base)
	d.Observe("the quick brown fox")

	// Second snapshot arrives 6 s later, outside the 5 s window.
	fixedClock(d, base.Add(6*time.Second))
	d.Observe("completely different answer text")

	if got := d.Snapshot().RephraseCount; got != 0 {
		t.Errorf("rephraseCount = %d, want 0 outside the rephrase window", got)
	}
}

func TestObserve_RepublishesOnAnyChange(t *testing.T) {
	d := NewDetector()
	var published int
	d.OnChange = func(Snapshot) { published++ }

	d.Observe("a")
	d.Observe("ab") // growth, no rule fires, still republished
	d.Observe("ab") // unchanged, no publish

	if published != 2 {
		t.Errorf("published %d times, want 2", published)
	}
}

func TestReset(t *testing.T) {
	d := NewDetector()
	d.Observe("hello world")
	d.Observe("hi")
	d.Reset()

	snap := d.Snapshot()
	if snap.BackspaceCount != 0 || snap.RephraseCount != 0 || snap.Intensity != 0 {
		t.Errorf("after reset: %+v, want all zeros", snap)
	}

	// Next snapshot is compared against an empty previous value: growth only.
	d.Observe("fresh")
	if got := d.Snapshot().BackspaceCount; got != 0 {
		t.Errorf("backspaceCount after reset+observe = %d, want 0", got)
	}
}

func TestDecay_Convergence(t *testing.T) {
	d := NewDetector()
	d.Observe("hello world")
	d.Observe("hello") // 6 backspaces -> intensity 0.2

	i0 := d.Snapshot().Intensity
	const n = 40
	for range n {
		d.Decay()
	}

	got := d.Snapshot().Intensity
	want := i0 * math.Pow(DecayFactor, n)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("intensity after %d ticks = %v, want %v", n, got, want)
	}
	if got < 0 {
		t.Errorf("intensity went negative: %v", got)
	}
	if got >= i0 {
		t.Errorf("intensity did not decay: %v >= %v", got, i0)
	}
}
