// Package friction turns a stream of text-input snapshots into behavioral
// struggle signals: a backspace counter, a rephrase counter, and a decaying
// intensity scalar. The counters feed the cognitive state classifier; the
// intensity drives live UI metrics.
package friction

import (
	"context"
	"sync"
	"time"

	"github.com/agext/levenshtein"
)

// Tuning constants. The divisors and thresholds are product levers: changing
// them changes classifier behavior, not just code structure.
const (
	// backspaceNorm maps accumulated deletions onto [0, 1] intensity.
	backspaceNorm = 30.0
	// rephraseWeight is the per-rephrase contribution to intensity.
	rephraseWeight = 0.3
	// rephraseMinLen gates rephrase detection: both the previous and current
	// values must be longer than this.
	rephraseMinLen = 10
	// rephraseWindow is the maximum elapsed time since the last snapshot for
	// an edit to count as a rephrase.
	rephraseWindow = 5000 * time.Millisecond
	// rephraseSimilarity is the normalized-similarity ceiling (exclusive)
	// below which a large edit counts as a rephrase.
	rephraseSimilarity = 0.6
	// rephraseMinLenDelta is the minimum absolute length change (exclusive)
	// for a rephrase.
	rephraseMinLenDelta = 5

	// DecayFactor is applied to intensity on every decay tick.
	DecayFactor = 0.92
	// DecayInterval approximates the 60 Hz animation-frame cadence the decay
	// loop targets.
	DecayInterval = time.Second / 60
)

// Snapshot is the published view of the detector's counters.
type Snapshot struct {
	RephraseCount  int
	BackspaceCount int
	Intensity      float64
	UpdatedAt      time.Time
}

// Detector tracks one text-entry session. All methods are safe for use from
// the snapshot source and a decay ticker concurrently; a mutex keeps the
// intensity value single-writer at any instant, so last-write-wins stays
// well-defined.
type Detector struct {
	mu             sync.Mutex
	previousValue  string
	rephraseCount  int
	backspaceCount int
	intensity      float64
	lastUpdate     time.Time

	// OnChange, if set, is invoked with a fresh snapshot after every call to
	// Observe that changed the input value. It runs while the lock is not
	// held.
	OnChange func(Snapshot)

	now func() time.Time
}

// NewDetector creates a detector with an empty previous value.
func NewDetector() *Detector {
	return &Detector{now: time.Now}
}

// Observe processes the current full value of the tracked input field.
//
// Shrinkage counts every removed character as a backspace, including
// multi-character cuts. A rephrase is a large low-similarity edit made within
// rephraseWindow while both old and new values are non-trivially long. The
// previous value and timestamp are stored unconditionally on every call.
func (d *Detector) Observe(curr string) {
	d.mu.Lock()

	prev := d.previousValue
	elapsed := d.now().Sub(d.lastUpdate)
	changed := curr != prev

	if len(curr) < len(prev) {
		d.backspaceCount += len(prev) - len(curr)
		d.intensity = min(1, float64(d.backspaceCount)/backspaceNorm)
	}

	if len(curr) > rephraseMinLen && len(prev) > rephraseMinLen && elapsed < rephraseWindow {
		sim := similarity(prev, curr)
		lenDelta := len(curr) - len(prev)
		if lenDelta < 0 {
			lenDelta = -lenDelta
		}
		if sim < rephraseSimilarity && lenDelta > rephraseMinLenDelta {
			d.rephraseCount++
			d.intensity = min(1, float64(d.rephraseCount)*rephraseWeight+float64(d.backspaceCount)/backspaceNorm)
		}
	}

	d.previousValue = curr
	d.lastUpdate = d.now()

	snap := d.snapshotLocked()
	onChange := d.OnChange
	d.mu.Unlock()

	// Republish on any change so observers see fresh counters even when
	// neither rule fired.
	if changed && onChange != nil {
		onChange(snap)
	}
}

// Decay applies one decay tick, pulling intensity toward zero.
func (d *Detector) Decay() {
	d.mu.Lock()
	d.intensity *= DecayFactor
	d.mu.Unlock()
}

// RunDecay drives Decay on a steady ticker until ctx is cancelled. Callers
// embedded in a UI loop typically skip this and call Decay from their own
// frame tick instead.
func (d *Detector) RunDecay(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.Decay()
		}
	}
}

// Reset zeroes the counters, the intensity, and the stored previous value so
// friction does not leak across unrelated inputs.
func (d *Detector) Reset() {
	d.mu.Lock()
	d.previousValue = ""
	d.rephraseCount = 0
	d.backspaceCount = 0
	d.intensity = 0
	d.lastUpdate = time.Time{}
	d.mu.Unlock()
}

// Snapshot returns the current counters and intensity.
func (d *Detector) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshotLocked()
}

func (d *Detector) snapshotLocked() Snapshot {
	return Snapshot{
		RephraseCount:  d.rephraseCount,
		BackspaceCount: d.backspaceCount,
		Intensity:      d.intensity,
		UpdatedAt:      d.lastUpdate,
	}
}

// similarity is the normalized Levenshtein similarity between two strings:
// 1 − distance / max(len). Quadratic in string length, which is fine for
// short-form interactive text.
func similarity(a, b string) float64 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1
	}
	dist := levenshtein.Distance(a, b, nil)
	return 1 - float64(dist)/float64(maxLen)
}
