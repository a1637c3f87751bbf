// Package curriculum defines the competency graph: the DAG of skills a
// learner works through, with prerequisite edges gating what may be attempted.
// The graph is static configuration; nothing here is created or destroyed at
// runtime by the engine.
package curriculum

// Competency is a single skill node in the graph.
type Competency struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}

// Mastery thresholds used by the recommender. A competency counts as done
// above MasteredThreshold; a prerequisite unblocks its dependents above the
// lower PrereqThreshold. The two are deliberately different knobs.
const (
	MasteredThreshold = 0.95
	PrereqThreshold   = 0.8
)
