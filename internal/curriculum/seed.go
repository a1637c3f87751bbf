package curriculum

// Default returns the built-in study-skills curriculum used by the CLI when
// no curriculum file is supplied. Listed in dependency order; insertion order
// doubles as the recommender's tie-break order.
func Default() *Graph {
	competencies := []Competency{
		{
			ID:          "note-basics",
			Name:        "Note-Taking Basics",
			Description: "Capture key ideas from a lecture or reading in your own words.",
		},
		{
			ID:          "active-recall",
			Name:        "Active Recall",
			Description: "Retrieve facts from memory instead of re-reading.",
			Prerequisites: []string{
				"note-basics",
			},
		},
		{
			ID:          "spaced-review",
			Name:        "Spaced Review",
			Description: "Schedule reviews at expanding intervals.",
			Prerequisites: []string{
				"active-recall",
			},
		},
		{
			ID:          "summarization",
			Name:        "Summarization",
			Description: "Condense a source into its essential claims.",
			Prerequisites: []string{
				"note-basics",
			},
		},
		{
			ID:          "concept-mapping",
			Name:        "Concept Mapping",
			Description: "Link related ideas into a visual structure.",
			Prerequisites: []string{
				"summarization",
			},
		},
		{
			ID:          "self-testing",
			Name:        "Self-Testing",
			Description: "Build and take practice quizzes before the real thing.",
			Prerequisites: []string{
				"active-recall",
				"summarization",
			},
		},
	}

	// The seed set is validated by tests; a panic here means the seed itself
	// was edited into an invalid state.
	g, err := New(competencies)
	if err != nil {
		panic(err)
	}
	return g
}
