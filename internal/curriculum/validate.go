package curriculum

import (
	"fmt"
	"strings"
)

// validateCompetencies performs all structural checks on the competency set.
// Returns a combined error describing every problem found, or nil if valid.
func validateCompetencies(competencies []Competency) error {
	var errs []string

	idSet := make(map[string]bool, len(competencies))

	// Duplicate IDs and empty fields.
	for _, c := range competencies {
		if c.ID == "" {
			errs = append(errs, "competency with empty ID")
			continue
		}
		if idSet[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate competency ID: %q", c.ID))
		}
		idSet[c.ID] = true
		if c.Name == "" {
			errs = append(errs, fmt.Sprintf("competency %q has empty name", c.ID))
		}
	}

	// Dangling prerequisites and self-references.
	for _, c := range competencies {
		for _, prereqID := range c.Prerequisites {
			if prereqID == c.ID {
				errs = append(errs, fmt.Sprintf("competency %q lists itself as a prerequisite", c.ID))
				continue
			}
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("competency %q references nonexistent prerequisite %q", c.ID, prereqID))
			}
		}
	}

	// Cycle detection using Kahn's algorithm.
	inDegree := make(map[string]int, len(competencies))
	adjList := make(map[string][]string)
	for _, c := range competencies {
		inDegree[c.ID] = len(c.Prerequisites)
		for _, prereqID := range c.Prerequisites {
			adjList[prereqID] = append(adjList[prereqID], c.ID)
		}
	}

	var queue []string
	for _, c := range competencies {
		if inDegree[c.ID] == 0 {
			queue = append(queue, c.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(competencies) {
		var cycleNodes []string
		for _, c := range competencies {
			if inDegree[c.ID] > 0 {
				cycleNodes = append(cycleNodes, c.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving competencies: %s", strings.Join(cycleNodes, ", ")))
	}

	// At least one root.
	hasRoot := false
	for _, c := range competencies {
		if len(c.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if len(competencies) > 0 && !hasRoot {
		errs = append(errs, "no root competencies found (at least one must have no prerequisites)")
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
