package curriculum

import (
	"fmt"
	"slices"
	"sort"
)

// Graph holds the competency DAG with precomputed indices. Unlike a
// package-level singleton, a Graph is an owned value: build one from
// configuration and inject it wherever it is needed.
type Graph struct {
	competencies []Competency
	byID         map[string]*Competency
	roots        []Competency
	dependents   map[string][]string
	topoOrder    []Competency
	topoIndex    map[string]int
}

// New validates the competency set and builds a Graph from it. The insertion
// order of competencies is preserved and is the tie-break order used by the
// recommender.
func New(competencies []Competency) (*Graph, error) {
	if err := validateCompetencies(competencies); err != nil {
		return nil, err
	}
	return build(competencies), nil
}

// build constructs the graph indices, including topological order via Kahn's
// algorithm. Callers must have validated the input first.
func build(competencies []Competency) *Graph {
	g := &Graph{
		competencies: competencies,
		byID:         make(map[string]*Competency, len(competencies)),
		dependents:   make(map[string][]string),
		topoIndex:    make(map[string]int, len(competencies)),
	}

	for i := range g.competencies {
		g.byID[g.competencies[i].ID] = &g.competencies[i]
	}

	// Reverse edges.
	for i := range g.competencies {
		for _, prereqID := range g.competencies[i].Prerequisites {
			g.dependents[prereqID] = append(g.dependents[prereqID], g.competencies[i].ID)
		}
	}

	// Topological sort (Kahn's algorithm).
	inDegree := make(map[string]int, len(competencies))
	for i := range competencies {
		inDegree[competencies[i].ID] = len(competencies[i].Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	var topoOrder []Competency
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		topoOrder = append(topoOrder, *g.byID[id])

		deps := slices.Clone(g.dependents[id])
		sort.Strings(deps)
		for _, depID := range deps {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	g.topoOrder = topoOrder
	for i, c := range g.topoOrder {
		g.topoIndex[c.ID] = i
	}

	for i := range g.competencies {
		if len(g.competencies[i].Prerequisites) == 0 {
			g.roots = append(g.roots, g.competencies[i])
		}
	}

	return g
}

// Get returns a competency by ID, or an error if not found.
func (g *Graph) Get(id string) (Competency, error) {
	c, ok := g.byID[id]
	if !ok {
		return Competency{}, fmt.Errorf("competency not found: %q", id)
	}
	return *c, nil
}

// All returns every competency in insertion order.
func (g *Graph) All() []Competency {
	return slices.Clone(g.competencies)
}

// Roots returns all competencies with no prerequisites.
func (g *Graph) Roots() []Competency {
	return slices.Clone(g.roots)
}

// Prerequisites returns the direct prerequisite competencies of id.
func (g *Graph) Prerequisites(id string) []Competency {
	c, ok := g.byID[id]
	if !ok {
		return nil
	}
	result := make([]Competency, 0, len(c.Prerequisites))
	for _, prereqID := range c.Prerequisites {
		if p, ok := g.byID[prereqID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// Dependents returns the competencies that directly depend on id.
func (g *Graph) Dependents(id string) []Competency {
	depIDs := g.dependents[id]
	result := make([]Competency, 0, len(depIDs))
	for _, depID := range depIDs {
		if c, ok := g.byID[depID]; ok {
			result = append(result, *c)
		}
	}
	return result
}

// TopoOrder returns the competencies in a deterministic topological order.
func (g *Graph) TopoOrder() []Competency {
	return slices.Clone(g.topoOrder)
}
