package curriculum

import (
	"testing"
)

func testCompetencies() []Competency {
	return []Competency{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B", Prerequisites: []string{"a"}},
		{ID: "c", Name: "C", Prerequisites: []string{"a"}},
		{ID: "d", Name: "D", Prerequisites: []string{"b", "c"}},
	}
}

func TestNew_BuildsIndices(t *testing.T) {
	g, err := New(testCompetencies())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, err := g.Get("b")
	if err != nil {
		t.Fatalf("Get(b): %v", err)
	}
	if c.Name != "B" {
		t.Errorf("got name %q, want %q", c.Name, "B")
	}

	if _, err := g.Get("nonexistent"); err == nil {
		t.Error("expected error for nonexistent competency, got nil")
	}
}

func TestGraph_Roots(t *testing.T) {
	g, err := New(testCompetencies())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	roots := g.Roots()
	if len(roots) != 1 || roots[0].ID != "a" {
		t.Errorf("got roots %v, want [a]", roots)
	}
}

func TestGraph_Dependents(t *testing.T) {
	g, err := New(testCompetencies())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	deps := g.Dependents("a")
	if len(deps) != 2 {
		t.Fatalf("got %d dependents of a, want 2", len(deps))
	}
}

func TestGraph_TopoOrderRespectsPrerequisites(t *testing.T) {
	g, err := New(testCompetencies())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pos := make(map[string]int)
	for i, c := range g.TopoOrder() {
		pos[c.ID] = i
	}
	for _, c := range g.All() {
		for _, prereq := range c.Prerequisites {
			if pos[prereq] >= pos[c.ID] {
				t.Errorf("prerequisite %q appears at %d, after %q at %d",
					prereq, pos[prereq], c.ID, pos[c.ID])
			}
		}
	}
}

func TestGraph_AllPreservesInsertionOrder(t *testing.T) {
	g, err := New(testCompetencies())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantOrder := []string{"a", "b", "c", "d"}
	all := g.All()
	for i, want := range wantOrder {
		if all[i].ID != want {
			t.Errorf("All()[%d] = %q, want %q", i, all[i].ID, want)
		}
	}
}

func TestDefault_IsValid(t *testing.T) {
	g := Default()
	if len(g.All()) == 0 {
		t.Fatal("default curriculum is empty")
	}
	if len(g.Roots()) == 0 {
		t.Fatal("default curriculum has no roots")
	}
}
