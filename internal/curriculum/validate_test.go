package curriculum

import (
	"strings"
	"testing"
)

func TestValidate_DuplicateID(t *testing.T) {
	_, err := New([]Competency{
		{ID: "a", Name: "A"},
		{ID: "a", Name: "A again"},
	})
	if err == nil || !strings.Contains(err.Error(), "duplicate competency ID") {
		t.Errorf("expected duplicate ID error, got %v", err)
	}
}

func TestValidate_DanglingPrerequisite(t *testing.T) {
	_, err := New([]Competency{
		{ID: "a", Name: "A", Prerequisites: []string{"ghost"}},
	})
	if err == nil || !strings.Contains(err.Error(), "nonexistent prerequisite") {
		t.Errorf("expected dangling prerequisite error, got %v", err)
	}
}

func TestValidate_SelfPrerequisite(t *testing.T) {
	_, err := New([]Competency{
		{ID: "a", Name: "A", Prerequisites: []string{"a"}},
	})
	if err == nil || !strings.Contains(err.Error(), "itself") {
		t.Errorf("expected self-prerequisite error, got %v", err)
	}
}

func TestValidate_Cycle(t *testing.T) {
	_, err := New([]Competency{
		{ID: "root", Name: "Root"},
		{ID: "a", Name: "A", Prerequisites: []string{"b"}},
		{ID: "b", Name: "B", Prerequisites: []string{"a"}},
	})
	if err == nil || !strings.Contains(err.Error(), "cycle detected") {
		t.Errorf("expected cycle error, got %v", err)
	}
}

func TestValidate_NoRoot(t *testing.T) {
	_, err := New([]Competency{
		{ID: "a", Name: "A", Prerequisites: []string{"b"}},
		{ID: "b", Name: "B", Prerequisites: []string{"a"}},
	})
	if err == nil || !strings.Contains(err.Error(), "no root") {
		t.Errorf("expected no-root error, got %v", err)
	}
}

func TestValidate_CombinesAllProblems(t *testing.T) {
	_, err := New([]Competency{
		{ID: "a", Name: ""},
		{ID: "a", Name: "Dup", Prerequisites: []string{"ghost"}},
	})
	if err == nil {
		t.Fatal("expected combined validation error, got nil")
	}
	msg := err.Error()
	for _, want := range []string{"empty name", "duplicate", "nonexistent"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q missing %q", msg, want)
		}
	}
}
