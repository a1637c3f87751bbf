package curriculum

import (
	"strings"
	"testing"
)

func TestLoad_ValidCurriculum(t *testing.T) {
	doc := `{
		"competencies": [
			{"id": "a", "name": "A"},
			{"id": "b", "name": "B", "prerequisites": ["a"]}
		]
	}`
	g, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.All()) != 2 {
		t.Errorf("got %d competencies, want 2", len(g.All()))
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	_, err := Load(strings.NewReader("{not json"))
	if err == nil || !strings.Contains(err.Error(), "invalid curriculum JSON") {
		t.Errorf("expected JSON parse error, got %v", err)
	}
}

func TestLoad_SchemaRejectsMissingName(t *testing.T) {
	doc := `{"competencies": [{"id": "a"}]}`
	_, err := Load(strings.NewReader(doc))
	if err == nil || !strings.Contains(err.Error(), "schema validation failed") {
		t.Errorf("expected schema error, got %v", err)
	}
}

func TestLoad_SchemaRejectsUnknownField(t *testing.T) {
	doc := `{"competencies": [{"id": "a", "name": "A", "tier": 2}]}`
	_, err := Load(strings.NewReader(doc))
	if err == nil || !strings.Contains(err.Error(), "schema validation failed") {
		t.Errorf("expected schema error, got %v", err)
	}
}

func TestLoad_StructuralValidationRuns(t *testing.T) {
	// Passes the schema but contains a cycle.
	doc := `{
		"competencies": [
			{"id": "root", "name": "Root"},
			{"id": "a", "name": "A", "prerequisites": ["b"]},
			{"id": "b", "name": "B", "prerequisites": ["a"]}
		]
	}`
	_, err := Load(strings.NewReader(doc))
	if err == nil || !strings.Contains(err.Error(), "cycle detected") {
		t.Errorf("expected cycle error, got %v", err)
	}
}
