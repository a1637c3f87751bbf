package curriculum

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var curriculumSchema []byte

// compiledSchema compiles the embedded curriculum schema once.
var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	var parsed any
	if err := json.Unmarshal(curriculumSchema, &parsed); err != nil {
		return nil, fmt.Errorf("parse embedded schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://curriculum.json"
	if err := c.AddResource(schemaURL, parsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// curriculumFile is the on-disk shape of a curriculum definition.
type curriculumFile struct {
	Competencies []Competency `json:"competencies"`
}

// Load reads a curriculum JSON document, validates it against the embedded
// JSON Schema, runs the structural graph checks, and returns the built Graph.
func Load(r io.Reader) (*Graph, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read curriculum: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid curriculum JSON: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile curriculum schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("curriculum schema validation failed: %w", err)
	}

	var file curriculumFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode curriculum: %w", err)
	}

	return New(file.Competencies)
}
