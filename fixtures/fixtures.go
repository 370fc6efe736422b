// Package fixtures loads the end-to-end scenario table from an embedded
// JSON file, validated against an embedded JSON Schema before use.
package fixtures

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed scenarios.json scenarios.schema.json
var files embed.FS

// Scenario is one end-to-end (source, stdout) pair, optionally with the
// stdin text the "Q" preset should see.
type Scenario struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Output string `json:"output"`
	Stdin  string `json:"stdin"`
}

// Load validates the embedded scenario table against its schema and
// decodes it.
func Load() ([]Scenario, error) {
	schemaData, err := files.ReadFile("scenarios.schema.json")
	if err != nil {
		return nil, err
	}
	raw, err := files.ReadFile("scenarios.json")
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("scenarios.schema.json", bytes.NewReader(schemaData)); err != nil {
		return nil, err
	}
	schema, err := compiler.Compile("scenarios.schema.json")
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("fixtures: decoding scenarios.json: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("fixtures: scenarios.json failed schema validation: %w", err)
	}

	var scenarios []Scenario
	if err := json.Unmarshal(raw, &scenarios); err != nil {
		return nil, fmt.Errorf("fixtures: decoding scenarios.json: %w", err)
	}
	return scenarios, nil
}
