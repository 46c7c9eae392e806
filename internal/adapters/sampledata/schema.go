package sampledata

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/IMRSIV/bank-albilad-demo/internal/core/domain"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed property.schema.json
var propertySchemaJSON []byte

const propertySchemaURL = "property.schema.json"

func compilePropertySchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	if err := compiler.AddResource(propertySchemaURL, bytes.NewReader(propertySchemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to add property schema resource: %w", err)
	}
	schema, err := compiler.Compile(propertySchemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile property schema: %w", err)
	}
	return schema, nil
}

// ValidateProperties checks every record against the canonical property schema
// and reports the first offending record.
func ValidateProperties(list []domain.Property) error {
	schema, err := compilePropertySchema()
	if err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(list))
	for i, p := range list {
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("record %d: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = struct{}{}

		body, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("record %d (id %q): failed to marshal: %w", i, p.ID, err)
		}
		var v interface{}
		if err := json.Unmarshal(body, &v); err != nil {
			return fmt.Errorf("record %d (id %q): failed to unmarshal: %w", i, p.ID, err)
		}
		if err := schema.Validate(v); err != nil {
			return fmt.Errorf("record %d (id %q): JSON schema validation failed: %w", i, p.ID, err)
		}
	}
	return nil
}

// Validate checks the dataset against the canonical property schema.
func (d *Dataset) Validate() error {
	return ValidateProperties(d.records)
}
