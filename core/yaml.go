package core

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// yamlFieldConfig is the wire shape of a FieldConfig. Validators and
// ApplicableFeatures-as-signals are a code-level concern; a schema loaded
// from YAML carries no Validators (callers may attach them afterwards).
type yamlFieldConfig struct {
	Name               string   `yaml:"name"`
	Required           bool     `yaml:"required"`
	MaxAllowed         int      `yaml:"maxAllowed"`
	ApplicableFeatures []string `yaml:"applicableFeatures,omitempty"`
}

type yamlSchema struct {
	NoiseLabel string            `yaml:"noiseLabel"`
	Fields     []yamlFieldConfig `yaml:"fields"`
}

// ParseSchemaYAML decodes a FieldSchema from an in-memory YAML document.
// The module performs no file I/O itself (§1 of the spec keeps that an
// external collaborator); callers read the bytes however they like and
// pass them here.
func ParseSchemaYAML(data []byte) (FieldSchema, error) {
	var wire yamlSchema
	if err := yaml.Unmarshal(data, &wire); err != nil {
		return FieldSchema{}, fmt.Errorf("core: parse schema yaml: %w", err)
	}
	schema := FieldSchema{NoiseLabel: wire.NoiseLabel}
	for _, f := range wire.Fields {
		schema.Fields = append(schema.Fields, FieldConfig{
			Name:               f.Name,
			Required:           f.Required,
			MaxAllowed:         f.MaxAllowed,
			ApplicableFeatures: f.ApplicableFeatures,
		})
	}
	if err := schema.Validate(); err != nil {
		return FieldSchema{}, err
	}
	return schema, nil
}

// ParseWeightsYAML decodes a feature-id -> weight map from an in-memory
// YAML document (a flat mapping of scalar keys to numbers).
func ParseWeightsYAML(data []byte) (map[string]float64, error) {
	var wire map[string]float64
	if err := yaml.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("core: parse weights yaml: %w", err)
	}
	return wire, nil
}
