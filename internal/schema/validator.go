// Package schema validates intent payloads against the canonical Kivai
// Intent v1 JSON Schema.
//
// The schema document is embedded in the binary and compiled once; a
// Validator is a pure function of payload and schema, so validating the
// same payload twice always yields the same outcome.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	_ "embed"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/tech4life-beyond/kivai/internal/intent"
)

//go:embed intent-v1.schema.json
var intentV1Schema []byte

// schemaURL anchors the embedded document for the compiler; it is never
// fetched.
const schemaURL = "https://kivai.tech4life.dev/schema/kivai-intent-v1.schema.json"

// validMessage is returned alongside ok for valid payloads.
const validMessage = "payload is valid"

// Validator holds the compiled Intent v1 schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the embedded Intent v1 schema.
func NewValidator() (*Validator, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(schemaURL, bytes.NewReader(intentV1Schema)); err != nil {
		return nil, fmt.Errorf("loading intent schema: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling intent schema: %w", err)
	}
	return &Validator{schema: compiled}, nil
}

// Validate checks a payload against the schema. On failure the returned
// message carries the most specific violation the compiler reported.
func (v *Validator) Validate(p intent.Payload) (bool, string) {
	doc, err := toJSONValue(p)
	if err != nil {
		return false, fmt.Sprintf("validation failed: %v", err)
	}

	if err := v.schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			leaf := leafCause(verr)
			return false, fmt.Sprintf("validation failed: %s: %s", leaf.InstanceLocation, leaf.Message)
		}
		return false, fmt.Sprintf("validation failed: %v", err)
	}

	return true, validMessage
}

// toJSONValue round-trips the payload through encoding/json so the schema
// library sees the exact wire representation.
func toJSONValue(p intent.Payload) (any, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// leafCause walks the error tree to its deepest cause, which names the
// actual violated constraint rather than the enclosing schema keyword.
func leafCause(verr *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(verr.Causes) > 0 {
		verr = verr.Causes[0]
	}
	return verr
}
