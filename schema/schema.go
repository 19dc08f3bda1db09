// Package schema validates output documents against bundled JSON Schemas.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tonyzdev/jobparse"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed postings.schema.json
var postingsSchema []byte

//go:embed requirements.schema.json
var requirementsSchema []byte

// Kind identifies an output document type.
type Kind string

// Output document kinds.
const (
	KindPostings     Kind = "postings"
	KindRequirements Kind = "requirements"
)

// FieldError is a single validation failure at a document location.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every failure found in a document.
type ValidationError struct {
	Kind   Kind
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s validation failed:\n", ve.Kind)
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, err.Field, err.Message)
	}
	return strings.TrimSpace(sb.String())
}

// Unwrap exposes the failure as an EINVALID application error.
func (ve *ValidationError) Unwrap() error {
	return jobparse.Errorf(jobparse.EINVALID, "%s", ve.Error())
}

// Validate checks data against the schema for kind. Schema violations are
// returned as a *ValidationError carrying the EINVALID code.
func Validate(kind Kind, data []byte) error {
	var schema []byte
	switch kind {
	case KindPostings:
		schema = postingsSchema
	case KindRequirements:
		schema = requirementsSchema
	default:
		return jobparse.Errorf(jobparse.EINVALID, "unknown document kind %q", kind)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return jobparse.Errorf(jobparse.EINVALID, "load %s document: %v", kind, err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{
		Kind:   kind,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return ve
}

// Detect guesses the kind of an output document from its first entry.
// Postings carry a filename; requirement records do not. An empty list is
// reported as postings.
func Detect(data []byte) (Kind, error) {
	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return "", jobparse.Errorf(jobparse.EINVALID, "document must be a JSON list of objects: %v", err)
	}
	if len(entries) == 0 {
		return KindPostings, nil
	}
	if _, ok := entries[0]["filename"]; ok {
		return KindPostings, nil
	}
	return KindRequirements, nil
}

// Check detects the document kind and validates it.
func Check(data []byte) (Kind, error) {
	kind, err := Detect(data)
	if err != nil {
		return "", err
	}
	return kind, Validate(kind, data)
}
