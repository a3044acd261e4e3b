// Package schema declares the JSON-Schema-equivalent views of Check and
// Receipt used by the extractor prompt (spec.md §4.3 step 1), and the
// uniform validator contract of spec.md §4.5.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/rezonia/docscan/internal/model"
)

// New returns a zero-value instance of the schema's target type: a
// *model.Check for ScanTypeCheck, a *model.Receipt for ScanTypeReceipt.
func New(name model.ScanType) (any, error) {
	switch name {
	case model.ScanTypeCheck:
		return &model.Check{}, nil
	case model.ScanTypeReceipt:
		return &model.Receipt{}, nil
	default:
		return nil, fmt.Errorf("schema: unrecognized scan type %q", name)
	}
}

// reflector is shared across calls; invopop/jsonschema reflectors are
// safe for concurrent read-only use once configured.
var reflector = &jsonschema.Reflector{
	DoNotReference:            true,
	ExpandedStruct:            true,
	RequiredFromJSONSchemaTags: false,
}

// JSONSchema renders the target type for name as an indented JSON Schema
// document, suitable for embedding in an extractor prompt's fenced block.
func JSONSchema(name model.ScanType) ([]byte, error) {
	target, err := New(name)
	if err != nil {
		return nil, err
	}

	s := reflector.Reflect(target)
	s.Title = string(name)

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("schema: marshal %s schema: %w", name, err)
	}
	return out, nil
}
