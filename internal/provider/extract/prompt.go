// Package extract implements the second pipeline stage (spec.md §4.3):
// turning OCR markdown into a schema-valid Check or Receipt, behind a
// common Extractor interface with remote and edge implementations.
package extract

import (
	"fmt"
	"strings"

	"github.com/rezonia/docscan/internal/model"
	"github.com/rezonia/docscan/internal/schema"
)

// instructionMarkers are headers that indicate the OCR text already
// carries its own extraction instructions (e.g. a caller-supplied
// preamble upstream of this service). When present, the prompt is
// passed through unwrapped rather than double-wrapped.
var instructionMarkers = []string{
	"## instructions",
	"## instruction",
	"# instructions",
}

const systemPreamble = `You are a structured data extractor. Extract only what ` +
	`is stated in the input text — never invent names, numbers, or dates ` +
	`that are not present. Prefer omitting an optional field over guessing ` +
	`its value. If the input is empty, unreadable, or plainly not the ` +
	`expected document type, set "isValidInput" to false. Respond with a ` +
	`single JSON object and nothing else.`

// alreadyWrapped reports whether markdown already contains an
// instructional preamble, per spec.md §4.3 step 1.
func alreadyWrapped(markdown string) bool {
	lower := strings.ToLower(markdown)
	for _, marker := range instructionMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// buildPrompt returns the system and user prompt for an extraction
// call: the markdown wrapped with the schema and anti-hallucination
// rules, unless it is already wrapped.
func buildPrompt(req model.ExtractionRequest) (system, user string, err error) {
	if alreadyWrapped(req.Markdown) {
		return systemPreamble, req.Markdown, nil
	}

	schemaJSON, err := schema.JSONSchema(req.Schema)
	if err != nil {
		return "", "", fmt.Errorf("extract: build prompt: %w", err)
	}

	user = fmt.Sprintf(
		"## Instructions\n\nExtract a %s object from the text below. "+
			"It must conform to this JSON Schema:\n\n```json\n%s\n```\n\n"+
			"## Text\n\n%s",
		req.Schema, schemaJSON, req.Markdown,
	)
	return systemPreamble, user, nil
}
