// internal/workers/agreement/render-agreement/validation.go
package renderagreement

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// inputSchema guards the render tuple arriving as process variables. It
// checks types only and tolerates extra process-scope keys; completeness of
// the selections is enforced separately in validate().
const inputSchema = `{
	"type": "object",
	"properties": {
		"family": {"type": "string"},
		"templateId": {"type": "string"},
		"planId": {"type": "string"},
		"durationMonths": {"type": "integer", "minimum": 0},
		"referenceNumber": {"type": "string"},
		"anchorDate": {"type": "string"},
		"property": {"type": ["object", "null"]},
		"party": {"type": ["object", "null"]}
	}
}`

// validateRawInput checks the raw job variables against the input schema
// before they are unmarshalled.
func validateRawInput(variables string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(inputSchema),
		gojsonschema.NewStringLoader(variables),
	)
	if err != nil {
		return fmt.Errorf("input schema validation error: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("invalid render input: %s", strings.Join(msgs, "; "))
	}
	return nil
}
