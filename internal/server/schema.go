// internal/server/schema.go
package server

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// classifyRequestSchema is the wire contract for POST /classify. company_name
// and team_size are optional; extra fields are tolerated so clients can send
// tracing metadata without breaking.
const classifyRequestSchema = `{
	"type": "object",
	"properties": {
		"query": {"type": "string"},
		"company_name": {"type": ["string", "null"]},
		"team_size": {"type": ["integer", "null"]}
	},
	"required": ["query"],
	"additionalProperties": true
}`

var classifySchema = gojsonschema.NewStringLoader(classifyRequestSchema)

func validateClassifyRequest(body []byte) error {
	documentLoader := gojsonschema.NewBytesLoader(body)

	result, err := gojsonschema.Validate(classifySchema, documentLoader)
	if err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("request validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}
