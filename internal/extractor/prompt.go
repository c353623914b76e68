package extractor

import (
	"encoding/json"
	"strings"

	"tabrev/internal/domain"
)

// SystemPrompt pins the assistant into JSON-only output mode.
const SystemPrompt = "You are a helpful assistant that outputs JSON."

// BuildExtractionPrompt returns the field-extraction prompt for the given
// document context and resolved schema. The caller is responsible for
// bounding the context (prefix truncation or retrieved passages).
func BuildExtractionPrompt(documentContext string, fields []domain.FieldSpec) string {
	fieldsJSON, _ := json.MarshalIndent(fields, "", "  ")

	var b strings.Builder
	b.WriteString(`You are a legal AI assistant. Extract the following fields from the document text provided below.

Fields to extract:
`)
	b.Write(fieldsJSON)
	b.WriteString(`

For each field, provide:
- value: The extracted text.
- confidence: A score between 0.0 and 1.0.
- citation: The specific location or context where this was found (quote the text).
- normalization: A normalized version of the value (e.g., ISO date, uppercase title).

Return the output as a strict JSON object with a "results" key containing a list of objects.
Each object in the list should have "field_name" matching the requested field name, plus the properties above.

If a field is not found, set "value" to null.

Document Text:
`)
	b.WriteString(documentContext)
	return b.String()
}

// TruncateDocument bounds text to maxChars characters. Documents longer than
// the budget lose trailing content on the plain truncation path; the
// extraction service switches to retrieved passages for those.
func TruncateDocument(text string, maxChars int) string {
	if maxChars <= 0 || len(text) <= maxChars {
		return text
	}
	return text[:maxChars]
}
