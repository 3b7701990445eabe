package genai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseJSON decodes a model response into target. Responses wrapped in
// markdown code fences or surrounded by prose are reduced to the outermost
// JSON object or array first. A response with no JSON payload is an error.
func parseJSON(text string, target interface{}) error {
	if start := strings.Index(text, "```json"); start != -1 {
		fragment := text[start+len("```json"):]
		if end := strings.Index(fragment, "```"); end != -1 {
			text = fragment[:end]
		}
	} else if start := strings.Index(text, "```"); start != -1 {
		fragment := text[start+3:]
		if end := strings.Index(fragment, "```"); end != -1 {
			text = fragment[:end]
		}
	}
	text = strings.TrimSpace(text)

	objectStart := strings.Index(text, "{")
	objectEnd := strings.LastIndex(text, "}")
	arrayStart := strings.Index(text, "[")
	arrayEnd := strings.LastIndex(text, "]")

	switch {
	case objectStart != -1 && objectEnd != -1 && (arrayStart == -1 || objectStart < arrayStart):
		text = text[objectStart : objectEnd+1]
	case arrayStart != -1 && arrayEnd != -1:
		text = text[arrayStart : arrayEnd+1]
	default:
		return fmt.Errorf("model response carried no JSON payload")
	}
	if err := json.Unmarshal([]byte(text), target); err != nil {
		return fmt.Errorf("failed to unmarshal model response into %T: %w", target, err)
	}
	return nil
}
