// Package analysis turns raw model text into a validated, normalized result
// document: JSON extraction, variant decoding, identification aliasing, and
// the grading-ROI block.
package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Delimiters the prompt asks the model to wrap its JSON payload in.
const (
	jsonStartMarker = "<<<JSON"
	jsonEndMarker   = "JSON>>>"
)

// ErrNotJSON is returned when no JSON payload can be located in the model
// text at all. Located-but-malformed payloads return the parse error instead.
var ErrNotJSON = errors.New("model did not return JSON")

// ExtractJSON pulls a JSON object out of free-form model text. It prefers the
// delimiter-wrapped block; failing that it takes the span from the first "{"
// to the last "}", tolerating prose the model emits despite instructions.
func ExtractJSON(text string) (json.RawMessage, error) {
	if s := strings.Index(text, jsonStartMarker); s != -1 {
		if e := strings.LastIndex(text, jsonEndMarker); e > s {
			inside := strings.TrimSpace(text[s+len(jsonStartMarker) : e])
			return parseRaw(inside)
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return parseRaw(text[start : end+1])
	}

	return nil, ErrNotJSON
}

func parseRaw(s string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, fmt.Errorf("parse extracted JSON: %w", err)
	}
	return raw, nil
}
