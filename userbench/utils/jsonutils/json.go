package jsonutils

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Pretty re-indents raw JSON with two spaces. Empty input renders as "null".
// Input that is not valid JSON is returned trimmed but otherwise untouched.
func Pretty(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "null"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// Message pulls a non-empty top-level "message" string out of a JSON error
// body.
func Message(raw []byte) (string, bool) {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", false
	}
	msg := strings.TrimSpace(body.Message)
	return msg, msg != ""
}
