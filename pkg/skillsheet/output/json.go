// Package output serializes extraction results to JSON.
package output

import (
	"bytes"
	"encoding/json"
)

// ToJSON serializes v to JSON. Non-ASCII text and HTML characters are
// written as-is.
func ToJSON(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// errorBody is the JSON shape of a fatal error.
type errorBody struct {
	Error string `json:"error"`
}

// ErrorJSON renders err as {"error": "..."}.
func ErrorJSON(err error) []byte {
	data, _ := ToJSON(errorBody{Error: err.Error()}, false)
	return data
}
