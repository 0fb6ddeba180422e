package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"solotrip/pkg/llm"
)

// decodeStrict extracts the JSON object from a completion, checks that every
// required key is present and non-null, then decodes it into dst with type checking.
func decodeStrict(raw string, dst any, required ...string) error {
	cleaned := []byte(llm.ExtractJSONObject(raw))

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(cleaned, &probe); err != nil {
		return fmt.Errorf("completion is not a JSON object: %w", err)
	}
	for _, key := range required {
		v, ok := probe[key]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return fmt.Errorf("missing required key %q", key)
		}
	}

	if err := json.Unmarshal(cleaned, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return fmt.Errorf("field %q: expected %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value)
		}
		return fmt.Errorf("decoding completion: %w", err)
	}
	return nil
}
