package client

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/strato-io/strato/pkg/strato"
)

// auxiliaryKeys are envelope siblings that logically belong to the extracted
// resource: the action reference of a mutating call, generated secrets, and
// the console websocket URL. They are merged into the unwrapped value when it
// is a JSON object that does not already define them.
var auxiliaryKeys = []string{"action", "next_actions", "root_password", "password", "wss_url"}

func isAuxiliaryKey(key string) bool {
	for _, aux := range auxiliaryKeys {
		if key == aux {
			return true
		}
	}

	return false
}

// unwrapEnvelope extracts the value at key from a response envelope.
//
// Every successful response wraps its payload under a documented top-level
// key; absence of that key is a protocol violation, never a valid empty
// result, and yields a *strato.EnvelopeError carrying the raw envelope. A
// present key is returned verbatim even when its value is null or empty:
// callers distinguish "empty collection" from "missing key".
func unwrapEnvelope(body []byte, key string) (json.RawMessage, error) {
	var envelope map[string]json.RawMessage

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing response envelope: %w", err)
	}

	value, ok := envelope[key]
	if !ok {
		return nil, &strato.EnvelopeError{Key: key, Envelope: body}
	}

	if isAuxiliaryKey(key) {
		return value, nil
	}

	return mergeAuxiliaries(value, envelope), nil
}

// mergeAuxiliaries splices whitelisted envelope siblings into an unwrapped
// JSON object. Non-object values and objects that already define the key are
// left untouched.
func mergeAuxiliaries(value json.RawMessage, envelope map[string]json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return value
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal(value, &object); err != nil {
		return value
	}

	merged := false

	for _, aux := range auxiliaryKeys {
		sibling, ok := envelope[aux]
		if !ok {
			continue
		}

		if _, exists := object[aux]; exists {
			continue
		}

		object[aux] = sibling
		merged = true
	}

	if !merged {
		return value
	}

	remarshaled, err := json.Marshal(object)
	if err != nil {
		return value
	}

	return remarshaled
}

// decodeEnveloped unwraps the envelope at key and decodes the value into T.
func decodeEnveloped[T any](body []byte, key string) (*T, error) {
	value, err := unwrapEnvelope(body, key)
	if err != nil {
		return nil, err
	}

	var out T

	err = json.Unmarshal(value, &out)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", key, err)
	}

	return &out, nil
}

// decodeEnvelopedList unwraps a collection envelope and its optional meta
// sibling.
func decodeEnvelopedList[T any](body []byte, key string) ([]T, *strato.Meta, error) {
	value, err := unwrapEnvelope(body, key)
	if err != nil {
		return nil, nil, err
	}

	var out []T

	err = json.Unmarshal(value, &out)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", key, err)
	}

	return out, decodeMeta(body), nil
}

// decodeMeta extracts pagination metadata; list envelopes without meta are
// valid.
func decodeMeta(body []byte) *strato.Meta {
	var envelope struct {
		Meta *strato.Meta `json:"meta"`
	}

	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil
	}

	return envelope.Meta
}
