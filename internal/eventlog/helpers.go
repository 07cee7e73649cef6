package eventlog

import "encoding/json"

// payloadAsMap normalizes typed event payloads to a generic map for
// storage. Returns nil when the payload cannot be represented as a JSON
// object.
func payloadAsMap(payload interface{}) map[string]interface{} {
	if payload == nil {
		return nil
	}
	if m, ok := payload.(map[string]interface{}); ok {
		return m
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil
	}

	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return m
}
