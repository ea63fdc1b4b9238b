package builtin

import "encoding/json"

// decodeFields maps a module instance's loose field map onto a typed
// props struct. Authored content is trusted for shape, not for presence:
// missing fields simply stay zero-valued.
func decodeFields(fields map[string]any, v any) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
