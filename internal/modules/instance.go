package modules

import "github.com/google/uuid"

// Instance is one content module in a page's ordered module list, as
// authored in the CMS. Fields carry the module-type-specific content and
// are read-only at render time.
type Instance struct {
	Type   string         `json:"_type"`
	Key    string         `json:"_key"`
	Fields map[string]any `json:"fields"`
}

// EnsureKey returns the instance's stable key, minting one for authored
// content that arrived without it. The key identifies the rendered result,
// it never influences ordering.
func (in *Instance) EnsureKey() string {
	if in.Key == "" {
		in.Key = uuid.New().String()
	}
	return in.Key
}

// Rendered is the output of resolving one module instance.
type Rendered struct {
	Key  string `json:"key"`
	Type string `json:"type"`
	HTML string `json:"html"`
}
