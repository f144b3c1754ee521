package style

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/mapbox-gl/errors"
)

// ParseJSON decodes and validates a style document.
func ParseJSON(data []byte) (*Style, error) {
	var s Style
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.ParseFailed("style", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ParseYAML decodes a style written as YAML. Keys are the same as in the
// JSON form.
func ParseYAML(data []byte) (*Style, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, errors.ParseFailed("style", err)
	}
	doc, ok := normalize(node).(map[string]any)
	if !ok {
		return nil, errors.ParseFailed("style", fmt.Errorf("top level is %T, want mapping", node))
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.ParseFailed("style", err)
	}
	return ParseJSON(data)
}

// Load reads a style file, picking the decoder by extension.
func Load(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindNotFound, err, "read style "+path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// normalize turns map[any]any produced by YAML into map[string]any so the
// tree can be re-encoded as JSON.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalize(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = normalize(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = normalize(vv)
		}
		return out
	default:
		return v
	}
}
