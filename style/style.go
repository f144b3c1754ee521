package style

import (
	"bytes"

	json "github.com/goccy/go-json"

	"github.com/wippyai/mapbox-gl/errors"
)

// DefaultRef is the style a map loads when none is given.
const DefaultRef = "mapbox://styles/mapbox/streets-v11"

// Version is the style-spec version this package emits.
const Version = 8

// Style is an inline style document.
type Style struct {
	Zoom     *float64          `json:"zoom,omitempty"`
	Bearing  *float64          `json:"bearing,omitempty"`
	Pitch    *float64          `json:"pitch,omitempty"`
	Sources  map[string]Source `json:"sources"`
	Metadata map[string]any    `json:"metadata,omitempty"`
	Name     string            `json:"name,omitempty"`
	Sprite   string            `json:"sprite,omitempty"`
	Glyphs   string            `json:"glyphs,omitempty"`
	Center   []float64         `json:"center,omitempty"`
	Layers   []Layer           `json:"layers"`
	Version  int               `json:"version"`
}

// New returns an empty version 8 style.
func New() *Style {
	return &Style{
		Version: Version,
		Sources: map[string]Source{},
		Layers:  []Layer{},
	}
}

// AddSource registers a source under id, replacing any previous one.
func (s *Style) AddSource(id string, src Source) *Style {
	if s.Sources == nil {
		s.Sources = map[string]Source{}
	}
	s.Sources[id] = src
	return s
}

// AddLayer appends a layer on top of the stack.
func (s *Style) AddLayer(l Layer) *Style {
	s.Layers = append(s.Layers, l)
	return s
}

// Layer returns the layer with the given id.
func (s *Style) Layer(id string) (Layer, bool) {
	for _, l := range s.Layers {
		if l.ID == id {
			return l, true
		}
	}
	return Layer{}, false
}

// Validate checks version, sources and layers, including that every layer
// references a declared source and that layer ids are unique.
func (s *Style) Validate() error {
	if s.Version != Version {
		return errors.New(errors.PhaseParse, errors.KindInvalidData).
			Path("version").
			Value(s.Version).
			Detail("unsupported style version %d", s.Version).
			Build()
	}
	for id, src := range s.Sources {
		if err := src.Validate(id); err != nil {
			return err
		}
	}
	seen := make(map[string]struct{}, len(s.Layers))
	for _, l := range s.Layers {
		if err := l.Validate(); err != nil {
			return err
		}
		if _, dup := seen[l.ID]; dup {
			return errors.InvalidData(errors.PhaseParse, []string{"layers", l.ID},
				"duplicate layer id "+l.ID)
		}
		seen[l.ID] = struct{}{}
		if l.Type.NeedsSource() {
			if _, ok := s.Sources[l.Source]; !ok {
				return errors.NotFound(errors.PhaseParse, "source", l.Source)
			}
		}
	}
	return nil
}

// StyleOrRef is either an inline Style or a style url such as
// "mapbox://styles/mapbox/dark-v11". On the wire it is the document or the
// bare string.
type StyleOrRef struct {
	Style *Style
	Ref   string
}

// Ref returns a StyleOrRef pointing at url.
func Ref(url string) StyleOrRef {
	return StyleOrRef{Ref: url}
}

// Inline returns a StyleOrRef holding s.
func Inline(s *Style) StyleOrRef {
	return StyleOrRef{Style: s}
}

// Default returns the default style reference.
func Default() StyleOrRef {
	return Ref(DefaultRef)
}

// IsZero reports whether neither a style nor a reference is set.
func (s StyleOrRef) IsZero() bool {
	return s.Style == nil && s.Ref == ""
}

func (s StyleOrRef) MarshalJSON() ([]byte, error) {
	if s.Style != nil {
		return json.Marshal(s.Style)
	}
	if s.Ref == "" {
		return json.Marshal(DefaultRef)
	}
	return json.Marshal(s.Ref)
}

func (s *StyleOrRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*s = StyleOrRef{}
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &s.Ref)
	}
	var doc Style
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	s.Style = &doc
	return nil
}

// Options are the options accepted by Map.SetStyle.
type Options struct {
	Diff                     *bool  `json:"diff,omitempty"`
	LocalIdeographFontFamily string `json:"localIdeographFontFamily,omitempty"`
}
