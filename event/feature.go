package event

import (
	json "github.com/goccy/go-json"
	"github.com/paulmach/orb/geojson"
)

func init() {
	geojson.CustomJSONMarshaler = goJSON{}
	geojson.CustomJSONUnmarshaler = goJSON{}
}

type goJSON struct{}

func (goJSON) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (goJSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func marshalJSON(v any) ([]byte, error)      { return json.Marshal(v) }
func unmarshalJSON(data []byte, v any) error { return json.Unmarshal(data, v) }

// FeatureLayer identifies the style layer a rendered feature was drawn by.
type FeatureLayer struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Feature is a rendered feature: a GeoJSON feature plus the layer and source
// it came from.
type Feature struct {
	*geojson.Feature
	Layer       FeatureLayer
	Source      string
	SourceLayer string
}

type featureExtras struct {
	Layer       *FeatureLayer `json:"layer,omitempty"`
	Source      string        `json:"source,omitempty"`
	SourceLayer string        `json:"sourceLayer,omitempty"`
}

func (f *Feature) UnmarshalJSON(data []byte) error {
	gf, err := geojson.UnmarshalFeature(data)
	if err != nil {
		return err
	}
	var extras featureExtras
	if err := json.Unmarshal(data, &extras); err != nil {
		return err
	}
	*f = Feature{Feature: gf, Source: extras.Source, SourceLayer: extras.SourceLayer}
	if extras.Layer != nil {
		f.Layer = *extras.Layer
	}
	return nil
}

func (f Feature) MarshalJSON() ([]byte, error) {
	base := []byte(`{"type":"Feature","geometry":null,"properties":null}`)
	if f.Feature != nil {
		var err error
		if base, err = f.Feature.MarshalJSON(); err != nil {
			return nil, err
		}
	}
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(base, &doc); err != nil {
		return nil, err
	}
	if f.Layer != (FeatureLayer{}) {
		raw, err := json.Marshal(f.Layer)
		if err != nil {
			return nil, err
		}
		doc["layer"] = raw
	}
	if f.Source != "" {
		doc["source"], _ = json.Marshal(f.Source)
	}
	if f.SourceLayer != "" {
		doc["sourceLayer"], _ = json.Marshal(f.SourceLayer)
	}
	return json.Marshal(doc)
}

// Property returns a property of the feature, or nil.
func (f Feature) Property(key string) any {
	if f.Feature == nil {
		return nil
	}
	return f.Properties[key]
}
