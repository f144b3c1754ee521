package mapboxgl

import (
	"github.com/wippyai/mapbox-gl/engine"
	"github.com/wippyai/mapbox-gl/errors"
	"github.com/wippyai/mapbox-gl/event"
)

// QueryRenderedFeatures returns the rendered features inside geometry,
// topmost layer first. A nil geometry queries the whole viewport. Layers
// named in opts must exist.
func (m *Map) QueryRenderedFeatures(geometry *QueryGeometry, opts *QueryFeatureOptions) ([]event.Feature, error) {
	if m.closed.Load() {
		return nil, errors.Closed("map")
	}
	if opts != nil {
		for _, id := range opts.Layers {
			if !m.HasLayer(id) {
				return nil, errors.NotFound(errors.PhaseRuntime, "layer", id)
			}
		}
	}

	args := make([]any, 0, 2)
	if geometry != nil {
		g, err := engine.ToWire(m.rt, geometry)
		if err != nil {
			return nil, err
		}
		args = append(args, g)
	}
	if opts != nil {
		o, err := engine.ToWire(m.rt, opts)
		if err != nil {
			return nil, err
		}
		args = append(args, o)
	}

	v, err := m.call("queryRenderedFeatures", args...)
	if err != nil {
		return nil, err
	}
	return decodeFeatures(v)
}

// QuerySourceFeatures returns every feature of the source id, rendered or
// not.
func (m *Map) QuerySourceFeatures(sourceID string) ([]event.Feature, error) {
	if m.closed.Load() {
		return nil, errors.Closed("map")
	}
	if !m.HasSource(sourceID) {
		return nil, errors.NotFound(errors.PhaseRuntime, "source", sourceID)
	}
	v, err := m.call("querySourceFeatures", sourceID)
	if err != nil {
		return nil, err
	}
	return decodeFeatures(v)
}

func decodeFeatures(v engine.Value) ([]event.Feature, error) {
	features := []event.Feature{}
	if engine.IsNullish(v) {
		return features, nil
	}
	if err := engine.FromWire(v, &features); err != nil {
		return nil, err
	}
	return features, nil
}
