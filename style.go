package mapboxgl

import (
	"go.uber.org/zap"

	"github.com/wippyai/mapbox-gl/engine"
	"github.com/wippyai/mapbox-gl/errors"
	"github.com/wippyai/mapbox-gl/style"
)

// SetStyle replaces the whole style with s.
func (m *Map) SetStyle(s *style.Style, opts *style.Options) error {
	if s == nil {
		return errors.InvalidInput(errors.PhaseEncode, "style is nil")
	}
	if err := s.Validate(); err != nil {
		return err
	}
	return m.setStyle(style.Inline(s), opts)
}

// SetStyleRef replaces the style with the one at url, e.g.
// "mapbox://styles/mapbox/dark-v11".
func (m *Map) SetStyleRef(url string, opts *style.Options) error {
	if url == "" {
		return errors.InvalidInput(errors.PhaseEncode, "style url is empty")
	}
	return m.setStyle(style.Ref(url), opts)
}

func (m *Map) setStyle(s style.StyleOrRef, opts *style.Options) error {
	if opts == nil {
		return m.invoke("setStyle", s)
	}
	return m.invoke("setStyle", s, opts)
}

// Style returns a snapshot of the current style document.
func (m *Map) Style() (*style.Style, error) {
	v, err := m.call("getStyle")
	if err != nil {
		return nil, err
	}
	var s style.Style
	if err := engine.FromWire(v, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// AddLayer adds l to the style, below the layer beforeID when it is set.
func (m *Map) AddLayer(l style.Layer, beforeID string) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if m.HasLayer(l.ID) {
		return errors.InvalidInput(errors.PhaseRuntime, "layer "+l.ID+" already exists")
	}
	if l.Type.NeedsSource() && !m.HasSource(l.Source) {
		return errors.NotFound(errors.PhaseRuntime, "source", l.Source)
	}
	if beforeID == "" {
		return m.invoke("addLayer", l)
	}
	if !m.HasLayer(beforeID) {
		return errors.NotFound(errors.PhaseRuntime, "layer", beforeID)
	}
	return m.invoke("addLayer", l, beforeID)
}

// Layer returns the current definition of the layer id.
func (m *Map) Layer(id string) (style.Layer, bool, error) {
	var l style.Layer
	v, err := m.call("getLayer", id)
	if err != nil || engine.IsNullish(v) {
		return l, false, err
	}
	if err := engine.FromWire(v, &l); err != nil {
		return l, false, err
	}
	return l, true, nil
}

func (m *Map) HasLayer(id string) bool {
	v, err := m.call("getLayer", id)
	return err == nil && !engine.IsNullish(v)
}

func (m *Map) RemoveLayer(id string) error {
	if err := m.requireLayer(id); err != nil {
		return err
	}
	_, err := m.call("removeLayer", id)
	return err
}

// MoveLayer moves the layer id below beforeID, or to the top when beforeID
// is empty.
func (m *Map) MoveLayer(id, beforeID string) error {
	if err := m.requireLayer(id); err != nil {
		return err
	}
	if beforeID == "" {
		_, err := m.call("moveLayer", id)
		return err
	}
	if err := m.requireLayer(beforeID); err != nil {
		return err
	}
	_, err := m.call("moveLayer", id, beforeID)
	return err
}

// SetPaintProperty sets one paint property. A nil value resets it.
func (m *Map) SetPaintProperty(layerID, name string, value any) error {
	return m.setLayerProperty("setPaintProperty", layerID, name, value)
}

// SetLayoutProperty sets one layout property. A nil value resets it.
func (m *Map) SetLayoutProperty(layerID, name string, value any) error {
	return m.setLayerProperty("setLayoutProperty", layerID, name, value)
}

// SetVisibility shows or hides a layer.
func (m *Map) SetVisibility(layerID string, visible bool) error {
	if visible {
		return m.SetLayoutProperty(layerID, "visibility", style.Visible)
	}
	return m.SetLayoutProperty(layerID, "visibility", style.None)
}

// SetFilter replaces the filter of a layer. A nil filter removes it.
func (m *Map) SetFilter(layerID string, filter style.Expression) error {
	if err := m.requireLayer(layerID); err != nil {
		return err
	}
	if filter == nil {
		_, err := m.call("setFilter", layerID, nil)
		return err
	}
	return m.invoke("setFilter", layerID, filter)
}

func (m *Map) setLayerProperty(method, layerID, name string, value any) error {
	if err := m.requireLayer(layerID); err != nil {
		return err
	}
	if value == nil {
		_, err := m.call(method, layerID, name, nil)
		return err
	}
	return m.invoke(method, layerID, name, value)
}

func (m *Map) requireLayer(id string) error {
	if m.closed.Load() {
		return errors.Closed("map")
	}
	if !m.HasLayer(id) {
		return errors.NotFound(errors.PhaseRuntime, "layer", id)
	}
	return nil
}

// AddSource adds src to the style under id.
func (m *Map) AddSource(id string, src style.Source) error {
	if err := src.Validate(id); err != nil {
		return err
	}
	if m.HasSource(id) {
		return errors.InvalidInput(errors.PhaseRuntime, "source "+id+" already exists")
	}
	return m.invoke("addSource", id, src)
}

// AddVectorSource adds a vector tile source backed by a TileJSON url.
func (m *Map) AddVectorSource(id, url string) error {
	return m.AddSource(id, style.VectorSource(url))
}

// AddGeoJSONSource adds an inline GeoJSON source.
func (m *Map) AddGeoJSONSource(id string, data style.GeoJSONData) error {
	return m.AddSource(id, style.GeoJSONSource(data))
}

// AddGeoJSONSourceFromURL adds a GeoJSON source fetched from url.
func (m *Map) AddGeoJSONSourceFromURL(id, url string) error {
	return m.AddSource(id, style.GeoJSONSource(style.URLData(url)))
}

func (m *Map) HasSource(id string) bool {
	v, err := m.call("getSource", id)
	return err == nil && !engine.IsNullish(v)
}

// RemoveSource removes the source id. A source still used by a layer stays
// and the map reports an error event.
func (m *Map) RemoveSource(id string) error {
	if m.closed.Load() {
		return errors.Closed("map")
	}
	if !m.HasSource(id) {
		return errors.NotFound(errors.PhaseRuntime, "source", id)
	}
	_, err := m.call("removeSource", id)
	return err
}

// IsSourceLoaded reports whether the source id has finished loading.
func (m *Map) IsSourceLoaded(id string) (bool, error) {
	if m.closed.Load() {
		return false, errors.Closed("map")
	}
	if !m.HasSource(id) {
		return false, errors.NotFound(errors.PhaseRuntime, "source", id)
	}
	v, err := m.call("isSourceLoaded", id)
	if err != nil {
		return false, err
	}
	return v.Bool(), nil
}

// AreTilesLoaded reports whether every visible tile has loaded.
func (m *Map) AreTilesLoaded() bool { return m.flag("areTilesLoaded") }

// GeoJSONSource returns the GeoJSON source registered under id.
func (m *Map) GeoJSONSource(id string) (*GeoJSONSource, bool) {
	v, err := m.call("getSource", id)
	if err != nil || engine.IsNullish(v) {
		return nil, false
	}
	if t := v.Get("type").String(); t != string(style.SourceGeoJSON) {
		Logger().Debug("source is not geojson", zap.String("source", id), zap.String("type", t))
		return nil, false
	}
	return &GeoJSONSource{m: m, id: id, inner: v}, true
}

// GeoJSONSource is a live GeoJSON source of a Map.
type GeoJSONSource struct {
	m     *Map
	inner engine.Value
	id    string
}

func (s *GeoJSONSource) ID() string { return s.id }

// SetData replaces the source data and triggers a redraw.
func (s *GeoJSONSource) SetData(data style.GeoJSONData) error {
	if s.m.closed.Load() {
		return errors.Closed("map")
	}
	v, err := engine.ToWire(s.m.rt, data)
	if err != nil {
		return err
	}
	_, err = s.inner.Call("setData", v)
	return err
}

// Data returns the current source data.
func (s *GeoJSONSource) Data() (style.GeoJSONData, error) {
	var d style.GeoJSONData
	if s.m.closed.Load() {
		return d, errors.Closed("map")
	}
	v, err := s.inner.Call("getData")
	if err != nil {
		return d, err
	}
	err = engine.FromWire(v, &d)
	return d, err
}
