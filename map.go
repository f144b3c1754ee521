package mapboxgl

import (
	"sync/atomic"
	"weak"

	"go.uber.org/zap"

	"github.com/wippyai/mapbox-gl/engine"
	"github.com/wippyai/mapbox-gl/errors"
	"github.com/wippyai/mapbox-gl/resource"
)

// Map wraps a foreign mapboxgl.Map.
//
// Listener callbacks reach the Map only through a weak pointer. Once the Map
// is closed or collected, callbacks still queued in the foreign runtime log
// a warning and return without touching it.
type Map struct {
	rt       engine.Runtime
	inner    engine.Value
	self     weak.Pointer[Map]
	handles  *resource.Store[ListenerID, *Handle[*Map]]
	markers  *resource.Store[MarkerID, *Marker]
	popups   *resource.Store[PopupID, *Popup]
	imageCbs *resource.Store[CallbackID, engine.Func]
	closed   atomic.Bool
}

// New encodes opts, constructs the foreign map in rt and wraps it.
func New(rt engine.Runtime, opts *MapOptions) (*Map, error) {
	if rt == nil {
		return nil, errors.NotInitialized(errors.PhaseRuntime, "runtime")
	}
	if opts == nil {
		return nil, errors.InvalidInput(errors.PhaseEncode, "map options are nil")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	wire, err := engine.ToWire(rt, opts)
	if err != nil {
		return nil, err
	}
	inner, err := rt.New("mapboxgl.Map", wire)
	if err != nil {
		return nil, err
	}

	m := &Map{
		rt:       rt,
		inner:    inner,
		handles:  resource.NewStore[ListenerID, *Handle[*Map]]("map listeners"),
		markers:  resource.NewStore[MarkerID, *Marker]("map markers"),
		popups:   resource.NewStore[PopupID, *Popup]("map popups"),
		imageCbs: resource.NewCallbackStore[CallbackID, engine.Func]("image callbacks"),
	}
	m.self = weak.Make(m)
	m.handles.Subscribe(registryLog{})
	m.markers.Subscribe(registryLog{})
	m.popups.Subscribe(registryLog{})
	m.imageCbs.Subscribe(registryLog{})

	Logger().Debug("map created", zap.String("container", opts.Container))
	return m, nil
}

// registryLog traces registry changes at debug level.
type registryLog struct{}

func (registryLog) OnResourceEvent(e resource.Event) {
	Logger().Debug("registry "+e.Type.String(), zap.String("store", e.Store), zap.Any("key", e.Key))
}

// resolver returns the weak lookup listener callbacks use to reach m.
func (m *Map) resolver() func() (*Map, bool) {
	self := m.self
	return func() (*Map, bool) {
		owner := self.Value()
		if owner == nil || owner.closed.Load() {
			return nil, false
		}
		return owner, true
	}
}

// Foreign returns the wrapped mapboxgl.Map object.
func (m *Map) Foreign() engine.Value {
	return m.inner
}

// Runtime returns the runtime the map lives in.
func (m *Map) Runtime() engine.Runtime {
	return m.rt
}

// Closed reports whether Close has been called.
func (m *Map) Closed() bool {
	return m.closed.Load()
}

func (m *Map) call(method string, args ...any) (engine.Value, error) {
	if m.closed.Load() {
		return nil, errors.Closed("map")
	}
	return m.inner.Call(method, args...)
}

// On subscribes listener to every map event it has a method for.
func (m *Map) On(listener any) (ListenerID, error) {
	return m.on(listener, "")
}

// OnLayer subscribes listener to events on features of one style layer.
// Mouse and touch events carry only the features of that layer.
func (m *Map) OnLayer(layerID string, listener any) (ListenerID, error) {
	if layerID == "" {
		return ListenerID{}, errors.InvalidInput(errors.PhaseRegistry, "layer id is empty")
	}
	return m.on(listener, layerID)
}

func (m *Map) on(listener any, layerID string) (ListenerID, error) {
	if m.closed.Load() {
		return ListenerID{}, errors.Closed("map")
	}

	h, err := newHandle(m.rt, m.inner, "map", m.resolver(), listener, mapEvents, layerID)
	if err != nil {
		return ListenerID{}, err
	}

	id := NewListenerID()
	if err := m.handles.Add(id, h); err != nil {
		h.Drop()
		return ListenerID{}, err
	}

	Logger().Debug("listener added",
		zap.Stringer("id", id),
		zap.String("layer", layerID),
		zap.Strings("events", h.Events()))
	return id, nil
}

// Off unsubscribes and releases the listener registered under id.
func (m *Map) Off(id ListenerID) error {
	_, ok, err := m.handles.Remove(id)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NotFound(errors.PhaseRegistry, "listener", id.String())
	}
	return nil
}

// Listeners returns the number of active listener registrations.
func (m *Map) Listeners() int {
	return m.handles.Len()
}

// AddMarker attaches mk to the map.
func (m *Map) AddMarker(mk *Marker) (MarkerID, error) {
	if m.closed.Load() {
		return MarkerID{}, errors.Closed("map")
	}
	if mk == nil {
		return MarkerID{}, errors.InvalidInput(errors.PhaseRegistry, "marker is nil")
	}
	if err := mk.addTo(m); err != nil {
		return MarkerID{}, err
	}

	id := NewMarkerID()
	if err := m.markers.Add(id, mk); err != nil {
		if rerr := mk.remove(); rerr != nil {
			Logger().Warn("failed to detach marker", zap.Error(rerr))
		}
		return MarkerID{}, err
	}
	return id, nil
}

// RemoveMarker detaches the marker registered under id.
func (m *Map) RemoveMarker(id MarkerID) error {
	mk, ok, err := m.markers.Remove(id)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NotFound(errors.PhaseRegistry, "marker", id.String())
	}
	return mk.remove()
}

// Marker returns the marker registered under id.
func (m *Map) Marker(id MarkerID) (*Marker, bool) {
	mk, ok, err := m.markers.Get(id)
	if err != nil {
		Logger().Warn("marker lookup failed", zap.Error(err))
		return nil, false
	}
	return mk, ok
}

// Markers returns the number of attached markers.
func (m *Map) Markers() int {
	return m.markers.Len()
}

// AddPopup opens p on the map.
func (m *Map) AddPopup(p *Popup) (PopupID, error) {
	if m.closed.Load() {
		return PopupID{}, errors.Closed("map")
	}
	if p == nil {
		return PopupID{}, errors.InvalidInput(errors.PhaseRegistry, "popup is nil")
	}
	if err := p.addTo(m); err != nil {
		return PopupID{}, err
	}

	id := NewPopupID()
	if err := m.popups.Add(id, p); err != nil {
		if rerr := p.remove(); rerr != nil {
			Logger().Warn("failed to close popup", zap.Error(rerr))
		}
		return PopupID{}, err
	}
	return id, nil
}

// RemovePopup closes the popup registered under id.
func (m *Map) RemovePopup(id PopupID) error {
	p, ok, err := m.popups.Remove(id)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NotFound(errors.PhaseRegistry, "popup", id.String())
	}
	return p.remove()
}

// Popup returns the popup registered under id.
func (m *Map) Popup(id PopupID) (*Popup, bool) {
	p, ok, err := m.popups.Get(id)
	if err != nil {
		Logger().Warn("popup lookup failed", zap.Error(err))
		return nil, false
	}
	return p, ok
}

// Fire emits an event through the foreign event bus. props is encoded to its
// wire form and becomes the event object; nil sends no properties.
func (m *Map) Fire(name string, props any) error {
	if m.closed.Load() {
		return errors.Closed("map")
	}
	if props == nil {
		_, err := m.inner.Call("fire", name)
		return err
	}
	v, err := engine.ToWire(m.rt, props)
	if err != nil {
		return err
	}
	_, err = m.inner.Call("fire", name, v)
	return err
}

// Close removes the foreign map, then drops every listener, marker, popup
// and pending image callback. remove listeners still see the final "remove"
// event. Closing twice is a no-op.
func (m *Map) Close() error {
	if m.closed.Load() {
		return nil
	}

	_, removeErr := m.inner.Call("remove")
	m.closed.Store(true)

	var firstErr error
	for _, teardown := range []func() error{
		m.handles.Clear,
		m.markers.Clear,
		m.popups.Clear,
		m.imageCbs.Clear,
	} {
		if err := teardown(); err != nil {
			Logger().Warn("map teardown incomplete", zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if removeErr != nil {
		return removeErr
	}
	return firstErr
}
