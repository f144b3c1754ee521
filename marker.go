package mapboxgl

import (
	"sync/atomic"
	"weak"

	"go.uber.org/zap"

	"github.com/wippyai/mapbox-gl/engine"
	"github.com/wippyai/mapbox-gl/errors"
)

// Marker wraps a foreign mapboxgl.Marker. Its drag listener, if any, reaches
// it through a weak pointer the same way Map listeners do.
type Marker struct {
	rt     engine.Runtime
	inner  engine.Value
	self   weak.Pointer[Marker]
	handle *Handle[*Marker]
	popup  *Popup
	closed atomic.Bool
}

// NewMarker constructs a marker at ll. It is shown once added to a Map.
func NewMarker(rt engine.Runtime, ll LngLat, opts *MarkerOptions) (*Marker, error) {
	if rt == nil {
		return nil, errors.NotInitialized(errors.PhaseRuntime, "runtime")
	}
	if !ll.Valid() {
		return nil, errors.InvalidData(errors.PhaseEncode, []string{"lngLat"}, "invalid position "+ll.String())
	}
	if opts == nil {
		opts = &MarkerOptions{}
	}

	o, err := engine.ToWire(rt, opts)
	if err != nil {
		return nil, err
	}
	inner, err := rt.New("mapboxgl.Marker", o)
	if err != nil {
		return nil, err
	}

	mk := &Marker{rt: rt, inner: inner}
	mk.self = weak.Make(mk)

	if err := mk.SetLngLat(ll); err != nil {
		return nil, err
	}
	return mk, nil
}

// NewMarkerWithListener constructs a marker and subscribes listener to its
// drag events.
func NewMarkerWithListener(rt engine.Runtime, ll LngLat, opts *MarkerOptions, listener any) (*Marker, error) {
	mk, err := NewMarker(rt, ll, opts)
	if err != nil {
		return nil, err
	}
	if err := mk.SetListener(listener); err != nil {
		return nil, err
	}
	return mk, nil
}

func (mk *Marker) resolver() func() (*Marker, bool) {
	self := mk.self
	return func() (*Marker, bool) {
		owner := self.Value()
		if owner == nil || owner.closed.Load() {
			return nil, false
		}
		return owner, true
	}
}

// Foreign returns the wrapped mapboxgl.Marker object.
func (mk *Marker) Foreign() engine.Value {
	return mk.inner
}

func (mk *Marker) call(method string, args ...any) (engine.Value, error) {
	if mk.closed.Load() {
		return nil, errors.Closed("marker")
	}
	return mk.inner.Call(method, args...)
}

// SetListener replaces the marker's drag listener. A nil listener only
// removes the current one.
func (mk *Marker) SetListener(listener any) error {
	if mk.closed.Load() {
		return errors.Closed("marker")
	}
	if mk.handle != nil {
		mk.handle.Drop()
		mk.handle = nil
	}
	if listener == nil {
		return nil
	}

	h, err := newHandle(mk.rt, mk.inner, "marker", mk.resolver(), listener, markerEvents, "")
	if err != nil {
		return err
	}
	mk.handle = h
	Logger().Debug("marker listener set", zap.Strings("events", h.Events()))
	return nil
}

// LngLat returns the marker position.
func (mk *Marker) LngLat() (LngLat, error) {
	var ll LngLat
	v, err := mk.call("getLngLat")
	if err != nil {
		return ll, err
	}
	if engine.IsNullish(v) {
		return ll, errors.FieldMissing(errors.PhaseDecode, "marker", []string{"lngLat"})
	}
	err = engine.FromWire(v, &ll)
	return ll, err
}

func (mk *Marker) SetLngLat(ll LngLat) error {
	if !ll.Valid() {
		return errors.InvalidData(errors.PhaseEncode, []string{"lngLat"}, "invalid position "+ll.String())
	}
	v, err := engine.ToWire(mk.rt, ll)
	if err != nil {
		return err
	}
	_, err = mk.call("setLngLat", v)
	return err
}

func (mk *Marker) SetDraggable(draggable bool) error {
	_, err := mk.call("setDraggable", draggable)
	return err
}

func (mk *Marker) IsDraggable() bool {
	v, err := mk.call("isDraggable")
	return err == nil && v.Bool()
}

// SetRotation rotates the marker by degrees clockwise.
func (mk *Marker) SetRotation(degrees float64) error {
	_, err := mk.call("setRotation", degrees)
	return err
}

func (mk *Marker) Rotation() float64 {
	v, err := mk.call("getRotation")
	if err != nil {
		return 0
	}
	return v.Float()
}

// SetPopup binds p to the marker; TogglePopup opens and closes it. A nil
// popup unbinds the current one.
func (mk *Marker) SetPopup(p *Popup) error {
	if p == nil {
		_, err := mk.call("setPopup", nil)
		if err == nil {
			mk.popup = nil
		}
		return err
	}
	if _, err := mk.call("setPopup", p.inner); err != nil {
		return err
	}
	mk.popup = p
	return nil
}

// Popup returns the bound popup, or nil.
func (mk *Marker) Popup() *Popup {
	return mk.popup
}

// TogglePopup opens the bound popup if it is closed and closes it otherwise.
// It does nothing while the marker is not on a map.
func (mk *Marker) TogglePopup() error {
	_, err := mk.call("togglePopup")
	return err
}

// Fire emits an event on the marker, as a drag gesture would.
func (mk *Marker) Fire(name string, props any) error {
	if mk.closed.Load() {
		return errors.Closed("marker")
	}
	if props == nil {
		_, err := mk.inner.Call("fire", name)
		return err
	}
	v, err := engine.ToWire(mk.rt, props)
	if err != nil {
		return err
	}
	_, err = mk.inner.Call("fire", name, v)
	return err
}

// Close drops the drag listener and detaches the marker. A Map still holding
// the marker keeps its id; removing it later succeeds.
func (mk *Marker) Close() error {
	if mk.closed.Load() {
		return nil
	}
	if mk.handle != nil {
		mk.handle.Drop()
		mk.handle = nil
	}
	_, err := mk.inner.Call("remove")
	mk.closed.Store(true)
	return err
}

func (mk *Marker) Closed() bool {
	return mk.closed.Load()
}

func (mk *Marker) addTo(m *Map) error {
	if _, err := mk.call("addTo", m.inner); err != nil {
		return errors.Wrap(errors.PhaseRuntime, errors.KindForeign, err, "add marker")
	}
	return nil
}

func (mk *Marker) remove() error {
	if mk.closed.Load() {
		return nil
	}
	_, err := mk.inner.Call("remove")
	return err
}
