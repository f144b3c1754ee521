package mapboxgl

import (
	"github.com/wippyai/mapbox-gl/engine"
	"github.com/wippyai/mapbox-gl/errors"
)

// Popup wraps a foreign mapboxgl.Popup.
type Popup struct {
	rt    engine.Runtime
	inner engine.Value
}

// NewPopup constructs a popup anchored at ll. It opens once added to a Map.
func NewPopup(rt engine.Runtime, ll LngLat, opts *PopupOptions) (*Popup, error) {
	if rt == nil {
		return nil, errors.NotInitialized(errors.PhaseRuntime, "runtime")
	}
	if opts == nil {
		opts = &PopupOptions{}
	}
	o, err := engine.ToWire(rt, opts)
	if err != nil {
		return nil, err
	}
	inner, err := rt.New("mapboxgl.Popup", o)
	if err != nil {
		return nil, err
	}
	p := &Popup{rt: rt, inner: inner}
	if err := p.SetLngLat(ll); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Popup) Foreign() engine.Value {
	return p.inner
}

func (p *Popup) SetLngLat(ll LngLat) error {
	if !ll.Valid() {
		return errors.InvalidData(errors.PhaseEncode, []string{"lngLat"}, "invalid position "+ll.String())
	}
	v, err := engine.ToWire(p.rt, ll)
	if err != nil {
		return err
	}
	_, err = p.inner.Call("setLngLat", v)
	return err
}

func (p *Popup) LngLat() (LngLat, error) {
	var ll LngLat
	v, err := p.inner.Call("getLngLat")
	if err != nil {
		return ll, err
	}
	err = engine.FromWire(v, &ll)
	return ll, err
}

// SetHTML sets the content to an HTML fragment.
func (p *Popup) SetHTML(html string) error {
	_, err := p.inner.Call("setHTML", html)
	return err
}

// SetText sets the content to plain text.
func (p *Popup) SetText(text string) error {
	_, err := p.inner.Call("setText", text)
	return err
}

// SetMaxWidth sets a CSS max-width such as "300px" or "none".
func (p *Popup) SetMaxWidth(width string) error {
	_, err := p.inner.Call("setMaxWidth", width)
	return err
}

// IsOpen reports whether the popup is on a map.
func (p *Popup) IsOpen() bool {
	v, err := p.inner.Call("isOpen")
	return err == nil && v.Bool()
}

func (p *Popup) addTo(m *Map) error {
	if _, err := p.inner.Call("addTo", m.inner); err != nil {
		return errors.Wrap(errors.PhaseRuntime, errors.KindForeign, err, "open popup")
	}
	return nil
}

func (p *Popup) remove() error {
	_, err := p.inner.Call("remove")
	return err
}
