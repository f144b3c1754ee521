package mapboxgl

import (
	"github.com/wippyai/mapbox-gl/engine"
	"github.com/wippyai/mapbox-gl/errors"
)

// BoxZoomHandler controls shift-drag box zooming.
type BoxZoomHandler struct {
	m     *Map
	inner engine.Value
}

// BoxZoom returns the map's box zoom handler.
func (m *Map) BoxZoom() (*BoxZoomHandler, error) {
	if m.closed.Load() {
		return nil, errors.Closed("map")
	}
	v := m.inner.Get("boxZoom")
	if engine.IsNullish(v) {
		return nil, errors.NotInitialized(errors.PhaseRuntime, "box zoom handler")
	}
	return &BoxZoomHandler{m: m, inner: v}, nil
}

func (h *BoxZoomHandler) Enable() error  { return h.do("enable") }
func (h *BoxZoomHandler) Disable() error { return h.do("disable") }

func (h *BoxZoomHandler) IsEnabled() bool { return h.is("isEnabled") }

// IsActive reports whether a box zoom gesture is in progress.
func (h *BoxZoomHandler) IsActive() bool { return h.is("isActive") }

func (h *BoxZoomHandler) do(method string) error {
	if h.m.closed.Load() {
		return errors.Closed("map")
	}
	_, err := h.inner.Call(method)
	return err
}

func (h *BoxZoomHandler) is(method string) bool {
	if h.m.closed.Load() {
		return false
	}
	v, err := h.inner.Call(method)
	return err == nil && v.Bool()
}
