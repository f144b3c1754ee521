package mapboxgl

import (
	"github.com/wippyai/mapbox-gl/engine"
	"github.com/wippyai/mapbox-gl/errors"
)

func (m *Map) number(method string) (float64, error) {
	v, err := m.call(method)
	if err != nil {
		return 0, err
	}
	return v.Float(), nil
}

func (m *Map) flag(method string, args ...any) bool {
	v, err := m.call(method, args...)
	if err != nil {
		return false
	}
	return v.Bool()
}

// Center returns the map's geographical center.
func (m *Map) Center() (LngLat, error) {
	var ll LngLat
	v, err := m.call("getCenter")
	if err != nil {
		return ll, err
	}
	err = engine.FromWire(v, &ll)
	return ll, err
}

// Bounds returns the visible area.
func (m *Map) Bounds() (LngLatBounds, error) {
	var b LngLatBounds
	v, err := m.call("getBounds")
	if err != nil {
		return b, err
	}
	err = engine.FromWire(v, &b)
	return b, err
}

func (m *Map) Zoom() (float64, error)    { return m.number("getZoom") }
func (m *Map) Bearing() (float64, error) { return m.number("getBearing") }
func (m *Map) Pitch() (float64, error)   { return m.number("getPitch") }
func (m *Map) MinZoom() (float64, error) { return m.number("getMinZoom") }
func (m *Map) MaxZoom() (float64, error) { return m.number("getMaxZoom") }

// Loaded reports whether the style and initial tiles have loaded.
func (m *Map) Loaded() bool { return m.flag("loaded") }

func (m *Map) IsMoving() bool   { return m.flag("isMoving") }
func (m *Map) IsZooming() bool  { return m.flag("isZooming") }
func (m *Map) IsRotating() bool { return m.flag("isRotating") }

// SetMinZoom sets the minimum zoom, zooming in if the map is below it.
func (m *Map) SetMinZoom(zoom float64) error {
	_, err := m.call("setMinZoom", zoom)
	return err
}

// SetMaxZoom sets the maximum zoom, zooming out if the map is above it.
func (m *Map) SetMaxZoom(zoom float64) error {
	_, err := m.call("setMaxZoom", zoom)
	return err
}

func (m *Map) SetCenter(ll LngLat) error {
	return m.JumpTo(Camera(ll))
}

func (m *Map) SetZoom(zoom float64) error {
	return m.JumpTo(CameraOptions{Zoom: &zoom})
}

// JumpTo changes the camera without animation.
func (m *Map) JumpTo(camera CameraOptions) error {
	return m.invoke("jumpTo", camera)
}

// EaseTo animates the camera to camera.
func (m *Map) EaseTo(camera CameraOptions, anim AnimationOptions) error {
	return m.invoke("easeTo", cameraAnimation{CameraOptions: camera, AnimationOptions: anim})
}

// FlyTo animates the camera along a zoom-out, zoom-in curve.
func (m *Map) FlyTo(camera CameraOptions, anim AnimationOptions) error {
	return m.invoke("flyTo", cameraAnimation{CameraOptions: camera, AnimationOptions: anim})
}

// PanTo pans the map to ll.
func (m *Map) PanTo(ll LngLat, anim AnimationOptions) error {
	return m.invoke("panTo", ll, anim)
}

// PanBy pans the map by an offset in pixels.
func (m *Map) PanBy(x, y float64, anim AnimationOptions) error {
	return m.invoke("panBy", [2]float64{x, y}, anim)
}

func (m *Map) ZoomIn(anim AnimationOptions) error  { return m.invoke("zoomIn", anim) }
func (m *Map) ZoomOut(anim AnimationOptions) error { return m.invoke("zoomOut", anim) }

// FitBounds pans and zooms the map to contain b.
func (m *Map) FitBounds(b LngLatBounds, anim AnimationOptions) error {
	return m.invoke("fitBounds", b, anim)
}

// Stop halts any camera animation in progress.
func (m *Map) Stop() error {
	_, err := m.call("stop")
	return err
}

// Resize fires the resize event after the container changed size.
func (m *Map) Resize() error {
	_, err := m.call("resize")
	return err
}

// invoke encodes every argument to its wire form and calls method with them.
func (m *Map) invoke(method string, args ...any) error {
	if m.closed.Load() {
		return errors.Closed("map")
	}
	wire := make([]any, len(args))
	for i, a := range args {
		v, err := engine.ToWire(m.rt, a)
		if err != nil {
			return err
		}
		wire[i] = v
	}
	_, err := m.call(method, wire...)
	return err
}

// Debug overlays.

func (m *Map) ShowTileBoundaries(show bool) error   { return m.setProperty("showTileBoundaries", show) }
func (m *Map) ShowCollisionBoxes(show bool) error   { return m.setProperty("showCollisionBoxes", show) }
func (m *Map) ShowPadding(show bool) error          { return m.setProperty("showPadding", show) }
func (m *Map) ShowTerrainWireframe(show bool) error { return m.setProperty("showTerrainWireframe", show) }

func (m *Map) setProperty(name string, value any) error {
	if m.closed.Load() {
		return errors.Closed("map")
	}
	return m.inner.Set(name, value)
}
