package main

import (
	"fmt"
	"strings"

	mapboxgl "github.com/wippyai/mapbox-gl"
	"github.com/wippyai/mapbox-gl/engine"
	"github.com/wippyai/mapbox-gl/event"
	"github.com/wippyai/mapbox-gl/style"
)

const maxLogLines = 200

var styleRefs = []string{
	style.DefaultRef,
	"mapbox://styles/mapbox/dark-v11",
	"mapbox://styles/mapbox/satellite-streets-v12",
}

// session owns the runtime and the map. Every method must be called from the
// goroutine that created it.
type session struct {
	rt       *engine.GojaRuntime
	m        *mapboxgl.Map
	cfg      *config
	markers  []mapboxgl.MarkerID
	lines    []string
	styleIdx int
	loaded   bool
}

func newSession(cfg *config) (*session, error) {
	rt, err := engine.NewHeadless()
	if err != nil {
		return nil, err
	}

	center, _ := toLngLat(cfg.Center)
	opts := mapboxgl.NewMapOptions(cfg.Token, cfg.Container).
		WithCenter(center).
		WithZoom(cfg.Zoom)
	if cfg.StyleRef != "" {
		opts.WithStyleRef(cfg.StyleRef)
	}

	m, err := mapboxgl.New(rt, opts)
	if err != nil {
		_ = rt.Close()
		return nil, err
	}

	s := &session{rt: rt, m: m, cfg: cfg}
	if _, err := m.On(s); err != nil {
		s.close()
		return nil, err
	}
	for _, mc := range cfg.Markers {
		ll, _ := toLngLat(mc.At)
		if err := s.addMarker(ll, mc); err != nil {
			s.close()
			return nil, err
		}
	}
	return s, nil
}

func (s *session) close() {
	if err := s.m.Close(); err != nil {
		s.logf("close: %v", err)
	}
	_ = s.rt.Close()
}

// step runs queued timers, which is where camera animations finish and
// image loads complete.
func (s *session) step() int {
	return s.rt.RunPending()
}

func (s *session) logf(format string, args ...any) {
	s.lines = append(s.lines, fmt.Sprintf(format, args...))
	if len(s.lines) > maxLogLines {
		s.lines = s.lines[len(s.lines)-maxLogLines:]
	}
}

// Map listeners.

func (s *session) OnLoad(*mapboxgl.Map, event.MapBaseEvent) {
	s.loaded = true
	s.logf("load")
}

func (s *session) OnClick(m *mapboxgl.Map, e event.MapMouseEvent) {
	s.logf("click %s at (%.0f, %.0f)", e.LngLat, e.Point.X, e.Point.Y)
	g := mapboxgl.LngLatGeometry(e.LngLat)
	features, err := m.QueryRenderedFeatures(&g, nil)
	if err != nil {
		s.logf("  query: %v", err)
		return
	}
	for _, f := range features {
		s.logf("  %s/%s %v", f.Layer.ID, f.Source, f.Properties)
	}
}

func (s *session) OnMoveEnd(m *mapboxgl.Map, _ event.DragEvent) {
	c, err := m.Center()
	if err != nil {
		return
	}
	z, _ := m.Zoom()
	s.logf("moveend %s z%.2f", c, z)
}

func (s *session) OnStyleData(_ *mapboxgl.Map, e event.MapDataEvent) {
	s.logf("styledata (%s)", e.DataType)
}

func (s *session) OnSourceData(_ *mapboxgl.Map, e event.MapDataEvent) {
	if e.SourceID != nil {
		s.logf("sourcedata %s", *e.SourceID)
	}
}

func (s *session) OnError(_ *mapboxgl.Map, message string) {
	s.logf("error: %s", message)
}

// markerLog reports marker drags. It is separate from session since Map and
// Marker drag listeners share method names.
type markerLog struct {
	s   *session
	tag string
}

func (l *markerLog) OnDragStart(*mapboxgl.Marker, event.MapBaseEvent) {
	l.s.logf("marker %s dragstart", l.tag)
}

func (l *markerLog) OnDragEnd(mk *mapboxgl.Marker, _ event.DragEvent) {
	ll, err := mk.LngLat()
	if err != nil {
		l.s.logf("marker %s dragend: %v", l.tag, err)
		return
	}
	l.s.logf("marker %s dropped at %s", l.tag, ll)
}

// Commands.

func (s *session) pan(dx, dy float64) error {
	return s.m.PanBy(dx, dy, mapboxgl.Animation(200))
}

func (s *session) zoomBy(delta float64) error {
	if delta > 0 {
		return s.m.ZoomIn(mapboxgl.Animation(200))
	}
	return s.m.ZoomOut(mapboxgl.Animation(200))
}

func (s *session) flyTo(i int) error {
	if i < 0 || i >= len(s.cfg.Places) {
		return fmt.Errorf("no place %d", i+1)
	}
	p := s.cfg.Places[i]
	ll, err := toLngLat(p.At)
	if err != nil {
		return err
	}
	s.logf("flying to %s", p.Name)
	return s.m.FlyTo(mapboxgl.Camera(ll).WithZoom(p.Zoom), mapboxgl.Animation(800))
}

func (s *session) flyToInput(text string) error {
	v, err := parseLngLat(text)
	if err != nil {
		return err
	}
	ll, err := toLngLat(v)
	if err != nil {
		return err
	}
	return s.m.FlyTo(mapboxgl.Camera(ll), mapboxgl.Animation(800))
}

func (s *session) addMarker(ll mapboxgl.LngLat, mc markerConfig) error {
	opts := (&mapboxgl.MarkerOptions{}).WithDraggable(mc.Draggable)
	if mc.Color != "" {
		opts.WithColor(mc.Color)
	}
	tag := fmt.Sprintf("#%d", len(s.markers)+1)
	mk, err := mapboxgl.NewMarkerWithListener(s.rt, ll, opts, &markerLog{s: s, tag: tag})
	if err != nil {
		return err
	}
	if mc.Popup != "" {
		p, err := mapboxgl.NewPopup(s.rt, ll, nil)
		if err != nil {
			return err
		}
		if err := p.SetText(mc.Popup); err != nil {
			return err
		}
		if err := mk.SetPopup(p); err != nil {
			return err
		}
	}
	id, err := s.m.AddMarker(mk)
	if err != nil {
		return err
	}
	s.markers = append(s.markers, id)
	s.logf("marker %s at %s", tag, ll)
	return nil
}

func (s *session) addMarkerAtCenter() error {
	c, err := s.m.Center()
	if err != nil {
		return err
	}
	return s.addMarker(c, markerConfig{Draggable: true, Color: "#e55e5e"})
}

// dragLastMarker simulates a drag gesture on the newest marker.
func (s *session) dragLastMarker(dLng, dLat float64) error {
	if len(s.markers) == 0 {
		return fmt.Errorf("no markers")
	}
	mk, ok := s.m.Marker(s.markers[len(s.markers)-1])
	if !ok {
		return fmt.Errorf("marker gone")
	}
	ll, err := mk.LngLat()
	if err != nil {
		return err
	}
	if err := mk.Fire("dragstart", nil); err != nil {
		return err
	}
	if err := mk.SetLngLat(mapboxgl.NewLngLat(ll.Lng+dLng, ll.Lat+dLat)); err != nil {
		return err
	}
	return mk.Fire("dragend", nil)
}

// clickCenter simulates a click at the map center.
func (s *session) clickCenter() error {
	c, err := s.m.Center()
	if err != nil {
		return err
	}
	return s.m.Fire("click", map[string]any{
		"originalEvent": map[string]any{"type": "click"},
		"point":         mapboxgl.Point{X: 256, Y: 256},
		"lngLat":        c,
	})
}

func (s *session) cycleStyle() error {
	s.styleIdx = (s.styleIdx + 1) % len(styleRefs)
	return s.m.SetStyleRef(styleRefs[s.styleIdx], nil)
}

func (s *session) applyStyle(st *style.Style, path string) error {
	if err := s.m.SetStyle(st, nil); err != nil {
		return err
	}
	s.logf("style %s applied: %d sources, %d layers", path, len(st.Sources), len(st.Layers))
	return nil
}

func (s *session) status() string {
	c, err := s.m.Center()
	if err != nil {
		return err.Error()
	}
	z, _ := s.m.Zoom()
	b, _ := s.m.Bearing()
	var state []string
	if !s.loaded {
		state = append(state, "loading")
	}
	if s.m.IsMoving() {
		state = append(state, "moving")
	}
	line := fmt.Sprintf("center %s  zoom %.2f  bearing %.0f  markers %d  listeners %d",
		c, z, b, s.m.Markers(), s.m.Listeners())
	if len(state) > 0 {
		line += "  [" + strings.Join(state, ", ") + "]"
	}
	return line
}

func (s *session) tail(n int) []string {
	if n <= 0 || n >= len(s.lines) {
		return s.lines
	}
	return s.lines[len(s.lines)-n:]
}
