package mapboxgl

import (
	"runtime"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/wippyai/mapbox-gl/engine"
	"github.com/wippyai/mapbox-gl/errors"
	"github.com/wippyai/mapbox-gl/event"
)

func mapBinding(t *testing.T, name string) binding[*Map] {
	t.Helper()
	for _, b := range mapEvents {
		if b.name == name {
			return b
		}
	}
	t.Fatalf("no binding for %q", name)
	return binding[*Map]{}
}

func TestEventName(t *testing.T) {
	tests := []struct {
		method string
		want   string
	}{
		{"OnMouseDown", "mousedown"},
		{"OnDblClick", "dblclick"},
		{"OnWebGLContextLost", "webglcontextlost"},
		{"OnBoxZoomCancel", "boxzoomcancel"},
		{"OnStyleImageMissing", "styleimagemissing"},
		{"OnError", "error"},
	}
	for _, tt := range tests {
		if got := eventName(tt.method); got != tt.want {
			t.Errorf("eventName(%q) = %q, want %q", tt.method, got, tt.want)
		}
	}
}

func TestEventTables(t *testing.T) {
	if len(mapEvents) != 48 {
		t.Fatalf("map table has %d events, want 48", len(mapEvents))
	}
	seen := make(map[string]bool)
	for _, b := range mapEvents {
		if seen[b.name] {
			t.Fatalf("duplicate map event %q", b.name)
		}
		seen[b.name] = true
	}
	want := map[string]event.Kind{
		"load":       event.KindBase,
		"click":      event.KindMouse,
		"touchend":   event.KindTouch,
		"wheel":      event.KindWheel,
		"move":       event.KindMap,
		"moveend":    event.KindDrag,
		"dragstart":  event.KindBase,
		"boxzoomend": event.KindBoxZoom,
		"styledata":  event.KindData,
		"error":      event.KindError,
	}
	for _, b := range mapEvents {
		if k, ok := want[b.name]; ok && k != b.kind {
			t.Errorf("%s decodes as %v, want %v", b.name, b.kind, k)
		}
	}

	var marker []string
	for _, b := range markerEvents {
		marker = append(marker, b.name)
	}
	if len(marker) != 3 || marker[0] != "dragstart" || marker[1] != "drag" || marker[2] != "dragend" {
		t.Fatalf("marker events = %v", marker)
	}
}

type noEvents struct{}

func (noEvents) OnSomethingElse() {}

func TestOn_Rejects(t *testing.T) {
	rt := newTestRuntime(t)
	m := newTestMap(t, rt)

	if _, err := m.On(nil); !errors.IsKind(err, errors.KindInvalidInput) {
		t.Fatalf("nil listener: got %v", err)
	}
	if _, err := m.On(noEvents{}); !errors.IsKind(err, errors.KindInvalidInput) {
		t.Fatalf("listener without event methods: got %v", err)
	}
	if _, err := m.OnLayer("", &recorder{}); !errors.IsKind(err, errors.KindInvalidInput) {
		t.Fatalf("empty layer id: got %v", err)
	}
	if m.Listeners() != 0 {
		t.Fatalf("rejected listeners were registered: %d", m.Listeners())
	}
}

func TestHandle_SubscribesOnlyImplementedEvents(t *testing.T) {
	rt := newTestRuntime(t)
	m := newTestMap(t, rt)

	id, err := m.On(&recorder{})
	if err != nil {
		t.Fatal(err)
	}
	h, ok, _ := m.handles.Get(id)
	if !ok {
		t.Fatal("handle not stored")
	}
	got := map[string]bool{}
	for _, name := range h.Events() {
		got[name] = true
	}
	for _, name := range []string{"load", "click", "mousemove", "error"} {
		if !got[name] {
			t.Errorf("missing subscription %q", name)
		}
	}
	if len(got) != 4 {
		t.Fatalf("events = %v", h.Events())
	}

	listens, err := m.Foreign().Call("listens", "click")
	if err != nil || !listens.Bool() {
		t.Fatal("foreign map has no click listener")
	}
	if err := m.Off(id); err != nil {
		t.Fatal(err)
	}
	listens, _ = m.Foreign().Call("listens", "click")
	if listens.Bool() {
		t.Fatal("Off left the foreign click listener subscribed")
	}
}

// reentrant fires another event from inside its own handler.
type reentrant struct {
	clicks int
	moves  int
}

func (r *reentrant) OnClick(m *Map, _ event.MapMouseEvent) {
	r.clicks++
	_ = m.Fire("click", mousePayload(1, 1))
	_ = m.Fire("mousemove", mousePayload(1, 1))
}

func (r *reentrant) OnMouseMove(*Map, event.MapMouseEvent) { r.moves++ }

func TestDispatch_Reentrancy(t *testing.T) {
	rt := newTestRuntime(t)
	m := newTestMap(t, rt)
	logs := observeLogs(t)

	r := &reentrant{}
	if _, err := m.On(r); err != nil {
		t.Fatal(err)
	}
	if err := m.Fire("click", mousePayload(0, 0)); err != nil {
		t.Fatal(err)
	}

	if r.clicks != 1 || r.moves != 0 {
		t.Fatalf("clicks=%d moves=%d, want 1 and 0", r.clicks, r.moves)
	}
	rejected := logs.FilterMessage("handler is being called somewhere").All()
	if len(rejected) != 2 {
		t.Fatalf("got %d reentrancy logs, want 2", len(rejected))
	}
	if rejected[0].Level != zapcore.ErrorLevel || rejected[1].ContextMap()["event"] != "mousemove" {
		t.Fatalf("unexpected reentrancy logs %v", rejected)
	}

	// The guard is released once the outer call returns.
	if err := m.Fire("mousemove", mousePayload(0, 0)); err != nil {
		t.Fatal(err)
	}
	if r.moves != 1 {
		t.Fatalf("moves = %d after the outer call returned", r.moves)
	}
}

type panicky struct{}

func (panicky) OnLoad(*Map, event.MapBaseEvent) { panic("boom") }

func TestDispatch_ListenerIsolation(t *testing.T) {
	rt := newTestRuntime(t)
	m := newTestMap(t, rt)
	logs := observeLogs(t)

	first, second := &recorder{}, &recorder{}
	for _, l := range []any{first, panicky{}, second} {
		if _, err := m.On(l); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.Fire("load", nil); err != nil {
		t.Fatal(err)
	}
	if first.loads != 1 || second.loads != 1 {
		t.Fatalf("loads = %d, %d; a panicking listener blocked the others", first.loads, second.loads)
	}
	panics := logs.FilterMessage("listener panicked").All()
	if len(panics) != 1 || panics[0].ContextMap()["panic"] != "boom" {
		t.Fatalf("panic logs = %v", panics)
	}

	// A recovered panic leaves the guard usable.
	if err := m.Fire("load", nil); err != nil {
		t.Fatal(err)
	}
	if logs.FilterMessage("listener panicked").Len() != 2 {
		t.Fatal("panicking listener was not called again")
	}
}

func TestDispatch_ClosedOwner(t *testing.T) {
	rt := newTestRuntime(t)
	m := newTestMap(t, rt)
	logs := observeLogs(t)

	rec := &recorder{}
	id, err := m.On(rec)
	if err != nil {
		t.Fatal(err)
	}
	h, _, _ := m.handles.Get(id)
	fn := h.subs[0].fn

	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	payload, err := rt.ParseJSON([]byte(`{"type":"load"}`))
	if err != nil {
		t.Fatal(err)
	}
	// Released functions ignore calls; build a live dispatcher over the same
	// resolver to check what a queued call would see.
	call := dispatcher("map", m.resolver(), &guarded{listener: rec}, mapBinding(t, "load"))
	call(nil, []engine.Value{payload})
	_, _ = fn.Invoke(payload)

	if rec.loads != 0 {
		t.Fatalf("listener ran %d times after Close", rec.loads)
	}
	dropped := logs.FilterMessage("event dropped").All()
	if len(dropped) != 1 {
		t.Fatalf("got %d dropped-owner logs, want 1", len(dropped))
	}
	if err, ok := dropped[0].ContextMap()["error"].(string); !ok || err == "" {
		t.Fatalf("dropped log has no error field: %v", dropped[0].ContextMap())
	}
}

func TestDispatch_CollectedOwner(t *testing.T) {
	rt := newTestRuntime(t)
	logs := observeLogs(t)

	m, err := New(rt, NewMapOptions("pk.test", "map"))
	if err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	if _, err := m.On(rec); err != nil {
		t.Fatal(err)
	}
	self := m.self
	resolve := m.resolver()
	m = nil

	for i := 0; i < 10 && self.Value() != nil; i++ {
		runtime.GC()
	}
	if self.Value() != nil {
		t.Skip("map was not collected")
	}

	// The foreign map still holds the subscribed functions.
	payload, err := rt.ParseJSON([]byte(`{"type":"load"}`))
	if err != nil {
		t.Fatal(err)
	}
	call := dispatcher("map", resolve, &guarded{listener: rec}, mapBinding(t, "load"))
	call(nil, []engine.Value{payload})

	if rec.loads != 0 {
		t.Fatal("listener reached a collected map")
	}
	if logs.FilterMessage("event dropped").Len() != 1 {
		t.Fatalf("logs = %v", logs.All())
	}
}

func TestOnLayer(t *testing.T) {
	rt := newTestRuntime(t)
	m := newTestMap(t, rt)

	if err := m.AddGeoJSONSource("pts", pointsData(t)); err != nil {
		t.Fatal(err)
	}
	if err := m.AddLayer(circleLayer("pts-layer", "pts"), ""); err != nil {
		t.Fatal(err)
	}

	rec := &recorder{}
	id, err := m.OnLayer("pts-layer", rec)
	if err != nil {
		t.Fatal(err)
	}

	// Far from every point: no features, no call.
	if err := m.Fire("click", mousePayload(100, 60)); err != nil {
		t.Fatal(err)
	}
	if err := m.Fire("click", mousePayload(-74.5, 40)); err != nil {
		t.Fatal(err)
	}
	if len(rec.clicks) != 1 {
		t.Fatalf("layer clicks = %d, want 1", len(rec.clicks))
	}
	fs := rec.clicks[0].Features
	if len(fs) != 1 || fs[0].Layer.ID != "pts-layer" || fs[0].Property("name") != "nyc" {
		t.Fatalf("features = %+v", fs)
	}

	h, _, _ := m.handles.Get(id)
	if h.LayerID() != "pts-layer" {
		t.Fatalf("LayerID = %q", h.LayerID())
	}
	if err := m.Off(id); err != nil {
		t.Fatal(err)
	}
	_ = m.Fire("click", mousePayload(-74.5, 40))
	if len(rec.clicks) != 1 {
		t.Fatal("layer listener still subscribed after Off")
	}
}

func TestHandle_DropIsIdempotent(t *testing.T) {
	rt := newTestRuntime(t)
	m := newTestMap(t, rt)

	h, err := newHandle(rt, m.inner, "map", m.resolver(), &recorder{}, mapEvents, "")
	if err != nil {
		t.Fatal(err)
	}
	h.Drop()
	h.Drop()
	if len(h.Events()) != 0 {
		t.Fatalf("events after Drop = %v", h.Events())
	}
}
