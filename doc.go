// Package mapboxgl binds the mapbox-gl-js object model to Go.
//
// It constructs foreign Map, Marker and Popup objects, decodes their event
// payloads into typed Go structs, and serializes options, layers and styles
// into the JSON wire format mapbox-gl expects.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	mapboxgl/            Map, Marker, Popup, listener dispatch and feature queries
//	├── engine/          Foreign runtime boundary: goja (headless) and syscall/js
//	├── event/           Event payload structs and their decoders
//	├── style/           Layer, source and style documents (JSON and YAML)
//	├── resource/        Keyed stores for listeners, markers and callbacks
//	├── errors/          Structured error types for debugging
//	├── cmd/mapview/     Terminal map viewer
//	└── examples/basic/  GeoJSON source walkthrough
//
// # Quick Start
//
// Create a map in a headless runtime and react to clicks:
//
//	rt, err := engine.NewHeadless()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Close()
//
//	opts := mapboxgl.NewMapOptions(token, "map").
//	    WithCenter(mapboxgl.NewLngLat(-74.5, 40)).
//	    WithZoom(9)
//	m, err := mapboxgl.New(rt, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer m.Close()
//
//	id, err := m.On(&app{})
//	...
//	rt.RunPending()
//
// # Listeners
//
// A listener is any value with one or more methods from the capability
// interfaces in listener.go, such as LoadListener or ClickListener. On
// subscribes it to exactly the events it has methods for:
//
//	type app struct{}
//
//	func (a *app) OnLoad(m *mapboxgl.Map, e event.MapBaseEvent)   { ... }
//	func (a *app) OnClick(m *mapboxgl.Map, e event.MapMouseEvent) { ... }
//
// The event name is the method name without "On", lowercased. Every
// registration returns a ListenerID; Off releases the foreign functions
// behind it.
//
// Dispatch never reports failures to the foreign caller. A payload that
// cannot be decoded, a call into a listener that is already running, a
// listener panic, or an event arriving after the owner was closed is logged
// through Logger and dropped.
//
// # Thread Safety
//
// A runtime and everything created from it belong to one goroutine. Listener
// reentrancy on that goroutine is detected and rejected, never waited on.
//
// # Ownership
//
// Foreign functions hold only a weak pointer to their Map or Marker. Close
// removes the foreign map and releases every listener, marker, popup and
// pending image callback; events still queued afterwards resolve to a dropped
// owner and do nothing.
package mapboxgl
