// Package engine provides the foreign runtime boundary of the binding.
//
// Everything the binding does to mapbox-gl-js goes through three interfaces:
//
//	Runtime - the host: globals, constructors, callbacks, JSON
//	Value   - a handle to a foreign value (property access, method calls)
//	Func    - a Go callback reachable from the foreign side until released
//
// # Backends
//
// GojaRuntime embeds a goja VM with a headless mapboxgl namespace (camera,
// style, sources, layers, images, markers, popups and the event bus, without
// rendering). It backs tests and terminal applications:
//
//	rt, err := engine.NewHeadless()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, err := rt.New("mapboxgl.Map", opts)
//	rt.RunPending() // deliver "load"
//
// BrowserRuntime (js/wasm builds only) wraps syscall/js and talks to the real
// mapbox-gl-js bundle loaded by the page.
//
// # Wire format
//
// Structured data crosses the boundary as JSON: ToWire marshals a Go value
// with struct tags and materializes it with JSON.parse, FromWire stringifies a
// foreign value and unmarshals it. Unset optional fields are omitted, never
// sent as null.
//
// # Task loop
//
// The goja backend has no event loop of its own. setTimeout, clearTimeout and
// queueMicrotask enqueue tasks on a virtual clock that RunPending drains on
// the caller's goroutine, microtasks first, then timers by due time.
package engine
