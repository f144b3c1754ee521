// Package errors provides structured error types for the mapbox-gl binding.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: event kind, field path, Go/wire type
// names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindTypeMismatch).
//		Event("MapMouseEvent").
//		Path("lngLat").
//		GoType("event.LngLat").
//		WireType("string").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.FieldMissing(errors.PhaseDecode, "MapMouseEvent", []string{"lngLat"})
//	err := errors.NotFound(errors.PhaseRegistry, "marker", id.String())
//
// Errors raised inside foreign-invoked dispatch (decode failures, reentrancy,
// dropped owners) are never returned to the foreign caller; the binding logs
// them and skips the handler.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
