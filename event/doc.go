// Package event decodes mapbox-gl event payloads into typed snapshots.
//
// Each decoder reads the fields its event kind requires. A missing required
// field fails with a KindFieldMissing error naming the event and the field;
// a field of the wrong shape fails with KindTypeMismatch. List fields that
// mapbox-gl omits when empty (features, points, lngLats) decode to empty
// slices instead:
//
//	ev, err := event.DecodeMouse("click", payload)
//	if errors.IsKind(err, errors.KindFieldMissing) {
//	    // err.(*errors.Error).Field() == "lngLat"
//	}
//
// Nested plain data (points, positions, features) goes through the JSON wire
// decoder. DOM events are read property by property into MouseEvent,
// TouchEvent and WheelEvent snapshots.
//
// Features are GeoJSON features (github.com/paulmach/orb/geojson) annotated
// with the style layer and source that rendered them.
package event
