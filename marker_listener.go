package mapboxgl

import "github.com/wippyai/mapbox-gl/event"

// Marker listeners implement any subset of these. A value cannot serve as
// both a Map and a Marker drag listener since the method names coincide.
type (
	MarkerDragStartListener interface{ OnDragStart(m *Marker, e event.MapBaseEvent) }
	MarkerDragListener      interface{ OnDrag(m *Marker, e event.DragEvent) }
	MarkerDragEndListener   interface{ OnDragEnd(m *Marker, e event.DragEvent) }
)

var markerEvents = []binding[*Marker]{
	bind(MarkerDragStartListener.OnDragStart),
	bind(MarkerDragListener.OnDrag),
	bind(MarkerDragEndListener.OnDragEnd),
}
