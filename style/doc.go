// Package style models mapbox-gl style documents: layers, sources and the
// top-level Style, plus StyleOrRef for "inline document or style url".
//
// Layers carry their type as a discriminant ("fill", "line", ...) and keep
// layout and paint properties as kebab-case members. Property values are
// literals or Expressions. Every optional member is omitted when unset, so a
// marshaled layer never contains null:
//
//	l := style.NewLayer("parks", style.Fill, "parks").
//	    WithPaint(style.Paint{FillColor: "#2a2", FillOpacity: 0.6}).
//	    WithFilter(style.Expr("==", style.Get("kind"), "park"))
//
// GeoJSON sources wrap an orb document:
//
//	src := style.GeoJSONSource(style.FeatureCollectionData(fc))
//
// Styles can also be read from JSON or YAML files with Load.
package style
