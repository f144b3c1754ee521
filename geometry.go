package mapboxgl

import (
	json "github.com/goccy/go-json"
	"github.com/paulmach/orb"

	"github.com/wippyai/mapbox-gl/event"
)

type (
	LngLat       = event.LngLat
	LngLatBounds = event.LngLatBounds
	Point        = event.Point
)

// NewLngLat returns a coordinate pair.
func NewLngLat(lng, lat float64) LngLat {
	return event.NewLngLat(lng, lat)
}

// NewLngLatBounds returns bounds from south-west and north-east corners.
func NewLngLatBounds(sw, ne LngLat) LngLatBounds {
	return event.NewLngLatBounds(sw, ne)
}

// QueryGeometry is the area a feature query covers: a single point or a
// bounding box.
type QueryGeometry struct {
	coords [4]float64
	bbox   bool
}

// PointGeometry queries around one coordinate.
func PointGeometry(lng, lat float64) QueryGeometry {
	return QueryGeometry{coords: [4]float64{lng, lat}}
}

// BBoxGeometry queries a west, south, east, north box.
func BBoxGeometry(west, south, east, north float64) QueryGeometry {
	return QueryGeometry{coords: [4]float64{west, south, east, north}, bbox: true}
}

// ScreenPointGeometry queries at the point of a mouse or touch event.
// X and Y are passed through as the first and second coordinates.
func ScreenPointGeometry(p Point) QueryGeometry {
	return PointGeometry(p.X, p.Y)
}

// LngLatGeometry queries around ll.
func LngLatGeometry(ll LngLat) QueryGeometry {
	return PointGeometry(ll.Lng, ll.Lat)
}

// BoundsGeometry queries the area of b.
func BoundsGeometry(b LngLatBounds) QueryGeometry {
	return BBoxGeometry(b.West(), b.South(), b.East(), b.North())
}

// OrbGeometry converts an orb.Point or orb.Bound. Other geometries are
// queried by their bounding box.
func OrbGeometry(g orb.Geometry) QueryGeometry {
	if p, ok := g.(orb.Point); ok {
		return PointGeometry(p[0], p[1])
	}
	b := g.Bound()
	return BBoxGeometry(b.Min[0], b.Min[1], b.Max[0], b.Max[1])
}

// IsBBox reports whether g is a bounding box.
func (g QueryGeometry) IsBBox() bool {
	return g.bbox
}

// Slice returns the wire form: [lng, lat] or [west, south, east, north].
func (g QueryGeometry) Slice() []float64 {
	if g.bbox {
		return g.coords[:]
	}
	return g.coords[:2]
}

func (g QueryGeometry) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Slice())
}
