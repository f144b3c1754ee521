package event

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// EarthRadius is the mean radius used by mapbox-gl for distances, in meters.
const EarthRadius = 6371008.8

// LngLat is a geographical position in degrees.
type LngLat struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// NewLngLat returns the position (lng, lat).
func NewLngLat(lng, lat float64) LngLat {
	return LngLat{Lng: lng, Lat: lat}
}

// LngLatFromPoint converts an orb point ([lng, lat]).
func LngLatFromPoint(p orb.Point) LngLat {
	return LngLat{Lng: p.Lon(), Lat: p.Lat()}
}

// Valid reports whether both coordinates are numbers and the latitude is
// within [-90, 90].
func (ll LngLat) Valid() bool {
	return !math.IsNaN(ll.Lng) && !math.IsNaN(ll.Lat) && ll.Lat >= -90 && ll.Lat <= 90
}

// Wrap returns ll with its longitude wrapped into [-180, 180).
func (ll LngLat) Wrap() LngLat {
	lng := math.Mod(math.Mod(ll.Lng+180, 360)+360, 360) - 180
	return LngLat{Lng: lng, Lat: ll.Lat}
}

// DistanceTo returns the great-circle distance to other in meters.
func (ll LngLat) DistanceTo(other LngLat) float64 {
	rad := math.Pi / 180
	lat1 := ll.Lat * rad
	lat2 := other.Lat * rad
	a := math.Sin(lat1)*math.Sin(lat2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Cos((other.Lng-ll.Lng)*rad)
	return EarthRadius * math.Acos(math.Min(a, 1))
}

// ToBounds returns the bounds extending radius meters from ll in every
// direction.
func (ll LngLat) ToBounds(radius float64) LngLatBounds {
	latAccuracy := 360 * radius / (2 * math.Pi * EarthRadius)
	lngAccuracy := latAccuracy / math.Cos(math.Pi/180*ll.Lat)
	return LngLatBounds{
		SW: LngLat{Lng: ll.Lng - lngAccuracy, Lat: ll.Lat - latAccuracy},
		NE: LngLat{Lng: ll.Lng + lngAccuracy, Lat: ll.Lat + latAccuracy},
	}
}

// Array returns [lng, lat].
func (ll LngLat) Array() [2]float64 {
	return [2]float64{ll.Lng, ll.Lat}
}

// Point returns ll as an orb point.
func (ll LngLat) Point() orb.Point {
	return orb.Point{ll.Lng, ll.Lat}
}

func (ll LngLat) String() string {
	return fmt.Sprintf("LngLat(%g, %g)", ll.Lng, ll.Lat)
}

// LngLatBounds is a geographical bounding box given by its south-west and
// north-east corners. On the wire it is [[west, south], [east, north]].
type LngLatBounds struct {
	SW LngLat
	NE LngLat
}

// NewLngLatBounds returns the bounds with the given corners.
func NewLngLatBounds(sw, ne LngLat) LngLatBounds {
	return LngLatBounds{SW: sw, NE: ne}
}

// BoundsFromOrb converts an orb bound.
func BoundsFromOrb(b orb.Bound) LngLatBounds {
	return LngLatBounds{SW: LngLatFromPoint(b.Min), NE: LngLatFromPoint(b.Max)}
}

func (b LngLatBounds) SouthWest() LngLat { return b.SW }
func (b LngLatBounds) NorthEast() LngLat { return b.NE }
func (b LngLatBounds) NorthWest() LngLat { return LngLat{Lng: b.SW.Lng, Lat: b.NE.Lat} }
func (b LngLatBounds) SouthEast() LngLat { return LngLat{Lng: b.NE.Lng, Lat: b.SW.Lat} }
func (b LngLatBounds) West() float64     { return b.SW.Lng }
func (b LngLatBounds) South() float64    { return b.SW.Lat }
func (b LngLatBounds) East() float64     { return b.NE.Lng }
func (b LngLatBounds) North() float64    { return b.NE.Lat }

// Center returns the midpoint of the bounds.
func (b LngLatBounds) Center() LngLat {
	return LngLat{Lng: (b.SW.Lng + b.NE.Lng) / 2, Lat: (b.SW.Lat + b.NE.Lat) / 2}
}

// Extend returns the smallest bounds containing b and ll.
func (b LngLatBounds) Extend(ll LngLat) LngLatBounds {
	return LngLatBounds{
		SW: LngLat{Lng: math.Min(b.SW.Lng, ll.Lng), Lat: math.Min(b.SW.Lat, ll.Lat)},
		NE: LngLat{Lng: math.Max(b.NE.Lng, ll.Lng), Lat: math.Max(b.NE.Lat, ll.Lat)},
	}
}

// Contains reports whether ll lies inside b. It follows mapbox-gl's
// LngLatBounds.contains: when west > east the bounds are treated as swapped,
// so a longitude matches if it lies between east and west. It does not wrap
// across the antimeridian.
func (b LngLatBounds) Contains(ll LngLat) bool {
	inLat := b.SW.Lat <= ll.Lat && ll.Lat <= b.NE.Lat
	var inLng bool
	if b.SW.Lng > b.NE.Lng {
		inLng = b.SW.Lng >= ll.Lng && ll.Lng >= b.NE.Lng
	} else {
		inLng = b.SW.Lng <= ll.Lng && ll.Lng <= b.NE.Lng
	}
	return inLat && inLng
}

// Bound returns b as an orb bound.
func (b LngLatBounds) Bound() orb.Bound {
	return orb.Bound{Min: b.SW.Point(), Max: b.NE.Point()}
}

// Array returns [[west, south], [east, north]].
func (b LngLatBounds) Array() [2][2]float64 {
	return [2][2]float64{b.SW.Array(), b.NE.Array()}
}

func (b LngLatBounds) MarshalJSON() ([]byte, error) {
	return marshalJSON(b.Array())
}

func (b *LngLatBounds) UnmarshalJSON(data []byte) error {
	var arr [2][2]float64
	if err := unmarshalJSON(data, &arr); err != nil {
		return err
	}
	*b = LngLatBounds{
		SW: LngLat{Lng: arr[0][0], Lat: arr[0][1]},
		NE: LngLat{Lng: arr[1][0], Lat: arr[1][1]},
	}
	return nil
}

func (b LngLatBounds) String() string {
	return fmt.Sprintf("LngLatBounds(%s, %s)", b.SW, b.NE)
}
