package event

import (
	"math"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/paulmach/orb"
)

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestLngLat_Wrap(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{180, -180},
		{190, -170},
		{-190, 170},
		{540, -180},
		{-180, -180},
	}
	for _, tc := range tests {
		got := NewLngLat(tc.in, 10).Wrap()
		if !near(got.Lng, tc.want, 1e-9) || got.Lat != 10 {
			t.Errorf("Wrap(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLngLat_DistanceTo(t *testing.T) {
	a := NewLngLat(0, 0)
	if d := a.DistanceTo(a); d != 0 {
		t.Fatalf("distance to self = %v", d)
	}

	// One degree of longitude at the equator.
	want := EarthRadius * math.Pi / 180
	if d := a.DistanceTo(NewLngLat(1, 0)); !near(d, want, 1e-6) {
		t.Fatalf("distance = %v, want %v", d, want)
	}
}

func TestLngLat_ToBounds(t *testing.T) {
	b := NewLngLat(-73.9749, 40.7736).ToBounds(100)
	if !b.Contains(NewLngLat(-73.9749, 40.7736)) {
		t.Fatal("bounds must contain origin")
	}
	if !near(b.North()-40.7736, 360*100/(2*math.Pi*EarthRadius), 1e-12) {
		t.Fatalf("north edge off: %v", b.North())
	}
	if b.East()-b.West() <= b.North()-b.South() {
		t.Fatal("longitude span should be wider than latitude span away from the equator")
	}
}

func TestLngLat_Valid(t *testing.T) {
	if !NewLngLat(10, 20).Valid() {
		t.Error("(10, 20) is valid")
	}
	if NewLngLat(0, 91).Valid() || NewLngLat(math.NaN(), 0).Valid() {
		t.Error("out of range or NaN must be invalid")
	}
}

func TestLngLatBounds_Corners(t *testing.T) {
	b := NewLngLatBounds(NewLngLat(-10, -5), NewLngLat(10, 5))
	if b.NorthWest() != NewLngLat(-10, 5) || b.SouthEast() != NewLngLat(10, -5) {
		t.Fatalf("corners wrong: %v %v", b.NorthWest(), b.SouthEast())
	}
	if b.Center() != NewLngLat(0, 0) {
		t.Fatalf("center = %v", b.Center())
	}
	ext := b.Extend(NewLngLat(20, -30))
	if ext.East() != 20 || ext.South() != -30 || ext.West() != -10 || ext.North() != 5 {
		t.Fatalf("extend = %v", ext)
	}
}

func TestLngLatBounds_ContainsSwappedLongitudes(t *testing.T) {
	b := NewLngLatBounds(NewLngLat(170, -10), NewLngLat(-170, 10))
	tests := []struct {
		ll   LngLat
		want bool
	}{
		{NewLngLat(0, 0), true},
		{NewLngLat(170, 10), true},
		{NewLngLat(-170, -10), true},
		{NewLngLat(175, 0), false},
		{NewLngLat(-175, 0), false},
		{NewLngLat(0, 11), false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.ll); got != tt.want {
			t.Fatalf("Contains(%v) = %v, want %v", tt.ll, got, tt.want)
		}
	}
}

func TestLngLatBounds_JSON(t *testing.T) {
	b := NewLngLatBounds(NewLngLat(1, 2), NewLngLat(3, 4))
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[[1,2],[3,4]]" {
		t.Fatalf("marshal = %s", data)
	}

	var out LngLatBounds
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out != b {
		t.Fatalf("unmarshal = %v, want %v", out, b)
	}
}

func TestLngLatBounds_Orb(t *testing.T) {
	bound := orb.Bound{Min: orb.Point{1, 2}, Max: orb.Point{3, 4}}
	b := BoundsFromOrb(bound)
	if b.Bound() != bound {
		t.Fatalf("orb round trip = %v", b.Bound())
	}
	if LngLatFromPoint(orb.Point{5, 6}).Point() != (orb.Point{5, 6}) {
		t.Fatal("point round trip")
	}
}
