package mapboxgl

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"

	"github.com/wippyai/mapbox-gl/style"
)

func TestMapOptions_Wire(t *testing.T) {
	opts := NewMapOptions("pk.abc", "map").
		WithCenter(NewLngLat(-74.5, 40)).
		WithZoom(9).
		WithBoxZoom(false)

	data, err := json.Marshal(opts)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"center":{"lng":-74.5,"lat":40},"boxZoom":false,"zoom":9,` +
		`"style":"mapbox://styles/mapbox/streets-v11","accessToken":"pk.abc","container":"map"}`
	if string(data) != want {
		t.Fatalf("wire form:\n got %s\nwant %s", data, want)
	}
	if strings.Contains(string(data), "null") {
		t.Fatalf("wire form contains null: %s", data)
	}

	var back MapOptions
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(opts, &back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMapOptions_InlineStyle(t *testing.T) {
	s := style.New().AddLayer(style.NewLayer("bg", style.Background, ""))
	opts := NewMapOptions("pk", "map").WithStyle(s)

	data, err := json.Marshal(opts)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	doc, ok := raw["style"].(map[string]any)
	if !ok || doc["version"] != float64(8) {
		t.Fatalf("style = %v", raw["style"])
	}
}

func TestCustomAttribution(t *testing.T) {
	tests := []struct {
		name string
		in   CustomAttribution
		want string
	}{
		{"single", CustomAttribution{"© me"}, `"© me"`},
		{"many", CustomAttribution{"a", "b"}, `["a","b"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tt.want {
				t.Fatalf("got %s, want %s", data, tt.want)
			}
			var back CustomAttribution
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.in, back); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCameraAnimation_Flattened(t *testing.T) {
	v := cameraAnimation{
		CameraOptions:    Camera(NewLngLat(1, 2)).WithZoom(3),
		AnimationOptions: Animation(250),
	}
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"center":{"lng":1,"lat":2},"zoom":3,"duration":250}`
	if string(data) != want {
		t.Fatalf("got %s, want %s", data, want)
	}
}

func TestQueryGeometry(t *testing.T) {
	tests := []struct {
		name string
		g    QueryGeometry
		want []float64
		bbox bool
	}{
		{"point", PointGeometry(1, 2), []float64{1, 2}, false},
		{"bbox", BBoxGeometry(-1, -2, 3, 4), []float64{-1, -2, 3, 4}, true},
		{"screen", ScreenPointGeometry(Point{X: 5, Y: 6}), []float64{5, 6}, false},
		{"lnglat", LngLatGeometry(NewLngLat(7, 8)), []float64{7, 8}, false},
		{"bounds", BoundsGeometry(NewLngLatBounds(NewLngLat(0, 1), NewLngLat(2, 3))), []float64{0, 1, 2, 3}, true},
		{"orb point", OrbGeometry(orb.Point{9, 10}), []float64{9, 10}, false},
		{"orb line", OrbGeometry(orb.LineString{{0, 5}, {4, 1}}), []float64{0, 1, 4, 5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.g.Slice()); diff != "" {
				t.Fatalf("Slice mismatch (-want +got):\n%s", diff)
			}
			if tt.g.IsBBox() != tt.bbox {
				t.Fatalf("IsBBox = %v", tt.g.IsBBox())
			}
			data, err := json.Marshal(tt.g)
			if err != nil {
				t.Fatal(err)
			}
			var back []float64
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, back); diff != "" {
				t.Fatalf("wire mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
