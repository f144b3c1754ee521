package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

func TestParseLngLat(t *testing.T) {
	tests := []struct {
		in      string
		want    []float64
		wantErr bool
	}{
		{"-74.5,40", []float64{-74.5, 40}, false},
		{" 2.35 , 48.85 ", []float64{2.35, 48.85}, false},
		{"1", nil, true},
		{"a,b", nil, true},
		{"1,2,3", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLngLat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mapview.yaml")
	data := `token: pk.file
center: [2.35, 48.85]
zoom: 12
markers:
  - at: [2.29, 48.86]
    popup: Eiffel Tower
    draggable: true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Token != "pk.file" || cfg.Zoom != 12 || cfg.Container != "map" {
		t.Fatalf("config = %+v", cfg)
	}
	if len(cfg.Places) != 3 {
		t.Fatalf("default places lost: %d", len(cfg.Places))
	}
	if len(cfg.Markers) != 1 || cfg.Markers[0].Popup != "Eiffel Tower" || !cfg.Markers[0].Draggable {
		t.Fatalf("markers = %+v", cfg.Markers)
	}
	if err := cfg.validate(); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("missing file accepted")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.validate(); err == nil || !strings.Contains(err.Error(), "token") {
		t.Fatalf("no token: got %v", err)
	}
	cfg.Token = "pk.test"
	cfg.Center = []float64{0, 91}
	if err := cfg.validate(); err == nil || !strings.Contains(err.Error(), "center") {
		t.Fatalf("bad center: got %v", err)
	}
	cfg.Center = []float64{0, 0}
	cfg.Markers = []markerConfig{{At: []float64{1}}}
	if err := cfg.validate(); err == nil || !strings.Contains(err.Error(), "markers[0]") {
		t.Fatalf("bad marker: got %v", err)
	}
}

func newTestSession(t *testing.T) *session {
	t.Helper()
	cfg := defaultConfig()
	cfg.Token = "pk.test"
	s, err := newSession(cfg)
	if err != nil {
		t.Fatalf("newSession failed: %v", err)
	}
	t.Cleanup(s.close)
	s.step()
	return s
}

func hasLine(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func TestSession_Commands(t *testing.T) {
	s := newTestSession(t)
	if !s.loaded || !hasLine(s.lines, "load") {
		t.Fatalf("load not seen: %v", s.lines)
	}

	if err := s.addMarkerAtCenter(); err != nil {
		t.Fatal(err)
	}
	if err := s.dragLastMarker(0.5, 0.5); err != nil {
		t.Fatal(err)
	}
	if !hasLine(s.lines, "marker #1 dragstart") || !hasLine(s.lines, "marker #1 dropped at LngLat(-74, 40.5)") {
		t.Fatalf("drag not logged: %v", s.lines)
	}

	if err := s.clickCenter(); err != nil {
		t.Fatal(err)
	}
	if !hasLine(s.lines, "click LngLat(-74.5, 40)") {
		t.Fatalf("click not logged: %v", s.lines)
	}

	if err := s.flyTo(1); err != nil {
		t.Fatal(err)
	}
	s.step()
	c, err := s.m.Center()
	if err != nil {
		t.Fatal(err)
	}
	if c.Lng != 2.3522 || c.Lat != 48.8566 {
		t.Fatalf("center after fly = %v", c)
	}
	if err := s.flyTo(9); err == nil {
		t.Fatal("unknown place accepted")
	}
	if err := s.flyToInput("nonsense"); err == nil {
		t.Fatal("bad input accepted")
	}

	if !strings.Contains(s.status(), "markers 1") {
		t.Fatalf("status = %q", s.status())
	}
}

func TestSession_DragWithoutMarkers(t *testing.T) {
	s := newTestSession(t)
	if err := s.dragLastMarker(1, 1); err == nil {
		t.Fatal("drag without markers accepted")
	}
}

func TestSession_LogBounded(t *testing.T) {
	s := &session{}
	for i := 0; i < maxLogLines+10; i++ {
		s.logf("line %d", i)
	}
	if len(s.lines) != maxLogLines || s.lines[0] != "line 10" {
		t.Fatalf("len = %d, first = %q", len(s.lines), s.lines[0])
	}
	if got := s.tail(2); len(got) != 2 || got[1] != "line 209" {
		t.Fatalf("tail = %v", got)
	}
}

func TestStyleWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "style.yaml")
	if err := os.WriteFile(path, []byte("version: 8\nsources: {}\nlayers: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	sw, err := watchStyle(path, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = sw.close() }()

	doc := "version: 8\nsources: {}\nlayers:\n  - id: bg\n    type: background\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case msg := <-sw.updates():
			if msg.err != nil {
				// a write can be observed before it is complete
				continue
			}
			if len(msg.style.Layers) != 1 {
				continue
			}
			s := newTestSession(t)
			if err := s.applyStyle(msg.style, msg.path); err != nil {
				t.Fatal(err)
			}
			if !s.m.HasLayer("bg") {
				t.Fatal("reloaded layer missing")
			}
			return
		case <-deadline:
			t.Fatal("no reload seen")
		}
	}
}
