package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	mapboxgl "github.com/wippyai/mapbox-gl"
)

// config is the optional YAML file passed with -config. Flags override it.
type config struct {
	Token     string         `yaml:"token"`
	Container string         `yaml:"container"`
	StyleRef  string         `yaml:"style_ref"`
	StyleFile string         `yaml:"style_file"`
	LogFile   string         `yaml:"log_file"`
	Center    []float64      `yaml:"center"`
	Markers   []markerConfig `yaml:"markers"`
	Places    []placeConfig  `yaml:"places"`
	Zoom      float64        `yaml:"zoom"`
}

type markerConfig struct {
	Color     string    `yaml:"color"`
	Popup     string    `yaml:"popup"`
	At        []float64 `yaml:"at"`
	Draggable bool      `yaml:"draggable"`
}

// placeConfig is a fly-to destination bound to a digit key.
type placeConfig struct {
	Name string    `yaml:"name"`
	At   []float64 `yaml:"at"`
	Zoom float64   `yaml:"zoom"`
}

func defaultConfig() *config {
	return &config{
		Container: "map",
		Center:    []float64{-74.5, 40},
		Zoom:      9,
		Places: []placeConfig{
			{Name: "New York", At: []float64{-74.006, 40.7128}, Zoom: 11},
			{Name: "Paris", At: []float64{2.3522, 48.8566}, Zoom: 12},
			{Name: "Tokyo", At: []float64{139.6917, 35.6895}, Zoom: 10},
		},
	}
}

func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *config) validate() error {
	if c.Token == "" {
		return fmt.Errorf("no access token: set MAPBOX_TOKEN, -token or token in the config file")
	}
	if _, err := toLngLat(c.Center); err != nil {
		return fmt.Errorf("center: %w", err)
	}
	for i, mk := range c.Markers {
		if _, err := toLngLat(mk.At); err != nil {
			return fmt.Errorf("markers[%d]: %w", i, err)
		}
	}
	for i, p := range c.Places {
		if _, err := toLngLat(p.At); err != nil {
			return fmt.Errorf("places[%d]: %w", i, err)
		}
	}
	return nil
}

func toLngLat(v []float64) (mapboxgl.LngLat, error) {
	if len(v) != 2 {
		return mapboxgl.LngLat{}, fmt.Errorf("want [lng, lat], got %v", v)
	}
	ll := mapboxgl.NewLngLat(v[0], v[1])
	if !ll.Valid() {
		return ll, fmt.Errorf("invalid position %v", ll)
	}
	return ll, nil
}

// parseLngLat parses "lng,lat".
func parseLngLat(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("want lng,lat, got %q", s)
	}
	out := make([]float64, 2)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}
