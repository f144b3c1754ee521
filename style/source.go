package style

import (
	json "github.com/goccy/go-json"
	"github.com/paulmach/orb/geojson"

	"github.com/wippyai/mapbox-gl/errors"
)

// SourceType is the discriminant of a style source.
type SourceType string

const (
	SourceVector    SourceType = "vector"
	SourceRaster    SourceType = "raster"
	SourceRasterDEM SourceType = "raster-dem"
	SourceGeoJSON   SourceType = "geojson"
	SourceImage     SourceType = "image"
	SourceVideo     SourceType = "video"
)

// Source is a style source. Which fields apply depends on Type.
type Source struct {
	TileSize       *int           `json:"tileSize,omitempty"`
	MinZoom        *float64       `json:"minzoom,omitempty"`
	MaxZoom        *float64       `json:"maxzoom,omitempty"`
	Cluster        *bool          `json:"cluster,omitempty"`
	ClusterRadius  *int           `json:"clusterRadius,omitempty"`
	ClusterMaxZoom *float64       `json:"clusterMaxZoom,omitempty"`
	GenerateID     *bool          `json:"generateId,omitempty"`
	Data           *GeoJSONData   `json:"data,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	Type           SourceType     `json:"type"`
	URL            string         `json:"url,omitempty"`
	Attribution    string         `json:"attribution,omitempty"`
	Scheme         string         `json:"scheme,omitempty"`
	PromoteID      string         `json:"promoteId,omitempty"`
	Tiles          []string       `json:"tiles,omitempty"`
	Bounds         []float64      `json:"bounds,omitempty"`
	Coordinates    [][2]float64   `json:"coordinates,omitempty"`
}

// VectorSource returns a vector source backed by a TileJSON url.
func VectorSource(url string) Source {
	return Source{Type: SourceVector, URL: url}
}

// RasterSource returns a raster source for the given tile templates.
func RasterSource(tileSize int, tiles ...string) Source {
	return Source{Type: SourceRaster, Tiles: tiles, TileSize: &tileSize}
}

// GeoJSONSource returns a geojson source wrapping data.
func GeoJSONSource(data GeoJSONData) Source {
	return Source{Type: SourceGeoJSON, Data: &data}
}

// Validate checks that the fields required by the source type are set.
func (s Source) Validate(id string) error {
	switch s.Type {
	case SourceVector, SourceRaster, SourceRasterDEM:
		if s.URL == "" && len(s.Tiles) == 0 {
			return errors.FieldMissing(errors.PhaseParse, "source "+id, []string{"sources", id, "url"})
		}
	case SourceGeoJSON:
		if s.Data == nil {
			return errors.FieldMissing(errors.PhaseParse, "source "+id, []string{"sources", id, "data"})
		}
	case SourceImage, SourceVideo:
		if len(s.Coordinates) != 4 {
			return errors.InvalidData(errors.PhaseParse, []string{"sources", id, "coordinates"},
				"expected four corner coordinates")
		}
	default:
		return errors.InvalidData(errors.PhaseParse, []string{"sources", id, "type"},
			"unknown source type "+string(s.Type))
	}
	return nil
}

// GeoJSONData is the data member of a geojson source: an inline document or
// a url the renderer fetches.
type GeoJSONData struct {
	Collection *geojson.FeatureCollection
	Feature    *geojson.Feature
	Geometry   *geojson.Geometry
	URL        string
}

// FeatureCollectionData wraps an inline feature collection.
func FeatureCollectionData(fc *geojson.FeatureCollection) GeoJSONData {
	return GeoJSONData{Collection: fc}
}

// FeatureData wraps a single inline feature.
func FeatureData(f *geojson.Feature) GeoJSONData {
	return GeoJSONData{Feature: f}
}

// URLData points the source at a remote document.
func URLData(url string) GeoJSONData {
	return GeoJSONData{URL: url}
}

func (d GeoJSONData) MarshalJSON() ([]byte, error) {
	switch {
	case d.Collection != nil:
		return json.Marshal(d.Collection)
	case d.Feature != nil:
		return json.Marshal(d.Feature)
	case d.Geometry != nil:
		return json.Marshal(d.Geometry)
	case d.URL != "":
		return json.Marshal(d.URL)
	}
	return nil, errors.BadGeoJSON(errors.InvalidInput(errors.PhaseEncode, "empty geojson data"))
}

func (d *GeoJSONData) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		*d = GeoJSONData{}
		return json.Unmarshal(data, &d.URL)
	}

	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return errors.BadGeoJSON(err)
	}

	*d = GeoJSONData{}
	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return errors.BadGeoJSON(err)
		}
		d.Collection = fc
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return errors.BadGeoJSON(err)
		}
		d.Feature = f
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return errors.BadGeoJSON(err)
		}
		d.Geometry = g
	}
	return nil
}
