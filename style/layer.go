package style

import (
	"slices"

	json "github.com/goccy/go-json"

	"github.com/wippyai/mapbox-gl/errors"
)

// LayerType is the discriminant of a style layer.
type LayerType string

const (
	Background     LayerType = "background"
	Fill           LayerType = "fill"
	Line           LayerType = "line"
	Symbol         LayerType = "symbol"
	Raster         LayerType = "raster"
	RasterParticle LayerType = "raster-particle"
	Circle         LayerType = "circle"
	FillExtrusion  LayerType = "fill-extrusion"
	Heatmap        LayerType = "heatmap"
	Hillshade      LayerType = "hillshade"
	Sky            LayerType = "sky"
	Model          LayerType = "model"
)

// LayerTypes lists every layer type in style-spec order.
var LayerTypes = []LayerType{
	Background, Fill, Line, Symbol, Raster, RasterParticle,
	Circle, FillExtrusion, Heatmap, Hillshade, Sky, Model,
}

// Valid reports whether t is a known layer type.
func (t LayerType) Valid() bool {
	return slices.Contains(LayerTypes, t)
}

// NeedsSource reports whether layers of this type draw from a source.
func (t LayerType) NeedsSource() bool {
	return t != Background && t != Sky
}

func (t *LayerType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	lt := LayerType(s)
	if !lt.Valid() {
		return errors.New(errors.PhaseParse, errors.KindInvalidData).
			Path("type").
			Value(s).
			Detail("unknown layer type %q", s).
			Build()
	}
	*t = lt
	return nil
}

// Expression is a style-spec expression such as ["==", ["get", "kind"], "park"].
type Expression []any

// Expr builds an expression from an operator and its arguments.
func Expr(op string, args ...any) Expression {
	return append(Expression{op}, args...)
}

// Get builds ["get", property].
func Get(property string) Expression {
	return Expression{"get", property}
}

// Layer is a style layer.
type Layer struct {
	MinZoom     *float64       `json:"minzoom,omitempty"`
	MaxZoom     *float64       `json:"maxzoom,omitempty"`
	Layout      *Layout        `json:"layout,omitempty"`
	Paint       *Paint         `json:"paint,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	ID          string         `json:"id"`
	Type        LayerType      `json:"type"`
	Source      string         `json:"source,omitempty"`
	SourceLayer string         `json:"source-layer,omitempty"`
	Slot        string         `json:"slot,omitempty"`
	Filter      Expression     `json:"filter,omitempty"`
}

// NewLayer returns a layer of type typ drawing from source.
func NewLayer(id string, typ LayerType, source string) Layer {
	return Layer{ID: id, Type: typ, Source: source}
}

// WithLayout returns a copy of l with the given layout.
func (l Layer) WithLayout(layout Layout) Layer {
	l.Layout = &layout
	return l
}

// WithPaint returns a copy of l with the given paint.
func (l Layer) WithPaint(paint Paint) Layer {
	l.Paint = &paint
	return l
}

// WithFilter returns a copy of l with the given filter.
func (l Layer) WithFilter(filter Expression) Layer {
	l.Filter = filter
	return l
}

// WithZoomRange returns a copy of l visible between minZoom and maxZoom.
func (l Layer) WithZoomRange(minZoom, maxZoom float64) Layer {
	l.MinZoom = &minZoom
	l.MaxZoom = &maxZoom
	return l
}

// Validate checks the fields the renderer rejects.
func (l Layer) Validate() error {
	if l.ID == "" {
		return errors.FieldMissing(errors.PhaseParse, "layer", []string{"id"})
	}
	if !l.Type.Valid() {
		return errors.InvalidData(errors.PhaseParse, []string{"layers", l.ID, "type"},
			"unknown layer type "+string(l.Type))
	}
	if l.Type.NeedsSource() && l.Source == "" {
		return errors.FieldMissing(errors.PhaseParse, "layer "+l.ID, []string{"layers", l.ID, "source"})
	}
	if l.MinZoom != nil && l.MaxZoom != nil && *l.MinZoom > *l.MaxZoom {
		return errors.InvalidData(errors.PhaseParse, []string{"layers", l.ID, "minzoom"},
			"minzoom exceeds maxzoom")
	}
	return nil
}
