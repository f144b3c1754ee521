package mapboxgl

import (
	json "github.com/goccy/go-json"

	"github.com/wippyai/mapbox-gl/errors"
	"github.com/wippyai/mapbox-gl/style"
)

// MapOptions configures a new Map. Unset optional fields are left out of the
// wire configuration so mapbox-gl applies its own defaults.
type MapOptions struct {
	Center                *LngLat           `json:"center,omitempty"`
	Antialias             *bool             `json:"antialias,omitempty"`
	AttributionControl    *bool             `json:"attributionControl,omitempty"`
	BoxZoom               *bool             `json:"boxZoom,omitempty"`
	CollectResourceTiming *bool             `json:"collectResourceTiming,omitempty"`
	CooperativeGestures   *bool             `json:"cooperativeGestures,omitempty"`
	CrossSourceCollisions *bool             `json:"crossSourceCollisions,omitempty"`
	DoubleClickZoom       *bool             `json:"doubleClickZoom,omitempty"`
	DragPan               *bool             `json:"dragPan,omitempty"`
	Hash                  *bool             `json:"hash,omitempty"`
	RefreshExpiredTiles   *bool             `json:"refreshExpiredTiles,omitempty"`
	RenderWorldCopies     *bool             `json:"renderWorldCopies,omitempty"`
	ScrollZoom            *bool             `json:"scrollZoom,omitempty"`
	TestMode              *bool             `json:"testMode,omitempty"`
	Bearing               *float64          `json:"bearing,omitempty"`
	Pitch                 *float64          `json:"pitch,omitempty"`
	Zoom                  *float64          `json:"zoom,omitempty"`
	MinZoom               *float64          `json:"minZoom,omitempty"`
	MaxZoom               *float64          `json:"maxZoom,omitempty"`
	ClickTolerance        *int              `json:"clickTolerance,omitempty"`
	Style                 *style.StyleOrRef `json:"style,omitempty"`
	AccessToken           string            `json:"accessToken"`
	Container             string            `json:"container"`
	Projection            string            `json:"projection,omitempty"`
	CustomAttribution     CustomAttribution `json:"customAttribution,omitempty"`
}

// NewMapOptions returns options with the required fields set and the default
// style.
func NewMapOptions(accessToken, container string) *MapOptions {
	ref := style.Default()
	return &MapOptions{
		AccessToken: accessToken,
		Container:   container,
		Style:       &ref,
	}
}

func (o *MapOptions) WithStyle(s *style.Style) *MapOptions {
	v := style.Inline(s)
	o.Style = &v
	return o
}

func (o *MapOptions) WithStyleRef(url string) *MapOptions {
	v := style.Ref(url)
	o.Style = &v
	return o
}

func (o *MapOptions) WithCenter(ll LngLat) *MapOptions {
	o.Center = &ll
	return o
}

func (o *MapOptions) WithZoom(zoom float64) *MapOptions {
	o.Zoom = &zoom
	return o
}

func (o *MapOptions) WithZoomRange(minZoom, maxZoom float64) *MapOptions {
	o.MinZoom = &minZoom
	o.MaxZoom = &maxZoom
	return o
}

func (o *MapOptions) WithBearing(bearing float64) *MapOptions {
	o.Bearing = &bearing
	return o
}

func (o *MapOptions) WithPitch(pitch float64) *MapOptions {
	o.Pitch = &pitch
	return o
}

func (o *MapOptions) WithProjection(projection string) *MapOptions {
	o.Projection = projection
	return o
}

func (o *MapOptions) WithBoxZoom(enabled bool) *MapOptions {
	o.BoxZoom = &enabled
	return o
}

func (o *MapOptions) WithHash(enabled bool) *MapOptions {
	o.Hash = &enabled
	return o
}

func (o *MapOptions) WithTestMode(enabled bool) *MapOptions {
	o.TestMode = &enabled
	return o
}

func (o *MapOptions) WithCustomAttribution(attribution ...string) *MapOptions {
	o.CustomAttribution = attribution
	return o
}

// Validate checks the required fields.
func (o *MapOptions) Validate() error {
	if o.AccessToken == "" {
		return errors.FieldMissing(errors.PhaseEncode, "MapOptions", []string{"accessToken"})
	}
	if o.Container == "" {
		return errors.FieldMissing(errors.PhaseEncode, "MapOptions", []string{"container"})
	}
	if o.Center != nil && !o.Center.Valid() {
		return errors.InvalidData(errors.PhaseEncode, []string{"center"}, "invalid center "+o.Center.String())
	}
	if o.MinZoom != nil && o.MaxZoom != nil && *o.MinZoom > *o.MaxZoom {
		return errors.InvalidData(errors.PhaseEncode, []string{"minZoom"}, "minZoom exceeds maxZoom")
	}
	return nil
}

// CustomAttribution is one attribution string or several. A single entry is
// sent as a plain string.
type CustomAttribution []string

func (c CustomAttribution) MarshalJSON() ([]byte, error) {
	if len(c) == 1 {
		return json.Marshal(c[0])
	}
	return json.Marshal([]string(c))
}

func (c *CustomAttribution) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = CustomAttribution{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*c = list
	return nil
}

// PaddingOptions is the camera padding in pixels.
type PaddingOptions struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// CameraOptions describes a target camera. Unset fields keep their current
// value.
type CameraOptions struct {
	Center  *LngLat         `json:"center,omitempty"`
	Around  *LngLat         `json:"around,omitempty"`
	Padding *PaddingOptions `json:"padding,omitempty"`
	Zoom    *float64        `json:"zoom,omitempty"`
	Bearing *float64        `json:"bearing,omitempty"`
	Pitch   *float64        `json:"pitch,omitempty"`
}

// Camera returns options centered on ll.
func Camera(ll LngLat) CameraOptions {
	return CameraOptions{Center: &ll}
}

func (c CameraOptions) WithZoom(zoom float64) CameraOptions {
	c.Zoom = &zoom
	return c
}

func (c CameraOptions) WithBearing(bearing float64) CameraOptions {
	c.Bearing = &bearing
	return c
}

func (c CameraOptions) WithPitch(pitch float64) CameraOptions {
	c.Pitch = &pitch
	return c
}

// AnimationOptions controls eased camera transitions. Duration is in
// milliseconds.
type AnimationOptions struct {
	Animate        *bool    `json:"animate,omitempty"`
	Essential      *bool    `json:"essential,omitempty"`
	PreloadingOnly *bool    `json:"preloadingOnly,omitempty"`
	Curve          *float64 `json:"curve,omitempty"`
	Duration       *float64 `json:"duration,omitempty"`
	MaxDuration    *float64 `json:"maxDuration,omitempty"`
	MinZoom        *float64 `json:"minZoom,omitempty"`
	ScreenSpeed    *float64 `json:"screenSpeed,omitempty"`
	Speed          *float64 `json:"speed,omitempty"`
}

// Animation returns options with the given duration in milliseconds.
func Animation(durationMs float64) AnimationOptions {
	return AnimationOptions{Duration: &durationMs}
}

// cameraAnimation is the merged object easeTo and flyTo take.
type cameraAnimation struct {
	CameraOptions
	AnimationOptions
}

// MarkerOptions configures a new Marker.
type MarkerOptions struct {
	Draggable         *bool       `json:"draggable,omitempty"`
	ClickTolerance    *int        `json:"clickTolerance,omitempty"`
	Rotation          *float64    `json:"rotation,omitempty"`
	Scale             *float64    `json:"scale,omitempty"`
	Offset            *[2]float64 `json:"offset,omitempty"`
	Anchor            string      `json:"anchor,omitempty"`
	Color             string      `json:"color,omitempty"`
	PitchAlignment    string      `json:"pitchAlignment,omitempty"`
	RotationAlignment string      `json:"rotationAlignment,omitempty"`
}

func (o *MarkerOptions) WithDraggable(draggable bool) *MarkerOptions {
	o.Draggable = &draggable
	return o
}

func (o *MarkerOptions) WithColor(color string) *MarkerOptions {
	o.Color = color
	return o
}

// PopupOptions configures a new Popup.
type PopupOptions struct {
	CloseButton  *bool       `json:"closeButton,omitempty"`
	CloseOnClick *bool       `json:"closeOnClick,omitempty"`
	Offset       *[2]float64 `json:"offset,omitempty"`
	ClassName    string      `json:"className,omitempty"`
	MaxWidth     string      `json:"maxWidth,omitempty"`
	Anchor       string      `json:"anchor,omitempty"`
}

// ImageOptions are passed with AddImage.
type ImageOptions struct {
	Content    *[4]float64  `json:"content,omitempty"`
	PixelRatio *float64     `json:"pixelRatio,omitempty"`
	SDF        *bool        `json:"sdf,omitempty"`
	StretchX   [][2]float64 `json:"stretchX,omitempty"`
	StretchY   [][2]float64 `json:"stretchY,omitempty"`
}

// QueryFeatureOptions narrows QueryRenderedFeatures.
type QueryFeatureOptions struct {
	Validate *bool            `json:"validate,omitempty"`
	Layers   []string         `json:"layers,omitempty"`
	Filter   style.Expression `json:"filter,omitempty"`
}
