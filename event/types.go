package event

// Point is a screen position in pixels relative to the map container.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MapBaseEvent is the payload of events that carry nothing but their type.
type MapBaseEvent struct {
	Type string
}

// MapEvent is the payload of camera "move" events. OriginalEvent is set only
// when the movement was caused by user input.
type MapEvent struct {
	OriginalEvent *MouseEvent
	Type          string
}

// MapDataEvent is the payload of data, styledata, sourcedata, dataloading
// and styledataloading events.
type MapDataEvent struct {
	IsSourceLoaded *bool
	SourceDataType *string
	SourceID       *string
	Type           string
	DataType       string
}

// MapBoxZoomEvent is the payload of boxzoomstart, boxzoomend and
// boxzoomcancel.
type MapBoxZoomEvent struct {
	Type          string
	OriginalEvent MouseEvent
}

// MapMouseEvent is the payload of pointer events.
type MapMouseEvent struct {
	Type          string
	Features      []Feature
	OriginalEvent MouseEvent
	LngLat        LngLat
	Point         Point
}

// MapTouchEvent is the payload of touchstart, touchend and touchcancel.
type MapTouchEvent struct {
	Type          string
	Points        []Point
	LngLats       []LngLat
	Features      []Feature
	OriginalEvent TouchEvent
	LngLat        LngLat
	Point         Point
}

// MapWheelEvent is the payload of wheel events.
type MapWheelEvent struct {
	Type          string
	OriginalEvent WheelEvent
}

// DragEvent is the payload of drag and camera-end events. OriginalEvent is
// nil for programmatic camera changes.
type DragEvent struct {
	OriginalEvent *MouseEvent
	Type          string
}

// MouseEvent is a snapshot of a DOM MouseEvent.
type MouseEvent struct {
	Type      string
	ClientX   float64
	ClientY   float64
	ScreenX   float64
	ScreenY   float64
	PageX     float64
	PageY     float64
	OffsetX   float64
	OffsetY   float64
	TimeStamp float64
	Button    int
	Buttons   int
	AltKey    bool
	CtrlKey   bool
	MetaKey   bool
	ShiftKey  bool
}

// WheelEvent is a snapshot of a DOM WheelEvent.
type WheelEvent struct {
	MouseEvent
	DeltaX    float64
	DeltaY    float64
	DeltaZ    float64
	DeltaMode int
}

// Touch is a snapshot of a single DOM Touch point.
type Touch struct {
	Identifier float64
	ClientX    float64
	ClientY    float64
	ScreenX    float64
	ScreenY    float64
	PageX      float64
	PageY      float64
}

// TouchEvent is a snapshot of a DOM TouchEvent.
type TouchEvent struct {
	Type           string
	Touches        []Touch
	TargetTouches  []Touch
	ChangedTouches []Touch
	TimeStamp      float64
	AltKey         bool
	CtrlKey        bool
	MetaKey        bool
	ShiftKey       bool
}
