package event

import (
	"fmt"

	"github.com/wippyai/mapbox-gl/engine"
	"github.com/wippyai/mapbox-gl/errors"
)

// Kind names the payload shape an event decodes to.
type Kind uint8

const (
	KindBase Kind = iota
	KindMap
	KindData
	KindBoxZoom
	KindMouse
	KindTouch
	KindWheel
	KindDrag
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindBase:
		return "MapBaseEvent"
	case KindMap:
		return "MapEvent"
	case KindData:
		return "MapDataEvent"
	case KindBoxZoom:
		return "MapBoxZoomEvent"
	case KindMouse:
		return "MapMouseEvent"
	case KindTouch:
		return "MapTouchEvent"
	case KindWheel:
		return "MapWheelEvent"
	case KindDrag:
		return "DragEvent"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Decode decodes raw into the payload type of kind. name is the event name
// reported in errors.
func Decode(kind Kind, name string, raw engine.Value) (any, error) {
	switch kind {
	case KindBase:
		return DecodeBase(name, raw)
	case KindMap:
		return DecodeMap(name, raw)
	case KindData:
		return DecodeData(name, raw)
	case KindBoxZoom:
		return DecodeBoxZoom(name, raw)
	case KindMouse:
		return DecodeMouse(name, raw)
	case KindTouch:
		return DecodeTouch(name, raw)
	case KindWheel:
		return DecodeWheel(name, raw)
	case KindDrag:
		return DecodeDrag(name, raw)
	case KindError:
		return DecodeError(name, raw)
	default:
		return nil, errors.Unsupported(errors.PhaseDecode, kind.String())
	}
}

func DecodeBase(name string, raw engine.Value) (MapBaseEvent, error) {
	if err := requirePayload(name, raw); err != nil {
		return MapBaseEvent{}, err
	}
	typ, err := requireString(name, raw, "type")
	if err != nil {
		return MapBaseEvent{}, err
	}
	return MapBaseEvent{Type: typ}, nil
}

func DecodeMap(name string, raw engine.Value) (MapEvent, error) {
	if err := requirePayload(name, raw); err != nil {
		return MapEvent{}, err
	}
	typ, err := requireString(name, raw, "type")
	if err != nil {
		return MapEvent{}, err
	}
	return MapEvent{Type: typ, OriginalEvent: optionalMouse(name, raw)}, nil
}

func DecodeDrag(name string, raw engine.Value) (DragEvent, error) {
	if err := requirePayload(name, raw); err != nil {
		return DragEvent{}, err
	}
	typ, err := requireString(name, raw, "type")
	if err != nil {
		return DragEvent{}, err
	}
	return DragEvent{Type: typ, OriginalEvent: optionalMouse(name, raw)}, nil
}

func DecodeData(name string, raw engine.Value) (MapDataEvent, error) {
	var ev MapDataEvent
	if err := requirePayload(name, raw); err != nil {
		return ev, err
	}
	var err error
	if ev.Type, err = requireString(name, raw, "type"); err != nil {
		return ev, err
	}
	if ev.DataType, err = requireString(name, raw, "dataType"); err != nil {
		return ev, err
	}
	if ev.IsSourceLoaded, err = optionalBool(name, raw, "isSourceLoaded"); err != nil {
		return ev, err
	}
	if ev.SourceDataType, err = optionalString(name, raw, "sourceDataType"); err != nil {
		return ev, err
	}
	if ev.SourceID, err = optionalString(name, raw, "sourceId"); err != nil {
		return ev, err
	}
	return ev, nil
}

func DecodeBoxZoom(name string, raw engine.Value) (MapBoxZoomEvent, error) {
	var ev MapBoxZoomEvent
	if err := requirePayload(name, raw); err != nil {
		return ev, err
	}
	var err error
	if ev.Type, err = requireString(name, raw, "type"); err != nil {
		return ev, err
	}
	orig, err := requireObject(name, raw, "originalEvent")
	if err != nil {
		return ev, err
	}
	ev.OriginalEvent = readMouse(orig)
	return ev, nil
}

func DecodeWheel(name string, raw engine.Value) (MapWheelEvent, error) {
	var ev MapWheelEvent
	if err := requirePayload(name, raw); err != nil {
		return ev, err
	}
	var err error
	if ev.Type, err = requireString(name, raw, "type"); err != nil {
		return ev, err
	}
	orig, err := requireObject(name, raw, "originalEvent")
	if err != nil {
		return ev, err
	}
	ev.OriginalEvent = WheelEvent{
		MouseEvent: readMouse(orig),
		DeltaX:     num(orig, "deltaX"),
		DeltaY:     num(orig, "deltaY"),
		DeltaZ:     num(orig, "deltaZ"),
		DeltaMode:  int(num(orig, "deltaMode")),
	}
	return ev, nil
}

func DecodeMouse(name string, raw engine.Value) (MapMouseEvent, error) {
	var ev MapMouseEvent
	if err := requirePayload(name, raw); err != nil {
		return ev, err
	}
	var err error
	if ev.Type, err = requireString(name, raw, "type"); err != nil {
		return ev, err
	}
	orig, err := requireObject(name, raw, "originalEvent")
	if err != nil {
		return ev, err
	}
	ev.OriginalEvent = readMouse(orig)
	if err = requireWire(name, raw, "point", &ev.Point); err != nil {
		return ev, err
	}
	if err = requireWire(name, raw, "lngLat", &ev.LngLat); err != nil {
		return ev, err
	}
	if ev.Features, err = optionalList[Feature](name, raw, "features"); err != nil {
		return ev, err
	}
	return ev, nil
}

func DecodeTouch(name string, raw engine.Value) (MapTouchEvent, error) {
	var ev MapTouchEvent
	if err := requirePayload(name, raw); err != nil {
		return ev, err
	}
	var err error
	if ev.Type, err = requireString(name, raw, "type"); err != nil {
		return ev, err
	}
	orig, err := requireObject(name, raw, "originalEvent")
	if err != nil {
		return ev, err
	}
	ev.OriginalEvent = readTouch(orig)
	if err = requireWire(name, raw, "point", &ev.Point); err != nil {
		return ev, err
	}
	if ev.Points, err = optionalList[Point](name, raw, "points"); err != nil {
		return ev, err
	}
	if err = requireWire(name, raw, "lngLat", &ev.LngLat); err != nil {
		return ev, err
	}
	if ev.LngLats, err = optionalList[LngLat](name, raw, "lngLats"); err != nil {
		return ev, err
	}
	if ev.Features, err = optionalList[Feature](name, raw, "features"); err != nil {
		return ev, err
	}
	return ev, nil
}

// DecodeError extracts the message of an error event. The payload is a plain
// string; objects carrying error.message or message are accepted too.
func DecodeError(name string, raw engine.Value) (string, error) {
	if raw == nil {
		return "", errors.FieldMissing(errors.PhaseDecode, name, []string{"error"})
	}
	switch raw.Type() {
	case engine.TypeString:
		return raw.String(), nil
	case engine.TypeObject:
		if e := raw.Get("error"); e.Type() == engine.TypeString {
			return e.String(), nil
		} else if msg := e.Get("message"); msg.Type() == engine.TypeString {
			return msg.String(), nil
		}
		if msg := raw.Get("message"); msg.Type() == engine.TypeString {
			return msg.String(), nil
		}
		return "", errors.FieldMissing(errors.PhaseDecode, name, []string{"error", "message"})
	case engine.TypeUndefined, engine.TypeNull:
		return "", errors.FieldMissing(errors.PhaseDecode, name, []string{"error"})
	default:
		return "", errors.TypeMismatch(errors.PhaseDecode, name, nil, "string", raw.Type().String())
	}
}
