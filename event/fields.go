package event

import (
	"fmt"

	"github.com/wippyai/mapbox-gl/engine"
	"github.com/wippyai/mapbox-gl/errors"
)

// Undefined and null both count as absent.

func requirePayload(name string, raw engine.Value) error {
	if raw == nil {
		return errors.TypeMismatch(errors.PhaseDecode, name, nil, "object", "undefined")
	}
	if t := raw.Type(); t != engine.TypeObject {
		return errors.TypeMismatch(errors.PhaseDecode, name, nil, "object", t.String())
	}
	return nil
}

func requireString(name string, raw engine.Value, field string) (string, error) {
	v := raw.Get(field)
	switch v.Type() {
	case engine.TypeString:
		return v.String(), nil
	case engine.TypeUndefined, engine.TypeNull:
		return "", errors.FieldMissing(errors.PhaseDecode, name, []string{field})
	default:
		return "", errors.TypeMismatch(errors.PhaseDecode, name, []string{field}, "string", v.Type().String())
	}
}

func requireObject(name string, raw engine.Value, field string) (engine.Value, error) {
	v := raw.Get(field)
	switch v.Type() {
	case engine.TypeObject:
		return v, nil
	case engine.TypeUndefined, engine.TypeNull:
		return nil, errors.FieldMissing(errors.PhaseDecode, name, []string{field})
	default:
		return nil, errors.TypeMismatch(errors.PhaseDecode, name, []string{field}, "object", v.Type().String())
	}
}

// requireWire decodes a required nested value with the structured decoder.
func requireWire(name string, raw engine.Value, field string, dst any) error {
	v, err := requireObject(name, raw, field)
	if err != nil {
		return err
	}
	return decodeWire(name, v, field, dst)
}

func decodeWire(name string, v engine.Value, field string, dst any) error {
	if err := engine.FromWire(v, dst); err != nil {
		return errors.New(errors.PhaseDecode, errors.KindTypeMismatch).
			Event(name).
			Path(field).
			GoType(fmt.Sprintf("%T", dst)).
			WireType(v.Type().String()).
			Cause(err).
			Build()
	}
	return nil
}

// optionalList decodes an array field, defaulting to an empty slice when the
// field is absent.
func optionalList[T any](name string, raw engine.Value, field string) ([]T, error) {
	v := raw.Get(field)
	switch v.Type() {
	case engine.TypeUndefined, engine.TypeNull:
		return []T{}, nil
	case engine.TypeObject:
	default:
		return nil, errors.TypeMismatch(errors.PhaseDecode, name, []string{field}, "array", v.Type().String())
	}
	out := []T{}
	if err := decodeWire(name, v, field, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func optionalString(name string, raw engine.Value, field string) (*string, error) {
	v := raw.Get(field)
	switch v.Type() {
	case engine.TypeUndefined, engine.TypeNull:
		return nil, nil
	case engine.TypeString:
		s := v.String()
		return &s, nil
	default:
		return nil, errors.TypeMismatch(errors.PhaseDecode, name, []string{field}, "string", v.Type().String())
	}
}

func optionalBool(name string, raw engine.Value, field string) (*bool, error) {
	v := raw.Get(field)
	switch v.Type() {
	case engine.TypeUndefined, engine.TypeNull:
		return nil, nil
	case engine.TypeBoolean:
		b := v.Bool()
		return &b, nil
	default:
		return nil, errors.TypeMismatch(errors.PhaseDecode, name, []string{field}, "bool", v.Type().String())
	}
}

// optionalMouse reads originalEvent when it is an object. Anything else,
// including a missing field, yields nil.
func optionalMouse(_ string, raw engine.Value) *MouseEvent {
	v := raw.Get("originalEvent")
	if v.Type() != engine.TypeObject {
		return nil
	}
	m := readMouse(v)
	return &m
}

// DOM snapshots are read property by property: DOM events have no JSON form.

func num(v engine.Value, key string) float64 {
	f := v.Get(key)
	if f.Type() != engine.TypeNumber {
		return 0
	}
	return f.Float()
}

func flag(v engine.Value, key string) bool {
	f := v.Get(key)
	return f.Type() == engine.TypeBoolean && f.Bool()
}

func str(v engine.Value, key string) string {
	f := v.Get(key)
	if f.Type() != engine.TypeString {
		return ""
	}
	return f.String()
}

func readMouse(v engine.Value) MouseEvent {
	return MouseEvent{
		Type:      str(v, "type"),
		ClientX:   num(v, "clientX"),
		ClientY:   num(v, "clientY"),
		ScreenX:   num(v, "screenX"),
		ScreenY:   num(v, "screenY"),
		PageX:     num(v, "pageX"),
		PageY:     num(v, "pageY"),
		OffsetX:   num(v, "offsetX"),
		OffsetY:   num(v, "offsetY"),
		TimeStamp: num(v, "timeStamp"),
		Button:    int(num(v, "button")),
		Buttons:   int(num(v, "buttons")),
		AltKey:    flag(v, "altKey"),
		CtrlKey:   flag(v, "ctrlKey"),
		MetaKey:   flag(v, "metaKey"),
		ShiftKey:  flag(v, "shiftKey"),
	}
}

func readTouches(v engine.Value) []Touch {
	if v.Type() != engine.TypeObject {
		return []Touch{}
	}
	n := v.Len()
	out := make([]Touch, 0, n)
	for i := 0; i < n; i++ {
		t := v.Index(i)
		if t.Type() != engine.TypeObject {
			continue
		}
		out = append(out, Touch{
			Identifier: num(t, "identifier"),
			ClientX:    num(t, "clientX"),
			ClientY:    num(t, "clientY"),
			ScreenX:    num(t, "screenX"),
			ScreenY:    num(t, "screenY"),
			PageX:      num(t, "pageX"),
			PageY:      num(t, "pageY"),
		})
	}
	return out
}

func readTouch(v engine.Value) TouchEvent {
	return TouchEvent{
		Type:           str(v, "type"),
		Touches:        readTouches(v.Get("touches")),
		TargetTouches:  readTouches(v.Get("targetTouches")),
		ChangedTouches: readTouches(v.Get("changedTouches")),
		TimeStamp:      num(v, "timeStamp"),
		AltKey:         flag(v, "altKey"),
		CtrlKey:        flag(v, "ctrlKey"),
		MetaKey:        flag(v, "metaKey"),
		ShiftKey:       flag(v, "shiftKey"),
	}
}
