package engine

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/wippyai/mapbox-gl/errors"
)

// Type is the dynamic type of a foreign value.
type Type int

const (
	TypeUndefined Type = iota
	TypeNull
	TypeBoolean
	TypeNumber
	TypeString
	TypeObject
	TypeFunction
)

func (t Type) String() string {
	switch t {
	case TypeUndefined:
		return "undefined"
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeObject:
		return "object"
	case TypeFunction:
		return "function"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// Value is a handle to a value owned by the foreign runtime.
// Get never returns nil: absent properties read as undefined.
type Value interface {
	Type() Type
	Get(key string) Value
	Set(key string, v any) error
	Call(method string, args ...any) (Value, error)
	Invoke(args ...any) (Value, error)
	Bool() bool
	Float() float64
	String() string
	Len() int
	Index(i int) Value
	JSON() ([]byte, error)
}

// Func is a Go callback the foreign runtime can invoke.
// After Release the foreign side can no longer reach the Go closure.
type Func interface {
	Value
	Release()
}

// Callback is the Go signature of a foreign-invocable function.
// The returned value is converted back with the same rules as call arguments.
type Callback func(this Value, args []Value) any

// Runtime is the foreign runtime hosting the mapbox-gl object model.
//
// Arguments passed as `any` are converted as follows: nil becomes null,
// Go primitives become foreign primitives, Value and Func pass through.
// Structured data should go through ToWire.
type Runtime interface {
	// Global returns a property of the global object.
	Global(name string) Value

	// New calls a constructor addressed by a dotted path, e.g. "mapboxgl.Map".
	New(constructor string, args ...any) (Value, error)

	// FuncOf wraps fn in a foreign-invocable function.
	FuncOf(fn Callback) Func

	// ParseJSON builds a foreign value from JSON text.
	ParseJSON(data []byte) (Value, error)

	// ValueOf converts a Go primitive to a foreign value.
	ValueOf(v any) Value

	Undefined() Value
	Null() Value
}

// IsNullish reports whether v is undefined or null.
func IsNullish(v Value) bool {
	if v == nil {
		return true
	}
	t := v.Type()
	return t == TypeUndefined || t == TypeNull
}

// ToWire serializes v to its JSON wire form and materializes it in rt.
// Struct tags decide field names; omitempty fields never produce nulls.
func ToWire(rt Runtime, v any) (Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.New(errors.PhaseEncode, errors.KindInvalidData).
			GoType(fmt.Sprintf("%T", v)).
			Cause(err).
			Detail("marshal wire value").
			Build()
	}
	return rt.ParseJSON(data)
}

// FromWire decodes a foreign value into dst through its JSON form.
func FromWire(v Value, dst any) error {
	data, err := v.JSON()
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return errors.New(errors.PhaseDecode, errors.KindTypeMismatch).
			GoType(fmt.Sprintf("%T", dst)).
			WireType(v.Type().String()).
			Cause(err).
			Build()
	}
	return nil
}
