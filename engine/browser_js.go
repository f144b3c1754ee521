//go:build js && wasm

package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
	"syscall/js"

	"github.com/wippyai/mapbox-gl/errors"
)

// BrowserRuntime implements Runtime on the host JavaScript environment of a
// js/wasm build, where the real mapbox-gl-js bundle defines the global
// mapboxgl namespace.
type BrowserRuntime struct {
	json js.Value
}

// NewBrowser returns the runtime of the hosting page.
func NewBrowser() (*BrowserRuntime, error) {
	if g := js.Global().Get("mapboxgl"); g.IsUndefined() {
		return nil, errors.NotInitialized(errors.PhaseLoad, "mapboxgl namespace")
	}
	return &BrowserRuntime{json: js.Global().Get("JSON")}, nil
}

func (r *BrowserRuntime) Global(name string) Value {
	return r.wrap(js.Global().Get(name))
}

func (r *BrowserRuntime) New(constructor string, args ...any) (v Value, err error) {
	cur := js.Global()
	for _, part := range strings.Split(constructor, ".") {
		cur = cur.Get(part)
		if cur.IsUndefined() || cur.IsNull() {
			return nil, errors.NotFound(errors.PhaseRuntime, "constructor", constructor)
		}
	}
	defer catch(&err, "new "+constructor)
	return r.wrap(cur.New(r.convertArgs(args)...)), nil
}

func (r *BrowserRuntime) FuncOf(fn Callback) Func {
	f := &browserFunc{}
	f.fn = js.FuncOf(func(this js.Value, args []js.Value) any {
		wrapped := make([]Value, len(args))
		for i, a := range args {
			wrapped[i] = r.wrap(a)
		}
		res := fn(r.wrap(this), wrapped)
		if res == nil {
			return js.Undefined()
		}
		return r.toJS(res)
	})
	f.browserValue = &browserValue{rt: r, v: f.fn.Value}
	return f
}

func (r *BrowserRuntime) ParseJSON(data []byte) (v Value, err error) {
	defer catch(&err, "JSON.parse")
	return r.wrap(r.json.Call("parse", string(data))), nil
}

func (r *BrowserRuntime) ValueOf(v any) Value {
	return r.wrap(r.toJS(v))
}

func (r *BrowserRuntime) Undefined() Value {
	return r.wrap(js.Undefined())
}

func (r *BrowserRuntime) Null() Value {
	return r.wrap(js.Null())
}

func (r *BrowserRuntime) wrap(v js.Value) *browserValue {
	return &browserValue{rt: r, v: v}
}

func (r *BrowserRuntime) convertArgs(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = r.toJS(a)
	}
	return out
}

func (r *BrowserRuntime) toJS(v any) any {
	switch x := v.(type) {
	case nil:
		return js.Null()
	case *browserValue:
		return x.v
	case *browserFunc:
		return x.fn
	case js.Value:
		return x
	case Value:
		Logger().Warn("foreign value from another runtime passed to browser runtime")
		return js.Undefined()
	default:
		return js.ValueOf(x)
	}
}

// catch converts a js.Error panic into an error.
func catch(err *error, what string) {
	r := recover()
	if r == nil {
		return
	}
	if jsErr, ok := r.(js.Error); ok {
		*err = errors.Foreign(what, jsErr)
		return
	}
	*err = errors.Foreign(what, fmt.Errorf("%v", r))
}

type browserValue struct {
	rt *BrowserRuntime
	v  js.Value
}

func (v *browserValue) Type() Type {
	switch v.v.Type() {
	case js.TypeUndefined:
		return TypeUndefined
	case js.TypeNull:
		return TypeNull
	case js.TypeBoolean:
		return TypeBoolean
	case js.TypeNumber:
		return TypeNumber
	case js.TypeString:
		return TypeString
	case js.TypeFunction:
		return TypeFunction
	default:
		return TypeObject
	}
}

func (v *browserValue) isObject() bool {
	t := v.v.Type()
	return t == js.TypeObject || t == js.TypeFunction
}

func (v *browserValue) Get(key string) Value {
	if !v.isObject() {
		return v.rt.Undefined()
	}
	return v.rt.wrap(v.v.Get(key))
}

func (v *browserValue) Set(key string, val any) (err error) {
	if !v.isObject() {
		return errors.New(errors.PhaseRuntime, errors.KindTypeMismatch).
			WireType(v.Type().String()).
			Detail("set %q on non-object", key).
			Build()
	}
	defer catch(&err, "set "+key)
	v.v.Set(key, v.rt.toJS(val))
	return nil
}

func (v *browserValue) Call(method string, args ...any) (res Value, err error) {
	if !v.isObject() {
		return nil, errors.New(errors.PhaseRuntime, errors.KindTypeMismatch).
			WireType(v.Type().String()).
			Detail("call %s on non-object", method).
			Build()
	}
	if v.v.Get(method).Type() != js.TypeFunction {
		return nil, errors.NotFound(errors.PhaseRuntime, "method", method)
	}
	defer catch(&err, method)
	return v.rt.wrap(v.v.Call(method, v.rt.convertArgs(args)...)), nil
}

func (v *browserValue) Invoke(args ...any) (res Value, err error) {
	if v.v.Type() != js.TypeFunction {
		return nil, errors.New(errors.PhaseRuntime, errors.KindTypeMismatch).
			WireType(v.Type().String()).
			Detail("invoke non-function").
			Build()
	}
	defer catch(&err, "invoke")
	return v.rt.wrap(v.v.Invoke(v.rt.convertArgs(args)...)), nil
}

func (v *browserValue) Bool() bool {
	return v.v.Truthy()
}

func (v *browserValue) Float() float64 {
	if v.v.Type() != js.TypeNumber {
		return js.Global().Call("Number", v.v).Float()
	}
	return v.v.Float()
}

func (v *browserValue) String() string {
	if v.v.Type() == js.TypeString {
		return v.v.String()
	}
	return js.Global().Call("String", v.v).String()
}

func (v *browserValue) Len() int {
	if !v.isObject() {
		return 0
	}
	return v.v.Length()
}

func (v *browserValue) Index(i int) Value {
	if !v.isObject() {
		return v.rt.Undefined()
	}
	return v.rt.wrap(v.v.Index(i))
}

func (v *browserValue) JSON() (data []byte, err error) {
	defer catch(&err, "JSON.stringify")
	res := v.rt.json.Call("stringify", v.v)
	if res.IsUndefined() {
		return []byte("null"), nil
	}
	return []byte(res.String()), nil
}

type browserFunc struct {
	*browserValue
	fn       js.Func
	released atomic.Bool
}

func (f *browserFunc) Release() {
	if f.released.Swap(true) {
		return
	}
	f.fn.Release()
}

var (
	_ Runtime = (*BrowserRuntime)(nil)
	_ Value   = (*browserValue)(nil)
	_ Func    = (*browserFunc)(nil)
)
