package engine

import (
	_ "embed"
	"reflect"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	"github.com/wippyai/mapbox-gl/errors"
)

//go:embed shim/mapboxgl.js
var shimSource string

// Config holds configuration for runtime creation
type Config struct {
	// Scripts are evaluated in order after the built-in globals are installed.
	Scripts []Script

	// MaxTasks bounds a single RunPending drain.
	// 0 means default (100000).
	MaxTasks int

	// NoShim skips the embedded headless mapboxgl namespace. Use it when a
	// script in Scripts provides its own.
	NoShim bool
}

// Script is a named JavaScript source evaluated at startup.
type Script struct {
	Name   string
	Source string
}

// GojaRuntime implements Runtime on an embedded goja VM.
//
// The VM is not safe for concurrent use. A GojaRuntime and every value
// created from it must stay on one goroutine; timers and microtasks queued
// by scripts run only when RunPending is called.
type GojaRuntime struct {
	vm        *goja.Runtime
	loop      *loop
	stringify goja.Callable
	parse     goja.Callable
	closed    atomic.Bool
}

// NewHeadless creates a runtime with the headless mapboxgl namespace loaded.
func NewHeadless() (*GojaRuntime, error) {
	return NewGojaRuntime(nil)
}

// NewGojaRuntime creates a goja-backed runtime with custom configuration
func NewGojaRuntime(cfg *Config) (*GojaRuntime, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	vm := goja.New()
	r := &GojaRuntime{
		vm:   vm,
		loop: newLoop(cfg.MaxTasks),
	}

	jsonObj := vm.Get("JSON").ToObject(vm)
	var ok bool
	if r.stringify, ok = goja.AssertFunction(jsonObj.Get("stringify")); !ok {
		return nil, errors.NotInitialized(errors.PhaseLoad, "JSON.stringify")
	}
	if r.parse, ok = goja.AssertFunction(jsonObj.Get("parse")); !ok {
		return nil, errors.NotInitialized(errors.PhaseLoad, "JSON.parse")
	}

	if err := r.installGlobals(); err != nil {
		return nil, err
	}

	if !cfg.NoShim {
		if err := r.LoadScript("mapboxgl.js", shimSource); err != nil {
			return nil, err
		}
	}
	for _, s := range cfg.Scripts {
		if err := r.LoadScript(s.Name, s.Source); err != nil {
			return nil, err
		}
	}

	debugf("goja runtime ready (shim=%v, scripts=%d)", !cfg.NoShim, len(cfg.Scripts))
	return r, nil
}

// VM returns the underlying goja runtime.
func (r *GojaRuntime) VM() *goja.Runtime {
	return r.vm
}

// LoadScript evaluates src in the global scope.
func (r *GojaRuntime) LoadScript(name, src string) error {
	if _, err := r.vm.RunScript(name, src); err != nil {
		return errors.New(errors.PhaseLoad, errors.KindForeign).
			Detail("evaluate %s", name).
			Cause(err).
			Build()
	}
	return nil
}

// Eval evaluates src and returns its completion value.
func (r *GojaRuntime) Eval(src string) (Value, error) {
	v, err := r.vm.RunString(src)
	if err != nil {
		return nil, errors.Foreign("eval", err)
	}
	return r.wrap(v), nil
}

// RunPending drains queued timers and microtasks, including those scheduled
// while draining. It returns the number of tasks run.
func (r *GojaRuntime) RunPending() int {
	if r.closed.Load() {
		return 0
	}
	return r.loop.drain()
}

// Pending reports the number of queued tasks.
func (r *GojaRuntime) Pending() int {
	return r.loop.len()
}

// Close discards queued tasks and interrupts any running script.
func (r *GojaRuntime) Close() error {
	if r.closed.Swap(true) {
		return nil
	}
	r.loop.reset()
	r.vm.Interrupt("runtime closed")
	return nil
}

func (r *GojaRuntime) Global(name string) Value {
	return r.wrap(r.vm.Get(name))
}

func (r *GojaRuntime) New(constructor string, args ...any) (Value, error) {
	if r.closed.Load() {
		return nil, errors.Closed("runtime")
	}
	ctor, err := r.lookup(constructor)
	if err != nil {
		return nil, err
	}
	obj, err := r.vm.New(ctor, r.convertArgs(args)...)
	if err != nil {
		return nil, errors.Foreign("new "+constructor, err)
	}
	return r.wrap(obj), nil
}

func (r *GojaRuntime) FuncOf(fn Callback) Func {
	f := &gojaFunc{}
	f.gojaValue = &gojaValue{rt: r}
	f.v = r.vm.ToValue(func(call goja.FunctionCall) goja.Value {
		if f.released.Load() {
			debugf("call to released function ignored")
			return goja.Undefined()
		}
		args := make([]Value, len(call.Arguments))
		for i, a := range call.Arguments {
			args[i] = r.wrap(a)
		}
		res := fn(r.wrap(call.This), args)
		if res == nil {
			return goja.Undefined()
		}
		return r.toGoja(res)
	})
	return f
}

func (r *GojaRuntime) ParseJSON(data []byte) (Value, error) {
	v, err := r.parse(goja.Undefined(), r.vm.ToValue(string(data)))
	if err != nil {
		return nil, errors.New(errors.PhaseEncode, errors.KindInvalidData).
			Detail("JSON.parse").
			Cause(err).
			Build()
	}
	return r.wrap(v), nil
}

func (r *GojaRuntime) ValueOf(v any) Value {
	return r.wrap(r.toGoja(v))
}

func (r *GojaRuntime) Undefined() Value {
	return r.wrap(goja.Undefined())
}

func (r *GojaRuntime) Null() Value {
	return r.wrap(goja.Null())
}

func (r *GojaRuntime) installGlobals() error {
	g := r.vm.GlobalObject()

	if err := g.Set("setTimeout", func(call goja.FunctionCall) goja.Value {
		fn, ok := goja.AssertFunction(call.Argument(0))
		if !ok {
			panic(r.vm.NewTypeError("setTimeout: callback is not a function"))
		}
		delay := call.Argument(1).ToFloat()
		var extra []goja.Value
		if len(call.Arguments) > 2 {
			extra = append(extra, call.Arguments[2:]...)
		}
		return r.vm.ToValue(r.loop.schedule(delay, r.taskFor(fn, extra)))
	}); err != nil {
		return err
	}

	if err := g.Set("clearTimeout", func(call goja.FunctionCall) goja.Value {
		r.loop.cancel(call.Argument(0).ToInteger())
		return goja.Undefined()
	}); err != nil {
		return err
	}

	if err := g.Set("queueMicrotask", func(call goja.FunctionCall) goja.Value {
		fn, ok := goja.AssertFunction(call.Argument(0))
		if !ok {
			panic(r.vm.NewTypeError("queueMicrotask: callback is not a function"))
		}
		r.loop.microtask(r.taskFor(fn, nil))
		return goja.Undefined()
	}); err != nil {
		return err
	}

	console := r.vm.NewObject()
	for name, level := range map[string]func(string, ...zap.Field){
		"debug": func(msg string, f ...zap.Field) { Logger().Debug(msg, f...) },
		"log":   func(msg string, f ...zap.Field) { Logger().Info(msg, f...) },
		"info":  func(msg string, f ...zap.Field) { Logger().Info(msg, f...) },
		"warn":  func(msg string, f ...zap.Field) { Logger().Warn(msg, f...) },
		"error": func(msg string, f ...zap.Field) { Logger().Error(msg, f...) },
	} {
		if err := console.Set(name, func(call goja.FunctionCall) goja.Value {
			parts := make([]string, len(call.Arguments))
			for i, a := range call.Arguments {
				parts[i] = a.String()
			}
			level(strings.Join(parts, " "), zap.String("source", "console"))
			return goja.Undefined()
		}); err != nil {
			return err
		}
	}
	return g.Set("console", console)
}

func (r *GojaRuntime) taskFor(fn goja.Callable, args []goja.Value) func() {
	return func() {
		if _, err := fn(goja.Undefined(), args...); err != nil {
			Logger().Warn("uncaught exception in task", zap.Error(err))
		}
	}
}

func (r *GojaRuntime) lookup(path string) (goja.Value, error) {
	var cur goja.Value = r.vm.GlobalObject()
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(*goja.Object)
		if !ok {
			return nil, errors.NotFound(errors.PhaseRuntime, "constructor", path)
		}
		cur = obj.Get(part)
		if cur == nil || goja.IsUndefined(cur) || goja.IsNull(cur) {
			return nil, errors.NotFound(errors.PhaseRuntime, "constructor", path)
		}
	}
	return cur, nil
}

func (r *GojaRuntime) convertArgs(args []any) []goja.Value {
	out := make([]goja.Value, len(args))
	for i, a := range args {
		out[i] = r.toGoja(a)
	}
	return out
}

func (r *GojaRuntime) toGoja(v any) goja.Value {
	switch x := v.(type) {
	case nil:
		return goja.Null()
	case *gojaValue:
		return x.v
	case *gojaFunc:
		return x.v
	case goja.Value:
		return x
	case Value:
		// Belongs to another runtime.
		Logger().Warn("foreign value from another runtime passed to goja", zap.String("type", x.Type().String()))
		return goja.Undefined()
	default:
		return r.vm.ToValue(x)
	}
}

func (r *GojaRuntime) wrap(v goja.Value) *gojaValue {
	if v == nil {
		v = goja.Undefined()
	}
	return &gojaValue{rt: r, v: v}
}

type gojaValue struct {
	rt *GojaRuntime
	v  goja.Value
}

func (v *gojaValue) Type() Type {
	switch {
	case v.v == nil || goja.IsUndefined(v.v):
		return TypeUndefined
	case goja.IsNull(v.v):
		return TypeNull
	}
	if obj, ok := v.v.(*goja.Object); ok {
		if _, ok := goja.AssertFunction(obj); ok {
			return TypeFunction
		}
		return TypeObject
	}
	if t := v.v.ExportType(); t != nil {
		switch t.Kind() {
		case reflect.Bool:
			return TypeBoolean
		case reflect.String:
			return TypeString
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return TypeNumber
		}
	}
	return TypeObject
}

func (v *gojaValue) Get(key string) Value {
	obj, ok := v.v.(*goja.Object)
	if !ok {
		return v.rt.Undefined()
	}
	return v.rt.wrap(obj.Get(key))
}

func (v *gojaValue) Set(key string, val any) error {
	obj, ok := v.v.(*goja.Object)
	if !ok {
		return errors.New(errors.PhaseRuntime, errors.KindTypeMismatch).
			WireType(v.Type().String()).
			Detail("set %q on non-object", key).
			Build()
	}
	if err := obj.Set(key, v.rt.toGoja(val)); err != nil {
		return errors.Foreign("set "+key, err)
	}
	return nil
}

func (v *gojaValue) Call(method string, args ...any) (Value, error) {
	obj, ok := v.v.(*goja.Object)
	if !ok {
		return nil, errors.New(errors.PhaseRuntime, errors.KindTypeMismatch).
			WireType(v.Type().String()).
			Detail("call %s on non-object", method).
			Build()
	}
	fn, ok := goja.AssertFunction(obj.Get(method))
	if !ok {
		return nil, errors.NotFound(errors.PhaseRuntime, "method", method)
	}
	res, err := fn(obj, v.rt.convertArgs(args)...)
	if err != nil {
		return nil, errors.Foreign(method, err)
	}
	return v.rt.wrap(res), nil
}

func (v *gojaValue) Invoke(args ...any) (Value, error) {
	fn, ok := goja.AssertFunction(v.v)
	if !ok {
		return nil, errors.New(errors.PhaseRuntime, errors.KindTypeMismatch).
			WireType(v.Type().String()).
			Detail("invoke non-function").
			Build()
	}
	res, err := fn(goja.Undefined(), v.rt.convertArgs(args)...)
	if err != nil {
		return nil, errors.Foreign("invoke", err)
	}
	return v.rt.wrap(res), nil
}

func (v *gojaValue) Bool() bool {
	return v.v.ToBoolean()
}

func (v *gojaValue) Float() float64 {
	return v.v.ToFloat()
}

func (v *gojaValue) String() string {
	return v.v.String()
}

func (v *gojaValue) Len() int {
	obj, ok := v.v.(*goja.Object)
	if !ok {
		return 0
	}
	l := obj.Get("length")
	if l == nil {
		return 0
	}
	return int(l.ToInteger())
}

func (v *gojaValue) Index(i int) Value {
	obj, ok := v.v.(*goja.Object)
	if !ok {
		return v.rt.Undefined()
	}
	return v.rt.wrap(obj.Get(strconv.Itoa(i)))
}

func (v *gojaValue) JSON() ([]byte, error) {
	res, err := v.rt.stringify(goja.Undefined(), v.v)
	if err != nil {
		return nil, errors.Foreign("JSON.stringify", err)
	}
	if res == nil || goja.IsUndefined(res) {
		return []byte("null"), nil
	}
	return []byte(res.String()), nil
}

// Goja returns the underlying goja value.
func (v *gojaValue) Goja() goja.Value {
	return v.v
}

type gojaFunc struct {
	*gojaValue
	released atomic.Bool
}

func (f *gojaFunc) Release() {
	f.released.Store(true)
}

var (
	_ Runtime = (*GojaRuntime)(nil)
	_ Value   = (*gojaValue)(nil)
	_ Func    = (*gojaFunc)(nil)
)
