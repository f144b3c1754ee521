package engine

import (
	"testing"

	"github.com/wippyai/mapbox-gl/errors"
)

func newTestRuntime(t *testing.T) *GojaRuntime {
	t.Helper()
	rt, err := NewHeadless()
	if err != nil {
		t.Fatalf("NewHeadless failed: %v", err)
	}
	t.Cleanup(func() { _ = rt.Close() })
	return rt
}

func TestNewGojaRuntimeWithConfig(t *testing.T) {
	tests := []struct {
		cfg       *Config
		name      string
		wantShim  bool
		wantExtra bool
	}{
		{nil, "nil config", true, false},
		{&Config{}, "default config", true, false},
		{&Config{NoShim: true}, "no shim", false, false},
		{&Config{Scripts: []Script{{Name: "extra.js", Source: "var extra = 42;"}}}, "extra script", true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rt, err := NewGojaRuntime(tc.cfg)
			if err != nil {
				t.Fatalf("NewGojaRuntime failed: %v", err)
			}
			defer rt.Close()

			hasShim := rt.Global("mapboxgl").Type() == TypeObject
			if hasShim != tc.wantShim {
				t.Errorf("mapboxgl present = %v, want %v", hasShim, tc.wantShim)
			}
			hasExtra := rt.Global("extra").Type() == TypeNumber
			if hasExtra != tc.wantExtra {
				t.Errorf("extra present = %v, want %v", hasExtra, tc.wantExtra)
			}
		})
	}
}

func TestNewGojaRuntime_BadScript(t *testing.T) {
	_, err := NewGojaRuntime(&Config{Scripts: []Script{{Name: "bad.js", Source: "this is not js"}}})
	if err == nil {
		t.Fatal("expected error for invalid script")
	}
	if !errors.IsKind(err, errors.KindForeign) {
		t.Fatalf("expected foreign error, got %v", err)
	}
}

func TestValue_Types(t *testing.T) {
	rt := newTestRuntime(t)

	v, err := rt.Eval(`({n: 1.5, i: 3, s: "x", b: true, z: null, o: {}, a: [1, 2], f: function () {}})`)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		key  string
		want Type
	}{
		{"n", TypeNumber},
		{"i", TypeNumber},
		{"s", TypeString},
		{"b", TypeBoolean},
		{"z", TypeNull},
		{"o", TypeObject},
		{"a", TypeObject},
		{"f", TypeFunction},
		{"missing", TypeUndefined},
	}
	for _, tc := range tests {
		if got := v.Get(tc.key).Type(); got != tc.want {
			t.Errorf("%s: Type() = %v, want %v", tc.key, got, tc.want)
		}
	}

	if v.Get("a").Len() != 2 || v.Get("a").Index(1).Float() != 2 {
		t.Errorf("array access broken")
	}
	if v.Get("s").Get("anything").Type() != TypeUndefined {
		t.Errorf("property of primitive should be undefined")
	}
}

func TestValue_CallAndSet(t *testing.T) {
	rt := newTestRuntime(t)

	obj, err := rt.Eval(`({k: 2, mul: function (x) { return this.k * x; }, boom: function () { throw new Error("boom"); }})`)
	if err != nil {
		t.Fatal(err)
	}

	res, err := obj.Call("mul", 21)
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if res.Float() != 42 {
		t.Fatalf("mul(21) = %v, want 42", res.Float())
	}

	if err := obj.Set("k", 3); err != nil {
		t.Fatal(err)
	}
	res, _ = obj.Call("mul", 2)
	if res.Float() != 6 {
		t.Fatalf("after Set, mul(2) = %v, want 6", res.Float())
	}

	if _, err := obj.Call("boom"); !errors.IsKind(err, errors.KindForeign) {
		t.Fatalf("expected foreign error, got %v", err)
	}
	if _, err := obj.Call("nope"); !errors.IsKind(err, errors.KindNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if _, err := rt.ValueOf(1).Call("mul"); !errors.IsKind(err, errors.KindTypeMismatch) {
		t.Fatalf("expected type mismatch calling on number, got %v", err)
	}
}

func TestFuncOf_InvokeAndRelease(t *testing.T) {
	rt := newTestRuntime(t)

	var calls int
	var got string
	fn := rt.FuncOf(func(_ Value, args []Value) any {
		calls++
		if len(args) > 0 {
			got = args[0].String()
		}
		return "ok"
	})

	if err := rt.VM().Set("cb", fn.(*gojaFunc).v); err != nil {
		t.Fatal(err)
	}
	res, err := rt.Eval(`cb("hello")`)
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 || got != "hello" || res.String() != "ok" {
		t.Fatalf("calls=%d got=%q res=%q", calls, got, res.String())
	}

	fn.Release()
	res, err = rt.Eval(`cb("again")`)
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatal("released function should not reach Go")
	}
	if res.Type() != TypeUndefined {
		t.Fatalf("released function returned %v", res.Type())
	}
}

func TestNew_Constructor(t *testing.T) {
	rt := newTestRuntime(t)

	ll, err := rt.New("mapboxgl.LngLat", 10, 20)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if ll.Get("lng").Float() != 10 || ll.Get("lat").Float() != 20 {
		t.Fatalf("unexpected LngLat %s", ll.String())
	}

	if _, err := rt.New("mapboxgl.LngLat", 0, 100); !errors.IsKind(err, errors.KindForeign) {
		t.Fatalf("expected foreign error for invalid latitude, got %v", err)
	}
	if _, err := rt.New("mapboxgl.Nope"); !errors.IsKind(err, errors.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestParseJSONAndJSON(t *testing.T) {
	rt := newTestRuntime(t)

	v, err := rt.ParseJSON([]byte(`{"a":[1,2,3],"b":{"c":"d"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if v.Get("b").Get("c").String() != "d" {
		t.Fatal("parsed value not accessible")
	}
	data, err := v.JSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"a":[1,2,3],"b":{"c":"d"}}` {
		t.Fatalf("JSON() = %s", data)
	}

	if _, err := rt.ParseJSON([]byte(`{`)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}

	data, err = rt.Undefined().JSON()
	if err != nil || string(data) != "null" {
		t.Fatalf("undefined JSON() = %s, %v", data, err)
	}
}

func TestClose_RejectsNew(t *testing.T) {
	rt, err := NewHeadless()
	if err != nil {
		t.Fatal(err)
	}
	_ = rt.Close()
	if _, err := rt.New("mapboxgl.LngLat", 0, 0); !errors.IsKind(err, errors.KindClosed) {
		t.Fatalf("expected closed error, got %v", err)
	}
	if rt.RunPending() != 0 {
		t.Fatal("closed runtime should not run tasks")
	}
}
