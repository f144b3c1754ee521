package mapboxgl

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/mapbox-gl/engine"
	"github.com/wippyai/mapbox-gl/errors"
	"github.com/wippyai/mapbox-gl/event"
)

// binding ties one listener capability to the foreign event it handles.
type binding[O any] struct {
	name    string
	kind    event.Kind
	matches func(listener any) bool
	call    func(listener any, owner O, payload any)
}

// bind builds a binding from a capability method expression such as
// LoadListener.OnLoad. The event name is the method name without the "On"
// prefix, lowercased: OnMouseDown handles "mousedown".
func bind[O, L, E any](method func(L, O, E)) binding[O] {
	iface := reflect.TypeFor[L]()
	if iface.Kind() != reflect.Interface || iface.NumMethod() != 1 {
		panic(fmt.Sprintf("mapboxgl: %s must be an interface with exactly one method", iface))
	}
	return binding[O]{
		name: eventName(iface.Method(0).Name),
		kind: kindOf[E](),
		matches: func(listener any) bool {
			_, ok := listener.(L)
			return ok
		},
		call: func(listener any, owner O, payload any) {
			method(listener.(L), owner, payload.(E))
		},
	}
}

func eventName(method string) string {
	return strings.ToLower(strings.TrimPrefix(method, "On"))
}

func kindOf[E any]() event.Kind {
	var zero E
	switch any(zero).(type) {
	case event.MapBaseEvent:
		return event.KindBase
	case event.MapEvent:
		return event.KindMap
	case event.MapDataEvent:
		return event.KindData
	case event.MapBoxZoomEvent:
		return event.KindBoxZoom
	case event.MapMouseEvent:
		return event.KindMouse
	case event.MapTouchEvent:
		return event.KindTouch
	case event.MapWheelEvent:
		return event.KindWheel
	case event.DragEvent:
		return event.KindDrag
	case string:
		return event.KindError
	}
	panic(fmt.Sprintf("mapboxgl: no decoder for payload type %T", zero))
}

// guarded is a listener that admits one invocation at a time. A call that
// finds it busy is rejected instead of waiting: everything runs on one
// goroutine, so the holder can only be further up the same stack.
type guarded struct {
	listener any
	mu       sync.Mutex
}

type subscription struct {
	fn   engine.Func
	name string
}

// Handle is one listener registration on a Map or Marker. It owns one
// foreign function per event the listener handles; all of them share the
// same guarded listener.
type Handle[O any] struct {
	target  engine.Value
	guard   *guarded
	layerID string
	subs    []subscription
	dropped bool
}

// newHandle subscribes listener to every event in table it has a method for.
// resolve returns the owner, or false once the owner is closed or collected.
func newHandle[O any](
	rt engine.Runtime,
	target engine.Value,
	owner string,
	resolve func() (O, bool),
	listener any,
	table []binding[O],
	layerID string,
) (*Handle[O], error) {
	if listener == nil {
		return nil, errors.InvalidInput(errors.PhaseRegistry, "listener is nil")
	}

	h := &Handle[O]{
		target:  target,
		guard:   &guarded{listener: listener},
		layerID: layerID,
	}

	for _, b := range table {
		if !b.matches(listener) {
			continue
		}
		fn := rt.FuncOf(dispatcher(owner, resolve, h.guard, b))

		var err error
		if layerID == "" {
			_, err = target.Call("on", b.name, fn)
		} else {
			_, err = target.Call("on", b.name, layerID, fn)
		}
		if err != nil {
			fn.Release()
			h.Drop()
			return nil, errors.Wrap(errors.PhaseRegistry, errors.KindForeign, err, "subscribe "+b.name)
		}
		h.subs = append(h.subs, subscription{name: b.name, fn: fn})
	}

	if len(h.subs) == 0 {
		return nil, errors.InvalidInput(errors.PhaseRegistry,
			fmt.Sprintf("%T implements no %s event methods", listener, owner))
	}
	return h, nil
}

// dispatcher returns the foreign callback for one event. Each call resolves
// the owner, decodes the payload and invokes the listener, stopping at the
// first step that fails. Failures are logged; the foreign caller never sees
// them.
func dispatcher[O any](owner string, resolve func() (O, bool), g *guarded, b binding[O]) engine.Callback {
	return func(_ engine.Value, args []engine.Value) any {
		target, ok := resolve()
		if !ok {
			Logger().Warn("event dropped",
				zap.String("event", b.name),
				zap.Error(errors.OwnerDropped(owner, b.name)))
			return nil
		}

		var raw engine.Value
		if len(args) > 0 {
			raw = args[0]
		}
		payload, err := event.Decode(b.kind, b.name, raw)
		if err != nil {
			fields := []zap.Field{zap.String("event", b.name), zap.Error(err)}
			if e, ok := err.(*errors.Error); ok && e.Field() != "" {
				fields = append(fields, zap.String("field", e.Field()))
			}
			Logger().Error("failed to decode event payload", fields...)
			return nil
		}

		if !g.mu.TryLock() {
			Logger().Error("handler is being called somewhere",
				zap.String("event", b.name),
				zap.Error(errors.Reentrancy(b.name)))
			return nil
		}
		defer g.mu.Unlock()
		defer func() {
			if r := recover(); r != nil {
				Logger().Error("listener panicked",
					zap.String("event", b.name),
					zap.Any("panic", r),
					zap.Stack("stack"))
			}
		}()

		b.call(g.listener, target, payload)
		return nil
	}
}

// Events lists the event names this handle is subscribed to.
func (h *Handle[O]) Events() []string {
	names := make([]string, len(h.subs))
	for i, s := range h.subs {
		names[i] = s.name
	}
	return names
}

// LayerID returns the layer the handle is scoped to, or "".
func (h *Handle[O]) LayerID() string {
	return h.layerID
}

// Drop unsubscribes every function from the foreign object, then releases
// them. Calling Drop again does nothing.
func (h *Handle[O]) Drop() {
	if h.dropped {
		return
	}
	h.dropped = true

	for _, s := range h.subs {
		var err error
		if h.layerID == "" {
			_, err = h.target.Call("off", s.name, s.fn)
		} else {
			_, err = h.target.Call("off", s.name, h.layerID, s.fn)
		}
		if err != nil {
			Logger().Warn("unsubscribe failed", zap.String("event", s.name), zap.Error(err))
		}
		s.fn.Release()
	}
	h.subs = nil
}
