package mapboxgl

import "github.com/wippyai/mapbox-gl/event"

// Map listeners are values implementing any subset of the interfaces below.
// Map.On subscribes one foreign callback per implemented method. The event
// name is the method name without "On", lowercased.

// Lifecycle events.
type (
	ResizeListener               interface{ OnResize(m *Map, e event.MapBaseEvent) }
	RemoveListener               interface{ OnRemove(m *Map, e event.MapBaseEvent) }
	LoadListener                 interface{ OnLoad(m *Map, e event.MapBaseEvent) }
	RenderListener               interface{ OnRender(m *Map, e event.MapBaseEvent) }
	IdleListener                 interface{ OnIdle(m *Map, e event.MapBaseEvent) }
	WebGLContextLostListener     interface{ OnWebGLContextLost(m *Map, e event.MapBaseEvent) }
	WebGLContextRestoredListener interface{ OnWebGLContextRestored(m *Map, e event.MapBaseEvent) }
)

// Mouse events.
type (
	MouseDownListener   interface{ OnMouseDown(m *Map, e event.MapMouseEvent) }
	MouseUpListener     interface{ OnMouseUp(m *Map, e event.MapMouseEvent) }
	PreClickListener    interface{ OnPreClick(m *Map, e event.MapMouseEvent) }
	ClickListener       interface{ OnClick(m *Map, e event.MapMouseEvent) }
	DblClickListener    interface{ OnDblClick(m *Map, e event.MapMouseEvent) }
	MouseMoveListener   interface{ OnMouseMove(m *Map, e event.MapMouseEvent) }
	MouseOverListener   interface{ OnMouseOver(m *Map, e event.MapMouseEvent) }
	MouseEnterListener  interface{ OnMouseEnter(m *Map, e event.MapMouseEvent) }
	MouseLeaveListener  interface{ OnMouseLeave(m *Map, e event.MapMouseEvent) }
	MouseOutListener    interface{ OnMouseOut(m *Map, e event.MapMouseEvent) }
	ContextMenuListener interface{ OnContextMenu(m *Map, e event.MapMouseEvent) }
)

// Touch events.
type (
	TouchStartListener  interface{ OnTouchStart(m *Map, e event.MapTouchEvent) }
	TouchEndListener    interface{ OnTouchEnd(m *Map, e event.MapTouchEvent) }
	TouchCancelListener interface{ OnTouchCancel(m *Map, e event.MapTouchEvent) }
)

// Wheel events.
type (
	WheelListener interface{ OnWheel(m *Map, e event.MapWheelEvent) }
)

// Camera events.
type (
	MoveStartListener   interface{ OnMoveStart(m *Map, e event.DragEvent) }
	MoveListener        interface{ OnMove(m *Map, e event.MapEvent) }
	MoveEndListener     interface{ OnMoveEnd(m *Map, e event.DragEvent) }
	DragStartListener   interface{ OnDragStart(m *Map, e event.MapBaseEvent) }
	DragListener        interface{ OnDrag(m *Map, e event.DragEvent) }
	DragEndListener     interface{ OnDragEnd(m *Map, e event.DragEvent) }
	ZoomStartListener   interface{ OnZoomStart(m *Map, e event.MapBaseEvent) }
	ZoomListener        interface{ OnZoom(m *Map, e event.MapBaseEvent) }
	ZoomEndListener     interface{ OnZoomEnd(m *Map, e event.MapBaseEvent) }
	RotateStartListener interface{ OnRotateStart(m *Map, e event.MapBaseEvent) }
	RotateListener      interface{ OnRotate(m *Map, e event.MapBaseEvent) }
	RotateEndListener   interface{ OnRotateEnd(m *Map, e event.MapBaseEvent) }
	PitchStartListener  interface{ OnPitchStart(m *Map, e event.MapBaseEvent) }
	PitchListener       interface{ OnPitch(m *Map, e event.MapBaseEvent) }
	PitchEndListener    interface{ OnPitchEnd(m *Map, e event.MapBaseEvent) }
)

// BoxZoom events.
type (
	BoxZoomStartListener  interface{ OnBoxZoomStart(m *Map, e event.MapBoxZoomEvent) }
	BoxZoomEndListener    interface{ OnBoxZoomEnd(m *Map, e event.MapBoxZoomEvent) }
	BoxZoomCancelListener interface{ OnBoxZoomCancel(m *Map, e event.MapBoxZoomEvent) }
)

// Data events.
type (
	DataListener              interface{ OnData(m *Map, e event.MapDataEvent) }
	StyleDataListener         interface{ OnStyleData(m *Map, e event.MapDataEvent) }
	SourceDataListener        interface{ OnSourceData(m *Map, e event.MapDataEvent) }
	DataLoadingListener       interface{ OnDataLoading(m *Map, e event.MapDataEvent) }
	StyleDataLoadingListener  interface{ OnStyleDataLoading(m *Map, e event.MapDataEvent) }
	SourceDataLoadingListener interface{ OnSourceDataLoading(m *Map, e event.MapBaseEvent) }
	StyleImageMissingListener interface{ OnStyleImageMissing(m *Map, e event.MapBaseEvent) }
)

// ErrorListener receives the message of "error" events.
type ErrorListener interface{ OnError(m *Map, message string) }

var mapEvents = []binding[*Map]{
	bind(ResizeListener.OnResize),
	bind(RemoveListener.OnRemove),
	bind(LoadListener.OnLoad),
	bind(RenderListener.OnRender),
	bind(IdleListener.OnIdle),
	bind(WebGLContextLostListener.OnWebGLContextLost),
	bind(WebGLContextRestoredListener.OnWebGLContextRestored),
	bind(MouseDownListener.OnMouseDown),
	bind(MouseUpListener.OnMouseUp),
	bind(PreClickListener.OnPreClick),
	bind(ClickListener.OnClick),
	bind(DblClickListener.OnDblClick),
	bind(MouseMoveListener.OnMouseMove),
	bind(MouseOverListener.OnMouseOver),
	bind(MouseEnterListener.OnMouseEnter),
	bind(MouseLeaveListener.OnMouseLeave),
	bind(MouseOutListener.OnMouseOut),
	bind(ContextMenuListener.OnContextMenu),
	bind(TouchStartListener.OnTouchStart),
	bind(TouchEndListener.OnTouchEnd),
	bind(TouchCancelListener.OnTouchCancel),
	bind(WheelListener.OnWheel),
	bind(MoveStartListener.OnMoveStart),
	bind(MoveListener.OnMove),
	bind(MoveEndListener.OnMoveEnd),
	bind(DragStartListener.OnDragStart),
	bind(DragListener.OnDrag),
	bind(DragEndListener.OnDragEnd),
	bind(ZoomStartListener.OnZoomStart),
	bind(ZoomListener.OnZoom),
	bind(ZoomEndListener.OnZoomEnd),
	bind(RotateStartListener.OnRotateStart),
	bind(RotateListener.OnRotate),
	bind(RotateEndListener.OnRotateEnd),
	bind(PitchStartListener.OnPitchStart),
	bind(PitchListener.OnPitch),
	bind(PitchEndListener.OnPitchEnd),
	bind(BoxZoomStartListener.OnBoxZoomStart),
	bind(BoxZoomEndListener.OnBoxZoomEnd),
	bind(BoxZoomCancelListener.OnBoxZoomCancel),
	bind(DataListener.OnData),
	bind(StyleDataListener.OnStyleData),
	bind(SourceDataListener.OnSourceData),
	bind(DataLoadingListener.OnDataLoading),
	bind(StyleDataLoadingListener.OnStyleDataLoading),
	bind(SourceDataLoadingListener.OnSourceDataLoading),
	bind(StyleImageMissingListener.OnStyleImageMissing),
	bind(ErrorListener.OnError),
}
