package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseDecode,
				Kind:     KindTypeMismatch,
				Event:    "MapMouseEvent",
				Path:     []string{"lngLat", "lng"},
				GoType:   "float64",
				WireType: "string",
				Detail:   "cannot convert",
			},
			contains: []string{"[decode]", "type_mismatch", "lngLat.lng", "MapMouseEvent", "float64", "string", "cannot convert"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseRegistry,
				Kind:  KindBorrowConflict,
			},
			contains: []string{"[registry]", "borrow_conflict"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseRuntime,
				Kind:   KindForeign,
				Detail: "call addLayer",
				Cause:  errors.New("TypeError: layer.id is required"),
			},
			contains: []string{"[runtime]", "foreign", "call addLayer", "caused by", "layer.id is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseEncode,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := FieldMissing(PhaseDecode, "MapMouseEvent", []string{"lngLat"})

	if !errors.Is(err, &Error{Phase: PhaseDecode, Kind: KindFieldMissing}) {
		t.Error("expected match on phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseEncode, Kind: KindFieldMissing}) {
		t.Error("expected no match on different phase")
	}
	if errors.Is(err, &Error{Phase: PhaseDecode, Kind: KindTypeMismatch}) {
		t.Error("expected no match on different kind")
	}

	wrapped := fmt.Errorf("dispatch mousemove: %w", err)
	if !errors.Is(wrapped, &Error{Phase: PhaseDecode, Kind: KindFieldMissing}) {
		t.Error("expected match through fmt wrapping")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := New(PhaseDecode, KindTypeMismatch).
		Event("MapTouchEvent").
		Path("points", "0").
		GoType("event.Point").
		WireType("number").
		Value(42).
		Cause(cause).
		Detail("element %d", 0).
		Build()

	if err.Phase != PhaseDecode || err.Kind != KindTypeMismatch {
		t.Fatalf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.Event != "MapTouchEvent" {
		t.Errorf("Event = %q", err.Event)
	}
	if strings.Join(err.Path, ".") != "points.0" {
		t.Errorf("Path = %v", err.Path)
	}
	if err.GoType != "event.Point" || err.WireType != "number" {
		t.Errorf("types = %q/%q", err.GoType, err.WireType)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v", err.Value)
	}
	if err.Detail != "element 0" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"FieldMissing", FieldMissing(PhaseDecode, "MapMouseEvent", []string{"point"}), PhaseDecode, KindFieldMissing},
		{"TypeMismatch", TypeMismatch(PhaseDecode, "MapBaseEvent", []string{"type"}, "string", "number"), PhaseDecode, KindTypeMismatch},
		{"Unsupported", Unsupported(PhaseRuntime, "custom layers"), PhaseRuntime, KindUnsupported},
		{"InvalidData", InvalidData(PhaseEncode, []string{"layers"}, "bad"), PhaseEncode, KindInvalidData},
		{"Wrap", Wrap(PhaseEncode, KindInvalidData, errors.New("x"), "encode"), PhaseEncode, KindInvalidData},
		{"NotInitialized", NotInitialized(PhaseRuntime, "map"), PhaseRuntime, KindNotInitialized},
		{"NotFound", NotFound(PhaseRegistry, "marker", "abc"), PhaseRegistry, KindNotFound},
		{"InvalidInput", InvalidInput(PhaseRegistry, "nil listener"), PhaseRegistry, KindInvalidInput},
		{"BorrowConflict", BorrowConflict("callbacks"), PhaseRegistry, KindBorrowConflict},
		{"OwnerDropped", OwnerDropped("map", "click"), PhaseDispatch, KindOwnerDropped},
		{"Reentrancy", Reentrancy("click"), PhaseDispatch, KindReentrancy},
		{"Foreign", Foreign("call on", errors.New("x")), PhaseRuntime, KindForeign},
		{"LoadImage", LoadImage("https://example.com/a.png", "404"), PhaseLoad, KindLoadImage},
		{"BadGeoJSON", BadGeoJSON(errors.New("x")), PhaseEncode, KindBadGeoJSON},
		{"Closed", Closed("map"), PhaseRuntime, KindClosed},
		{"ParseFailed", ParseFailed("style", errors.New("x")), PhaseParse, KindInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("Phase = %s, want %s", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %s, want %s", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty message")
			}
		})
	}
}

func TestFieldMissing_NamesEventAndField(t *testing.T) {
	err := FieldMissing(PhaseDecode, "MapMouseEvent", []string{"lngLat"})
	if err.Field() != "lngLat" {
		t.Fatalf("Field() = %q", err.Field())
	}
	msg := err.Error()
	if !strings.Contains(msg, "MapMouseEvent") || !strings.Contains(msg, `"lngLat"`) {
		t.Fatalf("message %q should name event and field", msg)
	}
}

func TestKindHelpers(t *testing.T) {
	inner := BorrowConflict("handles")
	outer := Wrap(PhaseRegistry, KindInvalidInput, inner, "register listener")

	if KindOf(outer) != KindInvalidInput {
		t.Errorf("KindOf = %s", KindOf(outer))
	}
	if !IsKind(outer, KindBorrowConflict) {
		t.Error("IsKind should see the wrapped kind")
	}
	if IsKind(outer, KindNotFound) {
		t.Error("IsKind reported a kind that is not in the chain")
	}
	if KindOf(errors.New("plain")) != "" {
		t.Error("KindOf on plain error should be empty")
	}
}
