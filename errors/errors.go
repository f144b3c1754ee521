package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode   Phase = "encode"   // Go to wire
	PhaseDecode   Phase = "decode"   // wire to Go
	PhaseDispatch Phase = "dispatch" // foreign-invoked listener dispatch
	PhaseRuntime  Phase = "runtime"  // foreign method calls
	PhaseRegistry Phase = "registry" // listener/marker/callback registries
	PhaseLoad     Phase = "load"     // script and image loading
	PhaseParse    Phase = "parse"    // style documents
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch   Kind = "type_mismatch"
	KindInvalidData    Kind = "invalid_data"
	KindUnsupported    Kind = "unsupported"
	KindFieldMissing   Kind = "field_missing"
	KindNotFound       Kind = "not_found"
	KindNotInitialized Kind = "not_initialized"
	KindInvalidInput   Kind = "invalid_input"
	KindBorrowConflict Kind = "borrow_conflict"
	KindOwnerDropped   Kind = "owner_dropped"
	KindReentrancy     Kind = "reentrancy"
	KindForeign        Kind = "foreign"
	KindLoadImage      Kind = "load_image"
	KindBadGeoJSON     Kind = "bad_geojson"
	KindClosed         Kind = "closed"
)

// Error is the structured error type used throughout the binding
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Event    string
	GoType   string
	WireType string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Event != "" {
		b.WriteString(" in ")
		b.WriteString(e.Event)
	}

	if e.GoType != "" || e.WireType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.WireType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", wire type ")
			b.WriteString(e.WireType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("wire type ")
			b.WriteString(e.WireType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.WireType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Field returns the last path element, which for decode errors is the
// offending payload field.
func (e *Error) Field() string {
	if len(e.Path) == 0 {
		return ""
	}
	return e.Path[len(e.Path)-1]
}

// KindOf returns the Kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether any *Error in err's chain has the given kind.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		var e *Error
		if !stderrors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Cause
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Event sets the event kind the error relates to
func (b *Builder) Event(kind string) *Builder {
	b.err.Event = kind
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// WireType sets the wire (foreign) type name
func (b *Builder) WireType(t string) *Builder {
	b.err.WireType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a type mismatch error for a payload field
func TypeMismatch(phase Phase, event string, path []string, goType, wireType string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTypeMismatch,
		Event:    event,
		Path:     path,
		GoType:   goType,
		WireType: wireType,
	}
}

// FieldMissing creates a missing field error
func FieldMissing(phase Phase, event string, path []string) *Error {
	field := ""
	if len(path) > 0 {
		field = path[len(path)-1]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindFieldMissing,
		Event:  event,
		Path:   path,
		Detail: fmt.Sprintf("required field %q not found", field),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// NotInitialized creates a not-initialized error
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// BorrowConflict reports that a registry is exclusively borrowed elsewhere.
func BorrowConflict(what string) *Error {
	return &Error{
		Phase:  PhaseRegistry,
		Kind:   KindBorrowConflict,
		Detail: fmt.Sprintf("couldn't borrow %s: already in use", what),
	}
}

// OwnerDropped reports a foreign callback whose owning object is gone.
func OwnerDropped(owner, event string) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindOwnerDropped,
		Event:  event,
		Detail: fmt.Sprintf("%s has been dropped", owner),
	}
}

// Reentrancy reports a dispatch skipped because the listener is already running.
func Reentrancy(event string) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindReentrancy,
		Event:  event,
		Detail: "handler is being called somewhere",
	}
}

// Foreign wraps an exception raised by the foreign runtime.
func Foreign(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindForeign,
		Detail: detail,
		Cause:  cause,
	}
}

// LoadImage reports a failed image load; value is the foreign failure value.
func LoadImage(url string, value any) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindLoadImage,
		Detail: fmt.Sprintf("failed to load image %s", url),
		Value:  value,
	}
}

// BadGeoJSON reports GeoJSON that could not be encoded.
func BadGeoJSON(cause error) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindBadGeoJSON,
		Detail: "bad GeoJSON",
		Cause:  cause,
	}
}

// Closed reports use of an object after Close.
func Closed(what string) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s is closed", what),
	}
}

// ParseFailed creates a parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}
