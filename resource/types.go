package resource

// Event types for entry lifecycle notifications.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDropped
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// Event represents an entry lifecycle event.
type Event struct {
	Key   any
	Value any
	Store string
	Type  EventType
}

// Observer receives notifications about entry lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}

// Dropper is optionally implemented by stored values that need cleanup
// when they leave the store.
type Dropper interface {
	Drop()
}

// Releaser is implemented by foreign callbacks (engine.Func). A released
// callback can no longer be invoked from the foreign side.
type Releaser interface {
	Release()
}

// Registry provides type-safe keyed access to retained values.
type Registry[K comparable, V any] interface {
	// Add inserts a value under key.
	Add(key K, value V) error

	// Get retrieves a value by key.
	Get(key K) (V, bool, error)

	// Remove drops a value and returns (value, true) if found.
	Remove(key K) (V, bool, error)

	// Len returns the number of retained values.
	Len() int

	// Each iterates over retained values in insertion order.
	Each(func(K, V) bool) error

	// Clear drops every value.
	Clear() error
}
