// Package resource provides keyed retention stores for values that cross the
// foreign boundary.
//
// A closure handed to the foreign runtime must stay alive for as long as the
// foreign side may invoke it, and no longer. Store keeps such values under an
// opaque identifier until they are explicitly removed:
//
//	cbs := resource.NewCallbackStore[CallbackID, engine.Func]("image callbacks")
//
//	// Retain a callback while the foreign side holds it
//	err := cbs.Add(id, fn)
//
//	// Release it after its last invocation
//	_, _, err = cbs.Remove(id)
//
// The same Store type backs the listener, marker and popup registries of a Map.
//
// # Borrowing
//
// Every operation takes an exclusive borrow with TryLock. Mutating a store
// from inside its own Each callback returns a KindBorrowConflict error rather
// than deadlocking; callers log the conflict and continue.
//
// # Cleanup
//
// Values implementing Dropper have Drop called when they leave the store
// (Remove, Clear, or replacement by Add). Values implementing Releaser have
// Release called instead. Registered observers are notified after the borrow
// is returned, so observers may use the store.
package resource
