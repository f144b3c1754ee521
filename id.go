package mapboxgl

import "github.com/google/uuid"

// ListenerID identifies a listener registration on a Map.
type ListenerID uuid.UUID

// MarkerID identifies a marker attached to a Map.
type MarkerID uuid.UUID

// PopupID identifies a popup attached to a Map.
type PopupID uuid.UUID

// CallbackID identifies a pending one-shot callback such as an image load.
type CallbackID uuid.UUID

func NewListenerID() ListenerID { return ListenerID(uuid.New()) }
func NewMarkerID() MarkerID     { return MarkerID(uuid.New()) }
func NewPopupID() PopupID       { return PopupID(uuid.New()) }
func NewCallbackID() CallbackID { return CallbackID(uuid.New()) }

func (id ListenerID) String() string { return uuid.UUID(id).String() }
func (id MarkerID) String() string   { return uuid.UUID(id).String() }
func (id PopupID) String() string    { return uuid.UUID(id).String() }
func (id CallbackID) String() string { return uuid.UUID(id).String() }
