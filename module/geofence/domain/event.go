package domain

import "time"

type TransitionKind string

const (
	TransitionEnter TransitionKind = "enter"
	TransitionExit  TransitionKind = "exit"
)

// ParseTransitionKind reports whether s names a transition this system
// acts on. The geofence backend may report other lifecycle signals
// (e.g. dwell); those are ignored.
func ParseTransitionKind(s string) (TransitionKind, bool) {
	switch TransitionKind(s) {
	case TransitionEnter, TransitionExit:
		return TransitionKind(s), true
	}
	return "", false
}

// TransitionEvent is the payload crossing the background→foreground
// relay boundary.
type TransitionEvent struct {
	GeofenceKey string         `json:"geofence_key"`
	Kind        TransitionKind `json:"kind"`
	Timestamp   time.Time      `json:"timestamp"`
}

// PlaceState tracks whether the device is inside a registered geofence.
// Only transition events mutate it; live-position distance is
// informational and never authoritative.
type PlaceState struct {
	Inside    bool             `json:"inside"`
	LastEvent *TransitionEvent `json:"last_event,omitempty"`
}

type Position struct {
	Lat       float64   `json:"latitude"`
	Lon       float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}
