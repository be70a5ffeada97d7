package domain

type Permission string

const (
	PermissionLocation           Permission = "location"
	PermissionBackgroundLocation Permission = "background_location"
	PermissionNotifications      Permission = "notifications"
)

type PermissionState string

const (
	PermissionGranted           PermissionState = "granted"
	PermissionDenied            PermissionState = "denied"
	PermissionPermanentlyDenied PermissionState = "permanently_denied"
)

// ParsePermissionState maps a config string to a state. Anything
// unrecognized counts as denied.
func ParsePermissionState(s string) PermissionState {
	switch PermissionState(s) {
	case PermissionGranted, PermissionDenied, PermissionPermanentlyDenied:
		return PermissionState(s)
	}
	return PermissionDenied
}

// PermissionSnapshot is the reduced result of one evaluation pass. It is
// recomputed on every pass and never persisted.
type PermissionSnapshot struct {
	LocationGranted      bool `json:"location_granted"`
	AlwaysGranted        bool `json:"always_granted"`
	NotificationsGranted bool `json:"notifications_granted"`
	PreciseLocation      bool `json:"precise_location"`

	// NeedsManualSettings is set when some permission is permanently
	// denied or precise location is off; neither can be fixed by an
	// in-app request.
	NeedsManualSettings bool `json:"needs_manual_settings"`
}
