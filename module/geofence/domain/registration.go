package domain

// GeofenceDescriptor is what the registrar submits to the geofence
// backend for one target.
type GeofenceDescriptor struct {
	Key     string
	Lat     float64
	Lon     float64
	RadiusM float64
	OnEnter bool
	OnExit  bool

	// ResponsivenessMS is a delivery hint trading battery for latency.
	// It is a tuning knob, not correctness-critical.
	ResponsivenessMS int
}

// RegistrationResult reports the outcome of one synchronize pass.
// ActiveCount is re-derived from the backend's registered set, not from
// how many submissions succeeded.
type RegistrationResult struct {
	ActiveCount int `json:"active_count"`
	Rejected    int `json:"rejected"`
}

// SyncStatus is the foreground view of the last synchronize pass.
type SyncStatus struct {
	Status      string             `json:"status"`
	ActiveCount int                `json:"active_count"`
	Permissions PermissionSnapshot `json:"permissions"`
}
