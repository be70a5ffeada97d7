package domain

import "fmt"

// PreconditionError reports a synchronize attempt made without the
// permissions registration requires. No backend call is made when it is
// returned.
type PreconditionError struct {
	Missing string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("missing permission: %s", e.Missing)
}

// RegistrationError reports the backend rejecting a single descriptor.
// The registrar continues with the remaining targets.
type RegistrationError struct {
	Key  string
	Code string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("geofence %s rejected: %s", e.Key, e.Code)
}
