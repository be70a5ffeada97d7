package notifier

import "context"

// Notifier presents a user-visible alert. The id must be deterministic
// per (geofence key, transition kind) so repeated delivery of the same
// physical transition overwrites the visible notification instead of
// duplicating it.
type Notifier interface {
	Show(ctx context.Context, id uint32, title, body string) error
}
