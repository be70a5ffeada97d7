package registry

import (
	"context"

	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/domain"
)

// Store is the geofence backend's registration table. It is authoritative
// for which geofences are active; callers never cache it.
type Store interface {
	ClearAll(ctx context.Context) error
	Register(ctx context.Context, d *domain.GeofenceDescriptor) error
	ListActive(ctx context.Context) ([]string, error)
}
