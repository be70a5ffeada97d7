package permissions

import (
	"context"

	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/domain"
)

// Source is the OS permission subsystem: per-permission status and
// request, the precise-vs-reduced accuracy flag, and the settings
// escape hatch for states an in-app request cannot clear.
type Source interface {
	ServiceEnabled(ctx context.Context) (bool, error)
	Status(ctx context.Context, p domain.Permission) (domain.PermissionState, error)
	Request(ctx context.Context, p domain.Permission) (domain.PermissionState, error)

	// PreciseLocation reports full-accuracy location. Platforms without
	// the precise/reduced distinction report true.
	PreciseLocation(ctx context.Context) (bool, error)

	OpenSettings(ctx context.Context) error
}
