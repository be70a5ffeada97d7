package static

import (
	"context"
	"log"

	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/domain"
	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/permissions"
)

var _ permissions.Source = (*Source)(nil)

type Config struct {
	ServiceEnabled     bool
	Location           domain.PermissionState
	BackgroundLocation domain.PermissionState
	Notifications      domain.PermissionState
	Precise            bool
}

// Source is an env-configured permission subsystem. It stands in for
// the device's permission APIs: the answer to a request is whatever the
// environment says, so a denied permission stays denied until the
// configuration changes.
type Source struct {
	cfg Config
}

func New(cfg Config) *Source {
	return &Source{cfg: cfg}
}

func (s *Source) ServiceEnabled(_ context.Context) (bool, error) {
	return s.cfg.ServiceEnabled, nil
}

func (s *Source) Status(_ context.Context, p domain.Permission) (domain.PermissionState, error) {
	return s.state(p), nil
}

func (s *Source) Request(_ context.Context, p domain.Permission) (domain.PermissionState, error) {
	return s.state(p), nil
}

func (s *Source) PreciseLocation(_ context.Context) (bool, error) {
	return s.cfg.Precise, nil
}

func (s *Source) OpenSettings(_ context.Context) error {
	log.Printf("open system settings requested")
	return nil
}

func (s *Source) state(p domain.Permission) domain.PermissionState {
	switch p {
	case domain.PermissionLocation:
		return s.cfg.Location
	case domain.PermissionBackgroundLocation:
		return s.cfg.BackgroundLocation
	case domain.PermissionNotifications:
		return s.cfg.Notifications
	}
	return domain.PermissionDenied
}
