package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/domain"
	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/internal/repository/registry"
)

// defaultResponsivenessMS is the delivery hint submitted with every
// descriptor.
const defaultResponsivenessMS = 30000

// Registrar makes the backend's registered set equal to the desired
// target set. Synchronization is a full replace, never an incremental
// diff: target sets are loaded once at startup and replace semantics
// avoid stale entries from prior runs.
//
// Callers must serialize Synchronize; two clear-and-reregister passes
// must not interleave.
type Registrar struct {
	store            registry.Store
	responsivenessMS int
}

func NewRegistrar(store registry.Store) *Registrar {
	return &Registrar{store: store, responsivenessMS: defaultResponsivenessMS}
}

func (r *Registrar) Synchronize(ctx context.Context, targets []domain.Target, snap domain.PermissionSnapshot) (*domain.RegistrationResult, error) {
	if missing := missingPrecondition(snap); missing != "" {
		return nil, &domain.PreconditionError{Missing: missing}
	}

	if len(targets) == 0 {
		return &domain.RegistrationResult{}, nil
	}

	if err := r.store.ClearAll(ctx); err != nil {
		return nil, fmt.Errorf("clear registrations: %w", err)
	}

	rejected := 0
	for i := range targets {
		t := &targets[i]
		d := &domain.GeofenceDescriptor{
			Key:              t.Key(),
			Lat:              t.Lat,
			Lon:              t.Lon,
			RadiusM:          t.EffectiveRadius(),
			OnEnter:          true,
			OnExit:           true,
			ResponsivenessMS: r.responsivenessMS,
		}
		if err := r.store.Register(ctx, d); err != nil {
			// a rejected descriptor does not abort the batch
			var regErr *domain.RegistrationError
			if errors.As(err, &regErr) {
				log.Printf("geofence %s rejected: %s", regErr.Key, regErr.Code)
			} else {
				log.Printf("register geofence %s: %v", t.Key(), err)
			}
			rejected++
		}
	}

	// "is it really active" is re-derived from the backend, not from
	// how many submissions succeeded
	keys, err := r.store.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return &domain.RegistrationResult{ActiveCount: len(keys), Rejected: rejected}, nil
}

func missingPrecondition(snap domain.PermissionSnapshot) string {
	switch {
	case !snap.LocationGranted:
		return "location"
	case !snap.AlwaysGranted:
		return "background location"
	case !snap.PreciseLocation:
		return "precise location"
	}
	return ""
}
