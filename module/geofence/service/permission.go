package service

import (
	"context"

	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/domain"
	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/permissions"
)

// Evaluator reduces the layered permission model to one actionable
// snapshot. Evaluate may trigger permission prompts and is safe to call
// repeatedly.
type Evaluator struct {
	source permissions.Source
}

func NewEvaluator(source permissions.Source) *Evaluator {
	return &Evaluator{source: source}
}

func (e *Evaluator) Evaluate(ctx context.Context) domain.PermissionSnapshot {
	var snap domain.PermissionSnapshot

	// A disabled location service is not a permission the app can
	// request around; nothing else is worth checking.
	enabled, err := e.source.ServiceEnabled(ctx)
	if err != nil || !enabled {
		return snap
	}

	loc := e.ensure(ctx, domain.PermissionLocation)
	snap.LocationGranted = loc == domain.PermissionGranted
	if !snap.LocationGranted {
		snap.NeedsManualSettings = loc == domain.PermissionPermanentlyDenied
		return snap
	}

	// Background permission does not short-circuit: foreground-only
	// monitoring still proceeds in degraded mode.
	always := e.ensure(ctx, domain.PermissionBackgroundLocation)
	snap.AlwaysGranted = always == domain.PermissionGranted

	precise, err := e.source.PreciseLocation(ctx)
	snap.PreciseLocation = err == nil && precise

	// Notification failure only suppresses the final alert, never
	// registration.
	notif := e.ensure(ctx, domain.PermissionNotifications)
	snap.NotificationsGranted = notif == domain.PermissionGranted

	snap.NeedsManualSettings = loc == domain.PermissionPermanentlyDenied ||
		always == domain.PermissionPermanentlyDenied ||
		notif == domain.PermissionPermanentlyDenied ||
		!snap.PreciseLocation
	return snap
}

// ensure checks a permission and requests it once if it is merely
// denied. Platform failures count as denied for that permission; a
// check never aborts the whole pass.
func (e *Evaluator) ensure(ctx context.Context, p domain.Permission) domain.PermissionState {
	st, err := e.source.Status(ctx, p)
	if err != nil {
		return domain.PermissionDenied
	}
	if st == domain.PermissionGranted || st == domain.PermissionPermanentlyDenied {
		return st
	}
	st, err = e.source.Request(ctx, p)
	if err != nil {
		return domain.PermissionDenied
	}
	return st
}
