package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/domain"
)

type mockPermissionSource struct {
	serviceEnabledFn  func(ctx context.Context) (bool, error)
	statusFn          func(ctx context.Context, p domain.Permission) (domain.PermissionState, error)
	requestFn         func(ctx context.Context, p domain.Permission) (domain.PermissionState, error)
	preciseLocationFn func(ctx context.Context) (bool, error)
	requests          []domain.Permission
}

func (m *mockPermissionSource) ServiceEnabled(ctx context.Context) (bool, error) {
	if m.serviceEnabledFn != nil {
		return m.serviceEnabledFn(ctx)
	}
	return true, nil
}

func (m *mockPermissionSource) Status(ctx context.Context, p domain.Permission) (domain.PermissionState, error) {
	if m.statusFn != nil {
		return m.statusFn(ctx, p)
	}
	return domain.PermissionGranted, nil
}

func (m *mockPermissionSource) Request(ctx context.Context, p domain.Permission) (domain.PermissionState, error) {
	m.requests = append(m.requests, p)
	if m.requestFn != nil {
		return m.requestFn(ctx, p)
	}
	return domain.PermissionGranted, nil
}

func (m *mockPermissionSource) PreciseLocation(ctx context.Context) (bool, error) {
	if m.preciseLocationFn != nil {
		return m.preciseLocationFn(ctx)
	}
	return true, nil
}

func (m *mockPermissionSource) OpenSettings(_ context.Context) error { return nil }

func TestEvaluate_AllGranted(t *testing.T) {
	src := &mockPermissionSource{}
	snap := NewEvaluator(src).Evaluate(context.Background())

	if !snap.LocationGranted || !snap.AlwaysGranted || !snap.NotificationsGranted || !snap.PreciseLocation {
		t.Errorf("expected everything granted, got %+v", snap)
	}
	if snap.NeedsManualSettings {
		t.Error("needs_manual_settings should be false")
	}
	if len(src.requests) != 0 {
		t.Errorf("granted permissions should not be re-requested, got %v", src.requests)
	}
}

func TestEvaluate_ServiceDisabled(t *testing.T) {
	src := &mockPermissionSource{
		serviceEnabledFn: func(_ context.Context) (bool, error) { return false, nil },
		statusFn: func(_ context.Context, _ domain.Permission) (domain.PermissionState, error) {
			t.Fatal("no permission should be checked when the service is off")
			return "", nil
		},
	}
	snap := NewEvaluator(src).Evaluate(context.Background())

	if snap != (domain.PermissionSnapshot{}) {
		t.Errorf("expected zero snapshot, got %+v", snap)
	}
}

func TestEvaluate_LocationDenied_RequestsOnce(t *testing.T) {
	src := &mockPermissionSource{
		statusFn: func(_ context.Context, _ domain.Permission) (domain.PermissionState, error) {
			return domain.PermissionDenied, nil
		},
		requestFn: func(_ context.Context, _ domain.Permission) (domain.PermissionState, error) {
			return domain.PermissionDenied, nil
		},
	}
	snap := NewEvaluator(src).Evaluate(context.Background())

	if snap.LocationGranted {
		t.Error("location should not be granted")
	}
	if snap.NeedsManualSettings {
		t.Error("a plain denial is not terminal")
	}
	if len(src.requests) != 1 || src.requests[0] != domain.PermissionLocation {
		t.Errorf("expected a single location request, got %v", src.requests)
	}
}

func TestEvaluate_LocationPermanentlyDenied(t *testing.T) {
	src := &mockPermissionSource{
		statusFn: func(_ context.Context, _ domain.Permission) (domain.PermissionState, error) {
			return domain.PermissionPermanentlyDenied, nil
		},
	}
	snap := NewEvaluator(src).Evaluate(context.Background())

	if snap.LocationGranted {
		t.Error("location should not be granted")
	}
	if !snap.NeedsManualSettings {
		t.Error("permanent denial requires manual settings")
	}
	if len(src.requests) != 0 {
		t.Errorf("a permanently denied permission must not be re-requested, got %v", src.requests)
	}
}

func TestEvaluate_BackgroundDenied_DoesNotShortCircuit(t *testing.T) {
	src := &mockPermissionSource{
		statusFn: func(_ context.Context, p domain.Permission) (domain.PermissionState, error) {
			if p == domain.PermissionBackgroundLocation {
				return domain.PermissionDenied, nil
			}
			return domain.PermissionGranted, nil
		},
		requestFn: func(_ context.Context, _ domain.Permission) (domain.PermissionState, error) {
			return domain.PermissionDenied, nil
		},
	}
	snap := NewEvaluator(src).Evaluate(context.Background())

	if snap.AlwaysGranted {
		t.Error("always should not be granted")
	}
	// the pass continues: notifications still evaluated
	if !snap.NotificationsGranted {
		t.Error("notifications should still have been checked")
	}
}

func TestEvaluate_PreciseOff_NeedsManualSettings(t *testing.T) {
	src := &mockPermissionSource{
		preciseLocationFn: func(_ context.Context) (bool, error) { return false, nil },
	}
	snap := NewEvaluator(src).Evaluate(context.Background())

	if snap.PreciseLocation {
		t.Error("precise should be off")
	}
	if !snap.NeedsManualSettings {
		t.Error("reduced accuracy cannot be fixed in-app")
	}
}

func TestEvaluate_PlatformErrorCountsAsDenied(t *testing.T) {
	src := &mockPermissionSource{
		statusFn: func(_ context.Context, p domain.Permission) (domain.PermissionState, error) {
			if p == domain.PermissionNotifications {
				return "", errors.New("platform failure")
			}
			return domain.PermissionGranted, nil
		},
	}
	snap := NewEvaluator(src).Evaluate(context.Background())

	if snap.NotificationsGranted {
		t.Error("a failed check counts as not granted")
	}
	if !snap.LocationGranted || !snap.AlwaysGranted {
		t.Error("the failure must not abort the rest of the pass")
	}
}
