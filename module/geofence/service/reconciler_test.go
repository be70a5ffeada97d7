package service

import (
	"testing"
	"time"

	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/domain"
)

func TestApplyTransition_ExitThenEnter(t *testing.T) {
	r := NewReconciler()

	r.ApplyTransition(domain.TransitionEvent{
		GeofenceKey: "a::Home", Kind: domain.TransitionExit, Timestamp: time.Unix(1715003456, 0),
	})
	r.ApplyTransition(domain.TransitionEvent{
		GeofenceKey: "a::Home", Kind: domain.TransitionEnter, Timestamp: time.Unix(1715003999, 0),
	})

	places := r.Places()
	st, ok := places["a::Home"]
	if !ok {
		t.Fatal("expected state for a::Home")
	}
	if !st.Inside {
		t.Error("expected inside after enter")
	}
	if st.LastEvent == nil || st.LastEvent.Kind != domain.TransitionEnter {
		t.Errorf("unexpected last event: %+v", st.LastEvent)
	}
}

func TestApplyTransition_OverwritesWithWhateverArrives(t *testing.T) {
	r := NewReconciler()

	// out-of-order arrival: the late exit still wins
	r.ApplyTransition(domain.TransitionEvent{
		GeofenceKey: "a::Home", Kind: domain.TransitionEnter, Timestamp: time.Unix(1715003999, 0),
	})
	r.ApplyTransition(domain.TransitionEvent{
		GeofenceKey: "a::Home", Kind: domain.TransitionExit, Timestamp: time.Unix(1715003456, 0),
	})

	st := r.Places()["a::Home"]
	if st.Inside {
		t.Error("expected outside, state follows arrival order")
	}
}

func TestPlaces_ReturnsCopy(t *testing.T) {
	r := NewReconciler()
	r.ApplyTransition(domain.TransitionEvent{GeofenceKey: "a::Home", Kind: domain.TransitionEnter})

	places := r.Places()
	delete(places, "a::Home")

	if _, ok := r.Places()["a::Home"]; !ok {
		t.Error("mutating the copy must not affect tracked state")
	}
}

func TestUpdatePosition(t *testing.T) {
	r := NewReconciler()

	if _, ok := r.Position(); ok {
		t.Error("expected no position initially")
	}

	r.UpdatePosition(domain.Position{Lat: 10, Lon: 20, Timestamp: time.Unix(1715003456, 0)})
	pos, ok := r.Position()
	if !ok || pos.Lat != 10 || pos.Lon != 20 {
		t.Errorf("unexpected position: %+v ok=%v", pos, ok)
	}
}

func TestDistanceMeters(t *testing.T) {
	// same point should be 0
	d := DistanceMeters(-6.2088, 106.8456, -6.2088, 106.8456)
	if d != 0 {
		t.Errorf("expected 0, got %f", d)
	}

	// roughly 133m between these two points
	d = DistanceMeters(-6.2088, 106.8456, -6.2100, 106.8456)
	if d < 100 || d > 200 {
		t.Errorf("expected ~133m, got %f", d)
	}
}
