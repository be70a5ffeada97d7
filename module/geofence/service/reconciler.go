package service

import (
	"math"
	"sync"

	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/domain"
)

const earthRadiusMeters = 6371000

// Reconciler tracks per-geofence inside/outside state in the foreground
// context. Only transition events mutate the inside flag; the live
// position is informational and feeds the distance display only.
type Reconciler struct {
	mu       sync.Mutex
	places   map[string]domain.PlaceState
	position *domain.Position
}

func NewReconciler() *Reconciler {
	return &Reconciler{places: make(map[string]domain.PlaceState)}
}

// ApplyTransition overwrites state with whatever arrives; recency is
// the relay consumer's problem to judge via the timestamp, not ours.
func (r *Reconciler) ApplyTransition(evt domain.TransitionEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := evt
	r.places[evt.GeofenceKey] = domain.PlaceState{
		Inside:    evt.Kind == domain.TransitionEnter,
		LastEvent: &e,
	}
}

func (r *Reconciler) UpdatePosition(pos domain.Position) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.position = &pos
}

// Places returns a copy of the tracked state.
func (r *Reconciler) Places() map[string]domain.PlaceState {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]domain.PlaceState, len(r.places))
	for k, v := range r.places {
		out[k] = v
	}
	return out
}

func (r *Reconciler) Position() (domain.Position, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.position == nil {
		return domain.Position{}, false
	}
	return *r.position, true
}

// DistanceMeters is the great-circle distance between two coordinates.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
