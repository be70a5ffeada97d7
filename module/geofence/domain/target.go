package domain

import (
	"fmt"
	"strings"
)

// DefaultRadiusMeters is used for targets that do not specify a radius.
const DefaultRadiusMeters = 200.0

// keySeparator joins a target's id and display name into its GeofenceKey.
// Names therefore must not contain it.
const keySeparator = "::"

type Target struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Lat     float64 `json:"latitude"`
	Lon     float64 `json:"longitude"`
	RadiusM float64 `json:"radius_m"` // 0 means unset
}

func (t *Target) EffectiveRadius() float64 {
	if t.RadiusM > 0 {
		return t.RadiusM
	}
	return DefaultRadiusMeters
}

// Key is the registration key handed to the geofence backend and echoed
// back on every transition event.
func (t *Target) Key() string {
	return MakeKey(t.ID, t.Name)
}

func (t *Target) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("id: required")
	}
	if strings.Contains(t.Name, keySeparator) {
		return fmt.Errorf("name: must not contain %q", keySeparator)
	}
	if t.Lat < -90 || t.Lat > 90 {
		return fmt.Errorf("latitude: must be between -90 and 90")
	}
	if t.Lon < -180 || t.Lon > 180 {
		return fmt.Errorf("longitude: must be between -180 and 180")
	}
	if t.RadiusM < 0 {
		return fmt.Errorf("radius_m: must not be negative")
	}
	return nil
}

func MakeKey(id, name string) string {
	return id + keySeparator + name
}

// KeyName strips the id prefix from a GeofenceKey, recovering the display
// name. Keys without a separator are returned unchanged.
func KeyName(key string) string {
	if _, name, ok := strings.Cut(key, keySeparator); ok {
		return name
	}
	return key
}
