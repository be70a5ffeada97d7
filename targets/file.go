// Package targets loads the saved-place list the service monitors.
// The list is read once at startup and is immutable for the process
// lifetime.
package targets

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/domain"
)

const defaultName = "Saved place"

type record struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	RadiusM   float64  `json:"radius_m"`
}

func LoadFile(path string) ([]domain.Target, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load targets: %w", err)
	}
	defer func() { _ = f.Close() }()

	out, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load targets %s: %w", path, err)
	}
	return out, nil
}

// Parse reads a JSON array of target records. A single malformed record
// aborts the whole load; partial lists are never returned.
func Parse(r io.Reader) ([]domain.Target, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	out := make([]domain.Target, 0, len(records))
	for i, rec := range records {
		if rec.Latitude == nil {
			return nil, fmt.Errorf("target %d: latitude: required", i)
		}
		if rec.Longitude == nil {
			return nil, fmt.Errorf("target %d: longitude: required", i)
		}

		name := rec.Name
		if name == "" {
			name = defaultName
		}

		t := domain.Target{
			ID:      rec.ID,
			Name:    name,
			Lat:     *rec.Latitude,
			Lon:     *rec.Longitude,
			RadiusM: rec.RadiusM,
		}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("target %d: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}
