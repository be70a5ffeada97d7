package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/domain"
	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/internal/repository/registry"
)

var _ registry.Store = (*RegistrationStore)(nil)

// maxRegistrations mirrors the platform geofence ceiling; registrations
// past it are rejected the way the OS service would reject them.
const maxRegistrations = 100

type RegistrationStore struct {
	db *sql.DB
}

func NewRegistrationStore(db *sql.DB) *RegistrationStore {
	return &RegistrationStore{db: db}
}

func (s *RegistrationStore) ClearAll(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM geofence_registrations`)
	return err
}

func (s *RegistrationStore) Register(ctx context.Context, d *domain.GeofenceDescriptor) error {
	if d.RadiusM <= 0 {
		return &domain.RegistrationError{Key: d.Key, Code: "invalid_radius"}
	}

	var count int
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM geofence_registrations`)
	if err := row.Scan(&count); err != nil {
		return fmt.Errorf("count registrations: %w", err)
	}
	if count >= maxRegistrations {
		return &domain.RegistrationError{Key: d.Key, Code: "limit_exceeded"}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO geofence_registrations (key, latitude, longitude, radius_m, on_enter, on_exit, responsiveness_ms)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (key) DO UPDATE SET
		   latitude = EXCLUDED.latitude,
		   longitude = EXCLUDED.longitude,
		   radius_m = EXCLUDED.radius_m,
		   on_enter = EXCLUDED.on_enter,
		   on_exit = EXCLUDED.on_exit,
		   responsiveness_ms = EXCLUDED.responsiveness_ms`,
		d.Key, d.Lat, d.Lon, d.RadiusM, d.OnEnter, d.OnExit, d.ResponsivenessMS,
	)
	return err
}

func (s *RegistrationStore) ListActive(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM geofence_registrations ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
