package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MohammadShoaib023/near-me-alerts/module/geofence/domain"
)

func TestClearAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`DELETE FROM geofence_registrations`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	store := NewRegistrationStore(db)
	if err := store.ClearAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestRegister_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM geofence_registrations`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO geofence_registrations`).
		WithArgs("a::Home", 10.0, 20.0, 100.0, true, true, 30000).
		WillReturnResult(sqlmock.NewResult(1, 1))

	store := NewRegistrationStore(db)
	err = store.Register(context.Background(), &domain.GeofenceDescriptor{
		Key: "a::Home", Lat: 10, Lon: 20, RadiusM: 100,
		OnEnter: true, OnExit: true, ResponsivenessMS: 30000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestRegister_InvalidRadius(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	store := NewRegistrationStore(db)
	err = store.Register(context.Background(), &domain.GeofenceDescriptor{Key: "a::Home"})

	var regErr *domain.RegistrationError
	if !errors.As(err, &regErr) {
		t.Fatalf("expected RegistrationError, got %v", err)
	}
	if regErr.Code != "invalid_radius" {
		t.Errorf("expected invalid_radius, got %s", regErr.Code)
	}
}

func TestRegister_LimitExceeded(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM geofence_registrations`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(100))

	store := NewRegistrationStore(db)
	err = store.Register(context.Background(), &domain.GeofenceDescriptor{Key: "a::Home", RadiusM: 50})

	var regErr *domain.RegistrationError
	if !errors.As(err, &regErr) {
		t.Fatalf("expected RegistrationError, got %v", err)
	}
	if regErr.Code != "limit_exceeded" {
		t.Errorf("expected limit_exceeded, got %s", regErr.Code)
	}
}

func TestListActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	rows := sqlmock.NewRows([]string{"key"}).AddRow("a::Home").AddRow("b::Work")
	mock.ExpectQuery(`SELECT key FROM geofence_registrations ORDER BY key`).
		WillReturnRows(rows)

	store := NewRegistrationStore(db)
	keys, err := store.ListActive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != 2 || keys[0] != "a::Home" || keys[1] != "b::Work" {
		t.Errorf("unexpected keys: %v", keys)
	}
}
