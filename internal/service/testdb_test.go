package service

import (
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB поднимает sqlite в памяти со схемой, достаточной для
// запросов сервисов (sqlite-friendly, без postgres-типов).
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// :memory: живёт в рамках одного соединения, пул из нескольких
	// соединений дал бы каждой горутине пустую базу.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	schema := []string{
		`CREATE TABLE doctors (
			id TEXT PRIMARY KEY,
			full_name TEXT NOT NULL,
			phone TEXT,
			email TEXT,
			photo_url TEXT,
			account_id TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE services (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			price REAL NOT NULL,
			duration_min INTEGER NOT NULL,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE appointments (
			id TEXT PRIMARY KEY,
			doctor_id TEXT NOT NULL,
			patient_first_name TEXT NOT NULL,
			patient_last_name TEXT NOT NULL,
			patient_phone TEXT,
			service_id TEXT,
			custom_service_name TEXT,
			duration_min INTEGER NOT NULL,
			price REAL NOT NULL,
			starts_at DATETIME NOT NULL,
			ends_at DATETIME NOT NULL,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE shifts (
			id TEXT PRIMARY KEY,
			week_of_year INTEGER NOT NULL,
			day_of_week INTEGER NOT NULL,
			shift_type TEXT NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			created_at DATETIME,
			updated_at DATETIME,
			UNIQUE (week_of_year, day_of_week, shift_type)
		);`,
		`CREATE TABLE shift_doctors (
			shift_id TEXT NOT NULL,
			doctor_id TEXT NOT NULL,
			PRIMARY KEY (shift_id, doctor_id)
		);`,
		`CREATE TABLE schedule_slots (
			id TEXT PRIMARY KEY,
			doctor_id TEXT NOT NULL,
			date DATE NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			is_available INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE events (
			id TEXT PRIMARY KEY,
			event_type TEXT NOT NULL,
			created_at DATETIME,
			doctor_id TEXT,
			appointment_id TEXT,
			details TEXT
		);`,
	}
	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}

	return db
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
