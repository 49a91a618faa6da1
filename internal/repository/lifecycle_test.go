package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/zebekov/clinic-platform/internal/config"
	"github.com/zebekov/clinic-platform/internal/db"
	"github.com/zebekov/clinic-platform/internal/model"
)

// newFKTestDB открывает sqlite через NewGormDB (с включёнными внешними
// ключами) и создаёт схему с теми же каскадными правилами, что и в тегах
// моделей. Жизненный цикл удалений живёт на уровне БД, поэтому проверяем
// его вместе с подключением.
func newFKTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.NewGormDB(&config.DBConfig{
		Driver:     "sqlite",
		SQLitePath: ":memory:",
		// :memory: живёт в рамках одного соединения.
		MaxOpenConns: 1,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

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
			doctor_id TEXT NOT NULL REFERENCES doctors(id) ON DELETE CASCADE,
			patient_first_name TEXT NOT NULL,
			patient_last_name TEXT NOT NULL,
			patient_phone TEXT,
			service_id TEXT REFERENCES services(id) ON DELETE SET NULL,
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
			shift_id TEXT NOT NULL REFERENCES shifts(id) ON DELETE CASCADE,
			doctor_id TEXT NOT NULL REFERENCES doctors(id) ON DELETE CASCADE,
			PRIMARY KEY (shift_id, doctor_id)
		);`,
		`CREATE TABLE schedule_slots (
			id TEXT PRIMARY KEY,
			doctor_id TEXT NOT NULL REFERENCES doctors(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			is_available INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME,
			updated_at DATETIME
		);`,
	}
	for _, stmt := range schema {
		if err := gdb.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}

	return gdb
}

func TestGormDoctorRepository_Delete_CascadesDependents(t *testing.T) {
	gdb := newFKTestDB(t)
	ctx := context.Background()

	doctor := &model.Doctor{ID: uuid.New(), FullName: "Петров П.П."}
	if err := gdb.Create(doctor).Error; err != nil {
		t.Fatalf("seed doctor: %v", err)
	}

	starts := time.Date(2025, 1, 13, 10, 0, 0, 0, time.UTC)
	appt := &model.Appointment{
		ID:                uuid.New(),
		DoctorID:          doctor.ID,
		PatientFirstName:  "Анна",
		PatientLastName:   "Смирнова",
		CustomServiceName: "Консультация",
		DurationMin:       30,
		Price:             1500,
		StartsAt:          starts,
		EndsAt:            starts.Add(30 * time.Minute),
	}
	if err := gdb.Create(appt).Error; err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	slot := &model.ScheduleSlot{
		ID:          uuid.New(),
		DoctorID:    doctor.ID,
		Date:        datatypes.Date(starts),
		StartTime:   "08:00",
		EndTime:     "13:00",
		IsAvailable: true,
	}
	if err := gdb.Create(slot).Error; err != nil {
		t.Fatalf("seed slot: %v", err)
	}

	shift := &model.Shift{
		ID:         uuid.New(),
		WeekOfYear: 2,
		DayOfWeek:  0,
		ShiftType:  model.ShiftTypeFirst,
		StartTime:  "08:00",
		EndTime:    "13:00",
	}
	if err := gdb.Create(shift).Error; err != nil {
		t.Fatalf("seed shift: %v", err)
	}
	if err := gdb.Exec(
		"INSERT INTO shift_doctors (shift_id, doctor_id) VALUES (?, ?)",
		shift.ID, doctor.ID,
	).Error; err != nil {
		t.Fatalf("seed shift_doctors: %v", err)
	}

	repo := NewGormDoctorRepository(gdb)
	if err := repo.Delete(ctx, doctor.ID.String()); err != nil {
		t.Fatalf("delete doctor: %v", err)
	}

	var appts int64
	gdb.Model(&model.Appointment{}).Where("doctor_id = ?", doctor.ID).Count(&appts)
	if appts != 0 {
		t.Errorf("appointments after doctor delete = %d, want 0", appts)
	}

	var slots int64
	gdb.Model(&model.ScheduleSlot{}).Where("doctor_id = ?", doctor.ID).Count(&slots)
	if slots != 0 {
		t.Errorf("schedule_slots after doctor delete = %d, want 0", slots)
	}

	var members int64
	gdb.Raw(
		"SELECT COUNT(*) FROM shift_doctors WHERE doctor_id = ?", doctor.ID,
	).Scan(&members)
	if members != 0 {
		t.Errorf("shift_doctors after doctor delete = %d, want 0", members)
	}

	// Сама смена остаётся: удаляется только членство врача.
	var shifts int64
	gdb.Model(&model.Shift{}).Count(&shifts)
	if shifts != 1 {
		t.Errorf("shifts after doctor delete = %d, want 1", shifts)
	}
}

func TestGormServiceRepository_Delete_NullsAppointmentReference(t *testing.T) {
	gdb := newFKTestDB(t)
	ctx := context.Background()

	doctor := &model.Doctor{ID: uuid.New(), FullName: "Петров П.П."}
	if err := gdb.Create(doctor).Error; err != nil {
		t.Fatalf("seed doctor: %v", err)
	}
	svc := &model.Service{ID: uuid.New(), Name: "Чистка", Price: 3000, DurationMin: 60}
	if err := gdb.Create(svc).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}

	starts := time.Date(2025, 1, 13, 10, 0, 0, 0, time.UTC)
	appt := &model.Appointment{
		ID:               uuid.New(),
		DoctorID:         doctor.ID,
		PatientFirstName: "Анна",
		PatientLastName:  "Смирнова",
		ServiceID:        &svc.ID,
		DurationMin:      svc.DurationMin,
		Price:            svc.Price,
		StartsAt:         starts,
		EndsAt:           starts.Add(60 * time.Minute),
	}
	if err := gdb.Create(appt).Error; err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	repo := NewGormServiceRepository(gdb)
	if err := repo.Delete(ctx, svc.ID.String()); err != nil {
		t.Fatalf("delete service: %v", err)
	}

	var got model.Appointment
	if err := gdb.First(&got, "id = ?", appt.ID).Error; err != nil {
		t.Fatalf("appointment must survive service delete: %v", err)
	}
	if got.ServiceID != nil {
		t.Errorf("service_id after service delete = %v, want NULL", got.ServiceID)
	}
	// Снимок цены и длительности в записи сохраняется.
	if got.Price != svc.Price || got.DurationMin != svc.DurationMin {
		t.Errorf("snapshot changed: price=%v duration=%d", got.Price, got.DurationMin)
	}
}
