package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zebekov/clinic-platform/internal/model"
	"github.com/zebekov/clinic-platform/internal/repository"
)

func newCatalogService(t *testing.T) (*CatalogService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	svc := NewCatalogService(
		repository.NewGormDoctorRepository(db),
		repository.NewGormServiceRepository(db),
		repository.NewGormScheduleSlotRepository(db),
		testLogger(),
	)
	return svc, db
}

func TestCatalogService_DoctorCRUD(t *testing.T) {
	svc, _ := newCatalogService(t)
	ctx := context.Background()

	doctor, err := svc.CreateDoctor(ctx, DoctorInput{
		FullName: "Иванов И.И.",
		Phone:    "+7 900 000-00-00",
	})
	if err != nil {
		t.Fatalf("create doctor: %v", err)
	}

	updated, err := svc.UpdateDoctor(ctx, doctor.ID, DoctorInput{
		FullName: "Иванов Иван Иванович",
		Email:    "ivanov@clinic.local",
	})
	if err != nil {
		t.Fatalf("update doctor: %v", err)
	}
	if updated.FullName != "Иванов Иван Иванович" || updated.Email != "ivanov@clinic.local" {
		t.Fatalf("unexpected doctor after update: %+v", updated)
	}

	page, err := svc.ListDoctors(ctx, 1, 20)
	if err != nil {
		t.Fatalf("list doctors: %v", err)
	}
	if page.Total != 1 {
		t.Fatalf("expected 1 doctor, got %d", page.Total)
	}

	if err := svc.DeleteDoctor(ctx, doctor.ID); err != nil {
		t.Fatalf("delete doctor: %v", err)
	}
	if _, err := svc.GetDoctor(ctx, doctor.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound after delete, got %v", err)
	}
}

func TestCatalogService_CreateDoctor_RequiresName(t *testing.T) {
	svc, _ := newCatalogService(t)

	if _, err := svc.CreateDoctor(context.Background(), DoctorInput{FullName: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCatalogService_ServiceValidation(t *testing.T) {
	svc, _ := newCatalogService(t)
	ctx := context.Background()

	cases := []ServiceInput{
		{Name: "", Price: 100, DurationMin: 30},
		{Name: "Чистка", Price: -1, DurationMin: 30},
		{Name: "Чистка", Price: 100, DurationMin: 0},
	}
	for _, in := range cases {
		if _, err := svc.CreateService(ctx, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}

	created, err := svc.CreateService(ctx, ServiceInput{Name: "Чистка", Price: 2000, DurationMin: 45})
	if err != nil {
		t.Fatalf("create service: %v", err)
	}
	if created.DurationMin != 45 {
		t.Fatalf("expected duration 45, got %d", created.DurationMin)
	}
}

func TestCatalogService_SlotLifecycle(t *testing.T) {
	svc, db := newCatalogService(t)
	ctx := context.Background()

	doctorID := seedDoctor(t, db, "Иванов И.И.")

	slot, err := svc.CreateSlot(ctx, ScheduleSlotInput{
		DoctorID:  doctorID,
		Date:      "2025-01-13",
		StartTime: "10:00",
		EndTime:   "12:00",
	})
	if err != nil {
		t.Fatalf("create slot: %v", err)
	}
	if !slot.IsAvailable {
		t.Fatalf("slot must default to available")
	}

	toggled, err := svc.SetSlotAvailability(ctx, slot.ID, false)
	if err != nil {
		t.Fatalf("set availability: %v", err)
	}
	if toggled.IsAvailable {
		t.Fatalf("expected slot unavailable after toggle")
	}

	slots, err := svc.ListSlots(ctx, doctorID, time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("list slots: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}

	if err := svc.DeleteSlot(ctx, slot.ID); err != nil {
		t.Fatalf("delete slot: %v", err)
	}
	var count int64
	if err := db.Model(&model.ScheduleSlot{}).Count(&count).Error; err != nil {
		t.Fatalf("count slots: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty slots table, got %d", count)
	}
}

func TestCatalogService_CreateSlot_RejectsBadInterval(t *testing.T) {
	svc, db := newCatalogService(t)
	ctx := context.Background()

	doctorID := seedDoctor(t, db, "Иванов И.И.")

	bad := []ScheduleSlotInput{
		{DoctorID: doctorID, Date: "не дата", StartTime: "10:00", EndTime: "12:00"},
		{DoctorID: doctorID, Date: "2025-01-13", StartTime: "12:00", EndTime: "10:00"},
		{DoctorID: uuid.Nil, Date: "2025-01-13", StartTime: "10:00", EndTime: "12:00"},
	}
	for _, in := range bad {
		if _, err := svc.CreateSlot(ctx, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}
