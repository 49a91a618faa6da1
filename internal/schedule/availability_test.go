package schedule

import (
	"testing"
	"time"
)

func TestFreeSlots_OmitsBookedSlot(t *testing.T) {
	// Смена 08:00–13:00, одна запись 09:00–09:30.
	work := TimeRange{Start: mustTime(t, 2025, 1, 1, 8, 0), End: mustTime(t, 2025, 1, 1, 13, 0)}
	busy := []TimeRange{
		{Start: mustTime(t, 2025, 1, 1, 9, 0), End: mustTime(t, 2025, 1, 1, 9, 30)},
	}

	slots, err := FreeSlots(work, busy, SlotDuration)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []TimeRange{
		{Start: mustTime(t, 2025, 1, 1, 8, 0), End: mustTime(t, 2025, 1, 1, 8, 30)},
		{Start: mustTime(t, 2025, 1, 1, 8, 30), End: mustTime(t, 2025, 1, 1, 9, 0)},
		{Start: mustTime(t, 2025, 1, 1, 9, 30), End: mustTime(t, 2025, 1, 1, 10, 0)},
		{Start: mustTime(t, 2025, 1, 1, 10, 0), End: mustTime(t, 2025, 1, 1, 10, 30)},
		{Start: mustTime(t, 2025, 1, 1, 10, 30), End: mustTime(t, 2025, 1, 1, 11, 0)},
		{Start: mustTime(t, 2025, 1, 1, 11, 0), End: mustTime(t, 2025, 1, 1, 11, 30)},
		{Start: mustTime(t, 2025, 1, 1, 11, 30), End: mustTime(t, 2025, 1, 1, 12, 0)},
		{Start: mustTime(t, 2025, 1, 1, 12, 0), End: mustTime(t, 2025, 1, 1, 12, 30)},
		{Start: mustTime(t, 2025, 1, 1, 12, 30), End: mustTime(t, 2025, 1, 1, 13, 0)},
	}

	if !equalTimeRangeSlices(slots, expected) {
		t.Fatalf("expected %d slots %+v,\n got %d slots %+v", len(expected), expected, len(slots), slots)
	}
}

func TestFreeSlots_AppointmentAcrossSlotBoundary(t *testing.T) {
	// Запись 09:15–09:45 выбивает оба затронутых слота.
	work := TimeRange{Start: mustTime(t, 2025, 1, 1, 9, 0), End: mustTime(t, 2025, 1, 1, 10, 30)}
	busy := []TimeRange{
		{Start: mustTime(t, 2025, 1, 1, 9, 15), End: mustTime(t, 2025, 1, 1, 9, 45)},
	}

	slots, err := FreeSlots(work, busy, SlotDuration)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []TimeRange{
		{Start: mustTime(t, 2025, 1, 1, 10, 0), End: mustTime(t, 2025, 1, 1, 10, 30)},
	}
	if !equalTimeRangeSlices(slots, expected) {
		t.Fatalf("expected %+v, got %+v", expected, slots)
	}
}

func TestFreeSlots_NoBusy(t *testing.T) {
	work := TimeRange{Start: mustTime(t, 2025, 1, 1, 8, 0), End: mustTime(t, 2025, 1, 1, 10, 0)}

	slots, err := FreeSlots(work, nil, SlotDuration)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(slots))
	}
}

func TestFreeSlots_EmptyWorkInterval(t *testing.T) {
	work := TimeRange{Start: mustTime(t, 2025, 1, 1, 8, 0), End: mustTime(t, 2025, 1, 1, 8, 0)}

	slots, err := FreeSlots(work, nil, 30*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(slots))
	}
}
