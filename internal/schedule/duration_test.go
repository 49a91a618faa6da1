package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestResolveAppointment_FromService(t *testing.T) {
	start := mustTime(t, 2025, 1, 1, 10, 0)
	svc := &PricedService{DurationMin: 30, Price: 75.00}

	res, err := ResolveAppointment(start, svc, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.DurationMin != 30 {
		t.Fatalf("expected duration 30, got %d", res.DurationMin)
	}
	if res.Price != 75.00 {
		t.Fatalf("expected price 75.00, got %v", res.Price)
	}
	if !res.EndsAt.Equal(mustTime(t, 2025, 1, 1, 10, 30)) {
		t.Fatalf("expected end 10:30, got %v", res.EndsAt)
	}
}

func TestResolveAppointment_ServiceWinsOverCustom(t *testing.T) {
	start := mustTime(t, 2025, 1, 1, 10, 0)
	svc := &PricedService{DurationMin: 45, Price: 120.00}
	customDur := 15
	customPrice := 10.00

	res, err := ResolveAppointment(start, svc, &customDur, &customPrice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.DurationMin != 45 || res.Price != 120.00 {
		t.Fatalf("expected service fields to win, got %+v", res)
	}
}

func TestResolveAppointment_Custom(t *testing.T) {
	start := mustTime(t, 2025, 1, 1, 9, 0)
	customDur := 60
	customPrice := 200.00

	res, err := ResolveAppointment(start, nil, &customDur, &customPrice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.DurationMin != 60 || res.Price != 200.00 {
		t.Fatalf("unexpected resolution: %+v", res)
	}
	if !res.EndsAt.Equal(start.Add(time.Hour)) {
		t.Fatalf("expected end %v, got %v", start.Add(time.Hour), res.EndsAt)
	}
}

func TestResolveAppointment_MissingDurationOrPrice(t *testing.T) {
	start := mustTime(t, 2025, 1, 1, 9, 0)
	customDur := 60
	customPrice := 200.00

	cases := []struct {
		name  string
		dur   *int
		price *float64
	}{
		{"both missing", nil, nil},
		{"price missing", &customDur, nil},
		{"duration missing", nil, &customPrice},
	}

	for _, tc := range cases {
		if _, err := ResolveAppointment(start, nil, tc.dur, tc.price); !errors.Is(err, ErrMissingDurationOrPrice) {
			t.Fatalf("%s: expected ErrMissingDurationOrPrice, got %v", tc.name, err)
		}
	}
}

func TestResolveAppointment_ZeroStart(t *testing.T) {
	svc := &PricedService{DurationMin: 30, Price: 75.00}
	if _, err := ResolveAppointment(time.Time{}, svc, nil, nil); !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
	}
}

func TestResolveAppointment_NonPositiveDuration(t *testing.T) {
	start := mustTime(t, 2025, 1, 1, 9, 0)
	customDur := 0
	customPrice := 50.00

	if _, err := ResolveAppointment(start, nil, &customDur, &customPrice); !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
	}
}
