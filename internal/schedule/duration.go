package schedule

import "time"

// PricedService — длительность и цена услуги из прейскуранта.
type PricedService struct {
	DurationMin int
	Price       float64
}

// ResolvedAppointment — результат разрешения длительности и цены черновика.
type ResolvedAppointment struct {
	DurationMin int
	Price       float64
	EndsAt      time.Time
}

// ResolveAppointment разрешает длительность и цену черновика записи.
// Если услуга указана — длительность и цена копируются из неё, кастомные
// поля игнорируются. Если услуги нет — обязательны и customDurationMin,
// и customPrice, иначе ErrMissingDurationOrPrice.
// Конец записи всегда производный: start + длительность.
func ResolveAppointment(
	start time.Time,
	svc *PricedService,
	customDurationMin *int,
	customPrice *float64,
) (ResolvedAppointment, error) {
	if start.IsZero() {
		return ResolvedAppointment{}, ErrInvalidTimeRange
	}

	var (
		durationMin int
		price       float64
	)

	switch {
	case svc != nil:
		durationMin = svc.DurationMin
		price = svc.Price
	case customDurationMin != nil && customPrice != nil:
		durationMin = *customDurationMin
		price = *customPrice
	default:
		return ResolvedAppointment{}, ErrMissingDurationOrPrice
	}

	if durationMin <= 0 {
		return ResolvedAppointment{}, ErrInvalidTimeRange
	}

	return ResolvedAppointment{
		DurationMin: durationMin,
		Price:       price,
		EndsAt:      start.Add(time.Duration(durationMin) * time.Minute),
	}, nil
}
