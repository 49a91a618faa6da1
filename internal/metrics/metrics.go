package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Метрики клинического бэкенда
var (
	// Общие метрики HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_http_requests_total",
			Help: "Общее количество обработанных HTTP-запросов",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clinic_http_request_duration_seconds",
			Help:    "Время обработки HTTP-запросов в секундах",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Метрики планировщика
	AppointmentsBooked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clinic_appointments_booked_total",
			Help: "Общее количество забронированных записей",
		},
	)

	AppointmentConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clinic_appointment_conflicts_total",
			Help: "Общее количество отклонённых по конфликту бронирований",
		},
	)

	ShiftsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clinic_shifts_generated_total",
			Help: "Общее количество сгенерированных смен",
		},
	)
)
