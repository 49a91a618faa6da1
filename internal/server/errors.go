package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/zebekov/clinic-platform/internal/metrics"
	"github.com/zebekov/clinic-platform/internal/schedule"
	"github.com/zebekov/clinic-platform/internal/service"
)

// respondError переводит доменные ошибки в HTTP-статусы.
func respondError(c *fiber.Ctx, err error) error {
	var conflict *schedule.ConflictError
	switch {
	case errors.As(err, &conflict):
		metrics.AppointmentConflicts.Inc()
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":                   "время пересекается с существующей записью",
			"conflicting_appointment": conflict.AppointmentID.String(),
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "не найдено",
		})
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, schedule.ErrInvalidTimeRange),
		errors.Is(err, schedule.ErrSlotDuration),
		errors.Is(err, schedule.ErrMissingDurationOrPrice):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "внутренняя ошибка",
		})
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
	})
}
