package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// calendarWeek — записи недели, сгруппированные по дням.
// Окно — семь дней начиная со start, без выравнивания по понедельнику.
func (s *Server) calendarWeek(c *fiber.Ctx) error {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		return badRequest(c, "некорректный параметр start")
	}

	doctorID, err := optionalDoctorID(c)
	if err != nil {
		return badRequest(c, "некорректный параметр doctor_id")
	}

	view, err := s.calendar.WeekView(c.UserContext(), start, doctorID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// calendarMonth — записи месяца, сгруппированные по дням.
// month — "YYYY-MM".
func (s *Server) calendarMonth(c *fiber.Ctx) error {
	ym, err := time.Parse("2006-01", c.Query("month"))
	if err != nil {
		return badRequest(c, "некорректный параметр month")
	}

	doctorID, err := optionalDoctorID(c)
	if err != nil {
		return badRequest(c, "некорректный параметр doctor_id")
	}

	view, err := s.calendar.MonthView(c.UserContext(), ym.Year(), ym.Month(), doctorID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func optionalDoctorID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Query("doctor_id")
	if raw == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(raw)
}
