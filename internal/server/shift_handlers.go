package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/zebekov/clinic-platform/internal/metrics"
)

// generateWeek создаёт сетку смен недели и назначает врачей.
// Повторный вызов не плодит дубликатов.
func (s *Server) generateWeek(c *fiber.Ctx) error {
	var in struct {
		Week int `json:"week"`
		Year int `json:"year"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "некорректное тело запроса")
	}
	if in.Year == 0 {
		in.Year = time.Now().UTC().Year()
	}

	shifts, err := s.shifts.GenerateWeek(c.UserContext(), in.Week, in.Year)
	if err != nil {
		return respondError(c, err)
	}

	metrics.ShiftsGenerated.Add(float64(len(shifts)))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"week":   in.Week,
		"year":   in.Year,
		"shifts": shifts,
	})
}

func (s *Server) listShifts(c *fiber.Ctx) error {
	week := c.QueryInt("week")
	if week < 1 {
		return badRequest(c, "некорректный параметр week")
	}

	shifts, err := s.shifts.ListByWeek(c.UserContext(), week)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(shifts)
}

// weekSchedule отдаёт сетку недели в виде день -> смена -> врачи.
func (s *Server) weekSchedule(c *fiber.Ctx) error {
	week := c.QueryInt("week")
	if week < 1 {
		return badRequest(c, "некорректный параметр week")
	}
	year := c.QueryInt("year", time.Now().UTC().Year())

	schedule, err := s.shifts.WeekSchedule(c.UserContext(), week, year)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(schedule)
}

func (s *Server) getShift(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "некорректный идентификатор")
	}

	shift, err := s.shifts.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(shift)
}

// assignDoctors заменяет состав врачей смены на присланный список.
func (s *Server) assignDoctors(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "некорректный идентификатор")
	}

	var in struct {
		DoctorIDs []uuid.UUID `json:"doctor_ids"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "некорректное тело запроса")
	}

	shift, err := s.shifts.AssignDoctors(c.UserContext(), id, in.DoctorIDs)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(shift)
}
