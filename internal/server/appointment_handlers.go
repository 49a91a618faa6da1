package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/zebekov/clinic-platform/internal/metrics"
	"github.com/zebekov/clinic-platform/internal/service"
)

func (s *Server) createAppointment(c *fiber.Ctx) error {
	var in service.AppointmentInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "некорректное тело запроса")
	}

	appt, err := s.appointments.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}

	metrics.AppointmentsBooked.Inc()
	return c.Status(fiber.StatusCreated).JSON(appt)
}

func (s *Server) getAppointment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "некорректный идентификатор")
	}

	appt, err := s.appointments.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(appt)
}

// listAppointments отдаёт страницу записей за интервал.
// Параметры from/to — RFC 3339, doctor_id опционален.
func (s *Server) listAppointments(c *fiber.Ctx) error {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		return badRequest(c, "некорректный параметр from")
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		return badRequest(c, "некорректный параметр to")
	}

	doctorID := uuid.Nil
	if raw := c.Query("doctor_id"); raw != "" {
		doctorID, err = uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "некорректный параметр doctor_id")
		}
	}

	page, err := s.appointments.List(
		c.UserContext(),
		doctorID,
		from, to,
		c.QueryInt("page", 1),
		c.QueryInt("page_size", 20),
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

func (s *Server) updateAppointment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "некорректный идентификатор")
	}

	var in service.AppointmentInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "некорректное тело запроса")
	}

	appt, err := s.appointments.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(appt)
}

func (s *Server) deleteAppointment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "некорректный идентификатор")
	}

	if err := s.appointments.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// availableSlots отдаёт свободные получасовые окна врача на дату.
func (s *Server) availableSlots(c *fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Query("doctor_id"))
	if err != nil {
		return badRequest(c, "некорректный параметр doctor_id")
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return badRequest(c, "некорректный параметр date")
	}

	slots, err := s.availability.AvailableSlots(c.UserContext(), doctorID, date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"doctor_id": doctorID.String(),
		"date":      c.Query("date"),
		"slots":     slots,
	})
}
