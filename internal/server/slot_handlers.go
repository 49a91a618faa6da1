package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/zebekov/clinic-platform/internal/service"
)

func (s *Server) createSlot(c *fiber.Ctx) error {
	var in service.ScheduleSlotInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "некорректное тело запроса")
	}

	slot, err := s.catalog.CreateSlot(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(slot)
}

func (s *Server) getSlot(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "некорректный идентификатор")
	}

	slot, err := s.catalog.GetSlot(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(slot)
}

func (s *Server) listSlots(c *fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Query("doctor_id"))
	if err != nil {
		return badRequest(c, "некорректный параметр doctor_id")
	}
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return badRequest(c, "некорректный параметр date")
	}

	slots, err := s.catalog.ListSlots(c.UserContext(), doctorID, date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(slots)
}

func (s *Server) updateSlot(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "некорректный идентификатор")
	}

	var in service.ScheduleSlotInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "некорректное тело запроса")
	}

	slot, err := s.catalog.UpdateSlot(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(slot)
}

func (s *Server) setSlotAvailability(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "некорректный идентификатор")
	}

	var in struct {
		IsAvailable bool `json:"is_available"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "некорректное тело запроса")
	}

	slot, err := s.catalog.SetSlotAvailability(c.UserContext(), id, in.IsAvailable)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(slot)
}

func (s *Server) deleteSlot(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "некорректный идентификатор")
	}

	if err := s.catalog.DeleteSlot(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
