package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/zebekov/clinic-platform/internal/service"
)

func (s *Server) createDoctor(c *fiber.Ctx) error {
	var in service.DoctorInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "некорректное тело запроса")
	}

	doctor, err := s.catalog.CreateDoctor(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doctor)
}

func (s *Server) getDoctor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "некорректный идентификатор")
	}

	doctor, err := s.catalog.GetDoctor(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(doctor)
}

func (s *Server) listDoctors(c *fiber.Ctx) error {
	page, err := s.catalog.ListDoctors(c.UserContext(), c.QueryInt("page", 1), c.QueryInt("page_size", 20))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

func (s *Server) updateDoctor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "некорректный идентификатор")
	}

	var in service.DoctorInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "некорректное тело запроса")
	}

	doctor, err := s.catalog.UpdateDoctor(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(doctor)
}

func (s *Server) deleteDoctor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "некорректный идентификатор")
	}

	if err := s.catalog.DeleteDoctor(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) createService(c *fiber.Ctx) error {
	var in service.ServiceInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "некорректное тело запроса")
	}

	svc, err := s.catalog.CreateService(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(svc)
}

func (s *Server) getService(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "некорректный идентификатор")
	}

	svc, err := s.catalog.GetService(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(svc)
}

func (s *Server) listServices(c *fiber.Ctx) error {
	page, err := s.catalog.ListServices(c.UserContext(), c.QueryInt("page", 1), c.QueryInt("page_size", 20))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

func (s *Server) updateService(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "некорректный идентификатор")
	}

	var in service.ServiceInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "некорректное тело запроса")
	}

	svc, err := s.catalog.UpdateService(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(svc)
}

func (s *Server) deleteService(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "некорректный идентификатор")
	}

	if err := s.catalog.DeleteService(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
