package server

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/zebekov/clinic-platform/internal/config"
	"github.com/zebekov/clinic-platform/internal/service"
)

// Server — HTTP-поверхность планировщика: справочники, записи,
// доступность, смены и календарь.
type Server struct {
	app *fiber.App
	log zerolog.Logger

	catalog      *service.CatalogService
	appointments *service.AppointmentService
	shifts       *service.ShiftService
	availability *service.AvailabilityService
	calendar     *service.CalendarService

	jwtSecret []byte
}

func New(
	cfg *config.AppConfig,
	catalog *service.CatalogService,
	appointments *service.AppointmentService,
	shifts *service.ShiftService,
	availability *service.AvailabilityService,
	calendar *service.CalendarService,
	log zerolog.Logger,
) *Server {
	s := &Server{
		log:          log,
		catalog:      catalog,
		appointments: appointments,
		shifts:       shifts,
		availability: availability,
		calendar:     calendar,
		jwtSecret:    []byte(cfg.JWTSecret),
	}

	s.app = fiber.New(fiber.Config{
		AppName: "clinic-platform",
	})
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.app.Use(recover.New())
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	s.app.Use(RequestLogger(s.log))

	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := s.app.Group("/api/v1", AuthRequired(s.jwtSecret))

	// Справочники редактирует только администратор, читают все
	// аутентифицированные роли.
	doctors := api.Group("/doctors")
	doctors.Get("/", s.listDoctors)
	doctors.Get("/:id", s.getDoctor)
	doctors.Post("/", RequireRole(RoleAdmin), s.createDoctor)
	doctors.Put("/:id", RequireRole(RoleAdmin), s.updateDoctor)
	doctors.Delete("/:id", RequireRole(RoleAdmin), s.deleteDoctor)

	services := api.Group("/services")
	services.Get("/", s.listServices)
	services.Get("/:id", s.getService)
	services.Post("/", RequireRole(RoleAdmin), s.createService)
	services.Put("/:id", RequireRole(RoleAdmin), s.updateService)
	services.Delete("/:id", RequireRole(RoleAdmin), s.deleteService)

	appointments := api.Group("/appointments", RequireRole(RoleAdmin, RoleDoctor))
	appointments.Get("/", s.listAppointments)
	appointments.Get("/available-slots", s.availableSlots)
	appointments.Get("/:id", s.getAppointment)
	appointments.Post("/", s.createAppointment)
	appointments.Put("/:id", s.updateAppointment)
	appointments.Delete("/:id", s.deleteAppointment)

	shifts := api.Group("/shifts")
	shifts.Get("/", s.listShifts)
	shifts.Get("/week-schedule", s.weekSchedule)
	shifts.Get("/:id", s.getShift)
	shifts.Post("/generate-week", RequireRole(RoleAdmin), s.generateWeek)
	shifts.Put("/:id", RequireRole(RoleAdmin), s.assignDoctors)

	slots := api.Group("/schedule-slots")
	slots.Get("/", s.listSlots)
	slots.Get("/:id", s.getSlot)
	slots.Post("/", RequireRole(RoleAdmin), s.createSlot)
	slots.Put("/:id", RequireRole(RoleAdmin), s.updateSlot)
	slots.Patch("/:id/availability", RequireRole(RoleAdmin), s.setSlotAvailability)
	slots.Delete("/:id", RequireRole(RoleAdmin), s.deleteSlot)

	calendar := api.Group("/calendar")
	calendar.Get("/week", s.calendarWeek)
	calendar.Get("/month", s.calendarMonth)
}

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App отдаёт приложение fiber, используется в тестах.
func (s *Server) App() *fiber.App {
	return s.app
}
