package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/zebekov/clinic-platform/internal/config"
	"github.com/zebekov/clinic-platform/internal/db"
	"github.com/zebekov/clinic-platform/internal/model"
	"github.com/zebekov/clinic-platform/internal/repository"
	"github.com/zebekov/clinic-platform/internal/server"
	"github.com/zebekov/clinic-platform/internal/service"
)

func main() {
	// 1. Переменные окружения: .env опционален, в контейнере его нет.
	_ = godotenv.Load()

	appCfg := config.LoadAppConfig()
	log := newLogger(appCfg)

	// 2. Конфиг БД из env.
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load db config")
	}

	// 3. Подключаемся к БД через GORM.
	gormDB, err := db.NewGormDB(dbCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init db")
	}

	// 4. Миграции моделей.
	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("auto migrate")
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("sql DB")
	}
	defer sqlDB.Close()

	// 5. Репозитории (реализации на GORM).
	doctorRepo := repository.NewGormDoctorRepository(gormDB)
	serviceRepo := repository.NewGormServiceRepository(gormDB)
	appointmentRepo := repository.NewGormAppointmentRepository(gormDB)
	shiftRepo := repository.NewGormShiftRepository(gormDB)
	slotRepo := repository.NewGormScheduleSlotRepository(gormDB)
	eventRepo := repository.NewGormEventRepository(gormDB)

	// 6. Сервисы планировщика.
	catalogSvc := service.NewCatalogService(doctorRepo, serviceRepo, slotRepo, log)
	appointmentSvc := service.NewAppointmentService(gormDB, appointmentRepo, serviceRepo, doctorRepo, eventRepo, log)
	shiftSvc := service.NewShiftService(shiftRepo, doctorRepo, eventRepo, log)
	availabilitySvc := service.NewAvailabilityService(shiftRepo, appointmentRepo, doctorRepo, log)
	calendarSvc := service.NewCalendarService(appointmentRepo, log)

	// 7. HTTP-сервер.
	srv := server.New(appCfg, catalogSvc, appointmentSvc, shiftSvc, availabilitySvc, calendarSvc, log)

	go func() {
		log.Info().Str("addr", appCfg.HTTPAddr).Msg("http server listening")
		if err := srv.Listen(appCfg.HTTPAddr); err != nil {
			log.Fatal().Err(err).Msg("http serve")
		}
	}()

	// 8. Грейсфул-шатдаун по сигналу.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down http server...")
	if err := srv.Shutdown(); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

func newLogger(cfg *config.AppConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	if cfg.LogPretty {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	return log
}
