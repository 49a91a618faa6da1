package model

import "gorm.io/gorm"

// AutoMigrate выполняет миграцию всех сущностей клиники.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Doctor{},
		&Service{},
		&Shift{},
		&Appointment{},
		&ScheduleSlot{},
		&Event{},
	)
}
