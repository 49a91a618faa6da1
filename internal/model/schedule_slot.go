package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// schedule_slots — упрощённый вариант доступности: врач + дата + интервал
// по времени суток + флаг. Используется как замена производной от смен
// доступности там, где смены не заведены.
type ScheduleSlot struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	DoctorID uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`

	Date datatypes.Date `gorm:"type:date;not null;index" json:"date"`

	StartTime string `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime   string `gorm:"type:varchar(5);not null" json:"end_time"`

	IsAvailable bool `gorm:"not null;default:true" json:"is_available"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`

	Doctor *Doctor `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"doctor,omitempty"`
}
