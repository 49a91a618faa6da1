package model

import (
	"time"

	"github.com/google/uuid"
)

// Тип смены: первая (утренняя) или вторая (вечерняя).
type ShiftType string

const (
	ShiftTypeFirst  ShiftType = "first"
	ShiftTypeSecond ShiftType = "second"
)

// shifts — смена: (номер недели, день недели, тип смены) с фиксированными
// границами по времени суток и набором назначенных врачей.
// Инвариант: не более одной смены на тройку (week_of_year, day_of_week, shift_type),
// создание идемпотентно (get-or-create по тройке).
type Shift struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	WeekOfYear int       `gorm:"not null;uniqueIndex:idx_shift_key" json:"week_of_year"`
	DayOfWeek  int       `gorm:"not null;uniqueIndex:idx_shift_key" json:"day_of_week"` // 0=Пн .. 5=Сб
	ShiftType  ShiftType `gorm:"type:varchar(10);not null;uniqueIndex:idx_shift_key" json:"shift_type"`

	// Время суток в формате "HH:MM".
	StartTime string `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime   string `gorm:"type:varchar(5);not null" json:"end_time"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`

	Doctors []Doctor `gorm:"many2many:shift_doctors;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"doctors,omitempty"`
}
