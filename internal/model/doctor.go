package model

import (
	"time"

	"github.com/google/uuid"
)

// Doctor — врач клиники. Идентичность неизменна, контактные поля редактируются.
// Привязка к учётной записи (AccountID) опциональна: аутентификация живёт
// во внешнем сервисе, здесь храним только ссылку.
type Doctor struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	FullName string `gorm:"type:varchar(255);not null" json:"full_name"`
	Phone    string `gorm:"type:varchar(32)" json:"phone"`
	Email    string `gorm:"type:varchar(255)" json:"email"`
	PhotoURL string `gorm:"type:text" json:"photo_url"`

	AccountID *uuid.UUID `gorm:"type:uuid;index" json:"account_id,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`

	// Навигационные поля. Удаление врача каскадно удаляет его записи и слоты.
	Appointments  []Appointment  `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ScheduleSlots []ScheduleSlot `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Shifts        []Shift        `gorm:"many2many:shift_doctors;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
