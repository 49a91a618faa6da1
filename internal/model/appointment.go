package model

import (
	"time"

	"github.com/google/uuid"
)

// appointments — запись пациента к врачу.
// Либо ссылка на услугу (цена и длительность копируются из неё),
// либо произвольная услуга с явными CustomServiceName + DurationMin + Price.
// EndsAt всегда вычисляется как StartsAt + длительность, извне не задаётся.
type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	DoctorID uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`

	PatientFirstName string `gorm:"type:varchar(255);not null" json:"patient_first_name"`
	PatientLastName  string `gorm:"type:varchar(255);not null" json:"patient_last_name"`
	PatientPhone     string `gorm:"type:varchar(32)" json:"patient_phone"`

	// Услуга из прейскуранта; при её удалении ссылка обнуляется, запись остаётся.
	ServiceID         *uuid.UUID `gorm:"type:uuid;index" json:"service_id,omitempty"`
	CustomServiceName string     `gorm:"type:varchar(255)" json:"custom_service_name,omitempty"`

	DurationMin int     `gorm:"not null" json:"duration_min"`
	Price       float64 `gorm:"type:numeric(8,2);not null" json:"price"`

	StartsAt time.Time `gorm:"type:timestamp with time zone;not null;index" json:"starts_at"`
	EndsAt   time.Time `gorm:"type:timestamp with time zone;not null" json:"ends_at"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`

	Doctor  *Doctor  `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"doctor,omitempty"`
	Service *Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"service,omitempty"`
}

// PatientFullName — отображаемое имя пациента для read-представлений.
func (a *Appointment) PatientFullName() string {
	return a.PatientFirstName + " " + a.PatientLastName
}
