package model

import (
	"time"

	"github.com/google/uuid"
)

// services — прейскурант клиники: фиксированная цена и длительность в минутах.
type Service struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Name string `gorm:"type:varchar(255);not null" json:"name"`

	Price       float64 `gorm:"type:numeric(8,2);not null" json:"price"`
	DurationMin int     `gorm:"not null" json:"duration_min"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}
