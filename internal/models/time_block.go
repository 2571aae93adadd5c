package models

import "time"

// Bloqueio de agenda declarado pelo dono (férias, almoço, ad-hoc).
// Não tem status: existir já bloqueia.
type TimeBlock struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	ProfessionalID uint         `gorm:"index" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Reason string `gorm:"size:255" json:"reason"`
	Kind   string `gorm:"size:20;default:'unavailable'" json:"kind"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	TimeBlockKindUnavailable = "unavailable"
	TimeBlockKindVacation    = "vacation"
	TimeBlockKindLunch       = "lunch"
)
