package models

import "time"

// Uma linha por (salão, dia da semana, hora). A ausência de linhas para
// um dia significa o template padrão de atendimento.
type AvailabilitySlot struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"uniqueIndex:idx_slot_salon_day_hour" json:"salon_id"`

	Weekday int    `gorm:"uniqueIndex:idx_slot_salon_day_hour" json:"weekday"`
	Hour    string `gorm:"size:5;uniqueIndex:idx_slot_salon_day_hour" json:"hour"`

	Available bool `gorm:"default:true" json:"available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
