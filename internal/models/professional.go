package models

import "time"

// SalonID fica zerado até o profissional ser vinculado a um salão
// (aceite de um link request).
type Professional struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	// referência opaca do provedor de identidade externo
	ExternalRef string `gorm:"size:100;index" json:"external_ref"`

	AvatarURL string `gorm:"size:255" json:"avatar_url"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
