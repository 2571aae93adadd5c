package models

import "time"

// Cliente simples, sem login, vinculado ao salão.
// Único por (salon_id, email) quando o e-mail é informado.
type Customer struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index:idx_customer_salon_email" json:"salon_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100;index:idx_customer_salon_email" json:"email"`

	// tags separadas por vírgula
	Tags       string `gorm:"size:255" json:"tags"`
	Rating     int    `gorm:"default:0" json:"rating"`
	VisitCount int    `gorm:"default:0" json:"visit_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
