package models

import "time"

// Proposta de vínculo de um profissional a um salão.
// No máximo uma pendente por solicitante.
type LinkRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RequesterID uint `gorm:"index" json:"requester_id"`
	SalonID     uint `gorm:"index" json:"salon_id"`

	// snapshot do perfil do solicitante no momento do pedido
	Name  string `gorm:"size:100" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	Kind   string `gorm:"size:20;default:'employee'" json:"kind"`
	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	LinkRequestKindEmployee = "employee"
	LinkRequestKindClient   = "client"

	LinkRequestPending  = "pending"
	LinkRequestAccepted = "accepted"
	LinkRequestRejected = "rejected"
)
