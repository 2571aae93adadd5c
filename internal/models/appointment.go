package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// código opaco devolvido ao cliente na reserva
	PublicRef string `gorm:"size:36;uniqueIndex" json:"public_ref"`

	SalonID uint  `gorm:"index:idx_appointment_salon_status;index:idx_appointment_salon_start" json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"salon"`

	ProfessionalID uint         `gorm:"index" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	CustomerID uint     `gorm:"index" json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	// snapshot do contato no momento da reserva
	ClientName  string `gorm:"size:100" json:"client_name"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`
	ClientEmail string `gorm:"size:100" json:"client_email"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// instantes UTC; data e dia da semana são derivados no timezone do salão
	StartTime time.Time `gorm:"index:idx_appointment_salon_start" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	// snapshot do preço do serviço no momento da reserva
	Value float64 `json:"value"`

	Status string `gorm:"size:20;default:'pending';index:idx_appointment_salon_status" json:"status"`

	CheckedIn bool   `gorm:"default:false" json:"checked_in"`
	Notes     string `gorm:"size:255" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`
	DeletedAt   *time.Time `json:"deleted_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
