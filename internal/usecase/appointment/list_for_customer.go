package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ListAppointmentsForCustomer struct {
	repo domain.Repository
}

func NewListAppointmentsForCustomer(repo domain.Repository) *ListAppointmentsForCustomer {
	return &ListAppointmentsForCustomer{repo: repo}
}

func (uc *ListAppointmentsForCustomer) Execute(
	ctx context.Context,
	salonID uint,
	customerID uint,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointmentsForCustomer(ctx, salonID, customerID)
}
