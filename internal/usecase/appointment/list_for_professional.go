package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ListAppointmentsForProfessional struct {
	repo domain.Repository
}

func NewListAppointmentsForProfessional(repo domain.Repository) *ListAppointmentsForProfessional {
	return &ListAppointmentsForProfessional{repo: repo}
}

func (uc *ListAppointmentsForProfessional) Execute(
	ctx context.Context,
	salonID uint,
	professionalID uint,
	from *time.Time,
	to *time.Time,
) ([]models.Appointment, error) {

	if _, err := uc.repo.GetProfessional(ctx, salonID, professionalID); err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	return uc.repo.ListAppointmentsForProfessional(ctx, salonID, professionalID, from, to)
}
