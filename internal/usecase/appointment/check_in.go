package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type CheckInAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCheckInAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CheckInAppointment {
	return &CheckInAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute é idempotente e independe do status do agendamento.
func (uc *CheckInAppointment) Execute(
	ctx context.Context,
	salonID uint,
	actorID *uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, salonID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	if ap.CheckedIn {
		return ap, nil
	}

	ap.CheckedIn = true
	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   actorID,
		Action:   "appointment_checked_in",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
