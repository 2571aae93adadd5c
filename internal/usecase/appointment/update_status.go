package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type UpdateAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Cache,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	salonID uint,
	actorID *uint,
	appointmentID uint,
	newStatus string,
) (*models.Appointment, error) {

	to := domain.Status(newStatus)
	if !domain.IsValidStatus(to) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	ap, err := uc.repo.GetAppointment(ctx, salonID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	now := timezone.NowIn(salon.Timezone)
	if err := domain.Transition(ap, to, now); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   actorID,
		Action:   "appointment_" + newStatus,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	// cancelamento/conclusão libera a vaga na grade
	uc.cache.InvalidatePrefix(ctx, cache.AvailabilityPrefix(salonID))

	return ap, nil
}
