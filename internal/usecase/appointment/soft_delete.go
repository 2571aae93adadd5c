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

type SoftDeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewSoftDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Cache,
) *SoftDeleteAppointment {
	return &SoftDeleteAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// Execute marca cancelado + instante de exclusão; a linha nunca sai do
// banco. Agendamento concluído é histórico e não pode ser excluído.
func (uc *SoftDeleteAppointment) Execute(
	ctx context.Context,
	salonID uint,
	actorID *uint,
	appointmentID uint,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	ap, err := uc.repo.GetAppointment(ctx, salonID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	if domain.Status(ap.Status) == domain.StatusCompleted {
		return nil, httperr.ErrBusiness("invalid_transition")
	}

	now := timezone.NowIn(salon.Timezone)

	if domain.Blocking(domain.Status(ap.Status)) {
		ap.Status = string(domain.StatusCancelled)
		ap.CancelledAt = &now
	}
	ap.DeletedAt = &now

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   actorID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.cache.InvalidatePrefix(ctx, cache.AvailabilityPrefix(salonID))

	return ap, nil
}
