package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type RescheduleAppointmentInput struct {
	SalonID       uint
	AppointmentID uint

	NewStart          *time.Time
	NewEnd            *time.Time
	NewProfessionalID *uint
	NewServiceID      *uint
	NewValue          *float64
	NewNotes          *string

	ActorID *uint
}

type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Cache,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.SalonID, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	// só agenda viva pode ser remarcada
	if !domain.Blocking(domain.Status(ap.Status)) {
		return nil, httperr.ErrBusiness("invalid_transition")
	}

	oldDuration := ap.EndTime.Sub(ap.StartTime)

	if in.NewStart != nil {
		ap.StartTime = *in.NewStart
		// sem fim explícito, a duração original é preservada
		ap.EndTime = in.NewStart.Add(oldDuration)
	}
	if in.NewEnd != nil {
		ap.EndTime = *in.NewEnd
	}
	if in.NewProfessionalID != nil {
		if _, err := uc.repo.GetProfessional(ctx, in.SalonID, *in.NewProfessionalID); err != nil {
			return nil, httperr.ErrBusiness("not_found")
		}
		ap.ProfessionalID = *in.NewProfessionalID
	}
	if in.NewServiceID != nil {
		svc, err := uc.repo.GetService(ctx, in.SalonID, *in.NewServiceID)
		if err != nil {
			return nil, httperr.ErrBusiness("not_found")
		}
		ap.ServiceID = svc.ID
	}
	if in.NewValue != nil {
		ap.Value = *in.NewValue
	}
	if in.NewNotes != nil {
		ap.Notes = *in.NewNotes
	}

	if err := domain.ValidateInterval(ap.StartTime, ap.EndTime); err != nil {
		return nil, err
	}

	// a varredura roda sempre, mesmo sem mudança de horário
	if err := uc.repo.SaveAppointmentIfFree(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   in.ActorID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.cache.InvalidatePrefix(ctx, cache.AvailabilityPrefix(in.SalonID))

	return ap, nil
}
