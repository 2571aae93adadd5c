package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	SalonID        uint
	ProfessionalID uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint

	Start time.Time
	// End zerado deriva do serviço (Start + duração)
	End time.Time

	// Value zerado recebe o snapshot do preço do serviço
	Value float64
	Notes string

	// reservas vindas da página pública respeitam a antecedência
	// mínima do salão; a agenda interna não
	PublicBooking bool

	ActorID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Cache,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	if _, err := uc.repo.GetProfessional(ctx, in.SalonID, in.ProfessionalID); err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	service, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}
	if !service.Active {
		return nil, httperr.ErrBusiness("service_inactive")
	}

	end := in.End
	if end.IsZero() {
		end = in.Start.Add(time.Duration(service.DurationMin) * time.Minute)
	}

	if err := domain.ValidateInterval(in.Start, end); err != nil {
		return nil, err
	}

	if in.PublicBooking && salon.MinAdvanceMinutes > 0 {
		minStart := time.Now().Add(time.Duration(salon.MinAdvanceMinutes) * time.Minute)
		if in.Start.Before(minStart) {
			return nil, httperr.ErrBusiness("too_soon")
		}
	}

	if in.ClientName == "" {
		return nil, httperr.ErrBusiness("missing_client_name")
	}
	if in.ClientEmail != "" && !validators.IsEmailFormatValid(in.ClientEmail) {
		return nil, httperr.ErrBusiness("invalid_email")
	}

	customer, err := uc.repo.GetOrCreateCustomer(
		ctx,
		in.SalonID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	value := in.Value
	if value == 0 {
		value = service.Price
	}

	ap := &models.Appointment{
		PublicRef:      uuid.NewString(),
		SalonID:        in.SalonID,
		ProfessionalID: in.ProfessionalID,
		CustomerID:     customer.ID,
		ClientName:     in.ClientName,
		ClientPhone:    in.ClientPhone,
		ClientEmail:    in.ClientEmail,
		ServiceID:      service.ID,
		StartTime:      in.Start,
		EndTime:        end,
		Value:          value,
		Status:         string(domain.InitialStatus(salon.AutoApprove)),
		Notes:          in.Notes,
	}

	// varredura de conflito + insert numa transação só
	if err := uc.repo.CreateAppointmentIfFree(ctx, ap); err != nil {
		return nil, err
	}

	// melhor esforço; a reserva já está confirmada
	_ = uc.repo.IncrementCustomerVisits(ctx, in.SalonID, customer.ID)

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   in.ActorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.cache.InvalidatePrefix(ctx, cache.AvailabilityPrefix(in.SalonID))

	return ap, nil
}
