package availability

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ComputeAvailability monta a grade consultiva do dia: horas
// configuradas (ou template padrão) menos os horários já ocupados por
// agendamentos bloqueantes. Quem decide se a reserva entra é sempre o
// resolver no commit.
type ComputeAvailability struct {
	repo  domain.Repository
	cache *cache.Cache

	openHour  int
	closeHour int
}

func NewComputeAvailability(
	repo domain.Repository,
	c *cache.Cache,
	cfg *config.Config,
) *ComputeAvailability {
	return &ComputeAvailability{
		repo:      repo,
		cache:     c,
		openHour:  cfg.OpenHour,
		closeHour: cfg.CloseHour,
	}
}

func (uc *ComputeAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.HourSlot, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	if _, err := uc.repo.GetProfessional(ctx, in.SalonID, in.ProfessionalID); err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	if int(in.Date.Weekday()) != in.Weekday {
		return nil, httperr.ErrBusiness("weekday_mismatch")
	}

	key := cache.AvailabilityKey(in.SalonID, in.ProfessionalID, in.Date.Format("2006-01-02"))

	var cached []domain.HourSlot
	if hit, err := uc.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	configured, err := uc.repo.ListAvailabilitySlotsByDay(ctx, in.SalonID, in.Weekday)
	if err != nil {
		return nil, err
	}

	slots := domain.BuildDay(
		domain.DefaultTemplate(uc.openHour, uc.closeHour),
		configured,
	)

	loc := timezone.Location(salon.Timezone)
	dayStart, dayEnd := timezone.DayBounds(in.Date, loc)

	busy, err := uc.repo.ListBlockingAppointmentsForDay(
		ctx,
		in.SalonID,
		in.ProfessionalID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	slots = domain.MarkBooked(slots, in.Date, loc, busy)

	uc.cache.SetJSON(ctx, key, slots)

	return slots, nil
}
