package availability

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ManageAvailability cobre o CRUD da grade configurada: upsert por
// (dia, hora), listagem e limpeza total (volta ao template padrão).
type ManageAvailability struct {
	repo  domain.Repository
	cache *cache.Cache
}

func NewManageAvailability(
	repo domain.Repository,
	c *cache.Cache,
) *ManageAvailability {
	return &ManageAvailability{
		repo:  repo,
		cache: c,
	}
}

func (uc *ManageAvailability) SaveSlot(
	ctx context.Context,
	salonID uint,
	weekday int,
	hour string,
	available bool,
) error {

	if weekday < 0 || weekday > 6 {
		return httperr.ErrBusiness("invalid_weekday")
	}
	if _, err := time.Parse("15:04", hour); err != nil {
		return httperr.ErrBusiness("invalid_hour")
	}

	if err := uc.repo.UpsertAvailabilitySlot(ctx, salonID, weekday, hour, available); err != nil {
		return err
	}

	uc.cache.InvalidatePrefix(ctx, cache.AvailabilityPrefix(salonID))
	return nil
}

func (uc *ManageAvailability) GetAll(
	ctx context.Context,
	salonID uint,
) ([]models.AvailabilitySlot, error) {
	return uc.repo.ListAvailabilitySlots(ctx, salonID)
}

func (uc *ManageAvailability) GetByDay(
	ctx context.Context,
	salonID uint,
	weekday int,
) ([]models.AvailabilitySlot, error) {

	if weekday < 0 || weekday > 6 {
		return nil, httperr.ErrBusiness("invalid_weekday")
	}
	return uc.repo.ListAvailabilitySlotsByDay(ctx, salonID, weekday)
}

// ClearAll remove todas as linhas do salão; o dia volta a responder
// pelo template padrão.
func (uc *ManageAvailability) ClearAll(
	ctx context.Context,
	salonID uint,
) (int64, error) {

	removed, err := uc.repo.ClearAvailabilitySlots(ctx, salonID)
	if err != nil {
		return 0, err
	}

	uc.cache.InvalidatePrefix(ctx, cache.AvailabilityPrefix(salonID))
	return removed, nil
}
