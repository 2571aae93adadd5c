package timeblock

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateTimeBlockInput struct {
	SalonID        uint
	ProfessionalID uint
	Start          time.Time
	End            time.Time
	Reason         string
	Kind           string
	ActorID        *uint
}

type UpdateTimeBlockInput struct {
	SalonID uint
	BlockID uint

	NewStart  *time.Time
	NewEnd    *time.Time
	NewReason *string
	NewKind   *string

	ActorID *uint
}

// ======================================================
// USE CASE
// ======================================================

// Registry é o registro de bloqueios de agenda: férias, almoço e
// indisponibilidades avulsas. Bloqueio não tem status — existir já
// torna o intervalo indisponível.
type Registry struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewRegistry(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Cache,
) *Registry {
	return &Registry{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func validKind(kind string) bool {
	switch kind {
	case models.TimeBlockKindUnavailable,
		models.TimeBlockKindVacation,
		models.TimeBlockKindLunch:
		return true
	}
	return false
}

func (uc *Registry) Create(
	ctx context.Context,
	in CreateTimeBlockInput,
) (*models.TimeBlock, error) {

	if err := domain.ValidateInterval(in.Start, in.End); err != nil {
		return nil, err
	}

	kind := in.Kind
	if kind == "" {
		kind = models.TimeBlockKindUnavailable
	}
	if !validKind(kind) {
		return nil, httperr.ErrBusiness("invalid_kind")
	}

	if _, err := uc.repo.GetProfessional(ctx, in.SalonID, in.ProfessionalID); err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	block := &models.TimeBlock{
		SalonID:        in.SalonID,
		ProfessionalID: in.ProfessionalID,
		StartTime:      in.Start,
		EndTime:        in.End,
		Reason:         in.Reason,
		Kind:           kind,
	}

	if err := uc.repo.CreateTimeBlock(ctx, block); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   in.ActorID,
		Action:   "time_block_created",
		Entity:   "time_block",
		EntityID: &block.ID,
	})

	uc.cache.InvalidatePrefix(ctx, cache.AvailabilityPrefix(in.SalonID))

	return block, nil
}

func (uc *Registry) Update(
	ctx context.Context,
	in UpdateTimeBlockInput,
) (*models.TimeBlock, error) {

	block, err := uc.repo.GetTimeBlock(ctx, in.SalonID, in.BlockID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	if in.NewStart != nil {
		block.StartTime = *in.NewStart
	}
	if in.NewEnd != nil {
		block.EndTime = *in.NewEnd
	}
	if in.NewReason != nil {
		block.Reason = *in.NewReason
	}
	if in.NewKind != nil {
		if !validKind(*in.NewKind) {
			return nil, httperr.ErrBusiness("invalid_kind")
		}
		block.Kind = *in.NewKind
	}

	if err := domain.ValidateInterval(block.StartTime, block.EndTime); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveTimeBlock(ctx, block); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   in.ActorID,
		Action:   "time_block_updated",
		Entity:   "time_block",
		EntityID: &block.ID,
	})

	uc.cache.InvalidatePrefix(ctx, cache.AvailabilityPrefix(in.SalonID))

	return block, nil
}

func (uc *Registry) Delete(
	ctx context.Context,
	salonID uint,
	actorID *uint,
	blockID uint,
) error {

	if err := uc.repo.DeleteTimeBlock(ctx, salonID, blockID); err != nil {
		return httperr.ErrBusiness("not_found")
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   actorID,
		Action:   "time_block_deleted",
		Entity:   "time_block",
		EntityID: &blockID,
	})

	uc.cache.InvalidatePrefix(ctx, cache.AvailabilityPrefix(salonID))

	return nil
}

func (uc *Registry) Get(
	ctx context.Context,
	salonID uint,
	blockID uint,
) (*models.TimeBlock, error) {

	block, err := uc.repo.GetTimeBlock(ctx, salonID, blockID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}
	return block, nil
}

// List devolve os bloqueios do profissional; com intervalo informado,
// filtra pelo início do bloqueio.
func (uc *Registry) List(
	ctx context.Context,
	salonID uint,
	professionalID uint,
	from *time.Time,
	to *time.Time,
) ([]models.TimeBlock, error) {
	return uc.repo.ListTimeBlocks(ctx, salonID, professionalID, from, to)
}
