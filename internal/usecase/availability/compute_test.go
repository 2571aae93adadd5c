package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// fake mínimo: só o que a grade consome. O resto vem da interface
// embutida e explode se chamado.
type fakeGridRepo struct {
	domain.Repository

	salon *models.Salon
	prof  *models.Professional

	slots    []models.AvailabilitySlot
	busy     []models.Appointment
	upserted []models.AvailabilitySlot
	cleared  bool
}

func (f *fakeGridRepo) GetSalonByID(_ context.Context, salonID uint) (*models.Salon, error) {
	if f.salon != nil && f.salon.ID == salonID {
		return f.salon, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeGridRepo) GetProfessional(_ context.Context, salonID, professionalID uint) (*models.Professional, error) {
	if f.prof != nil && f.prof.ID == professionalID && f.prof.SalonID == salonID {
		return f.prof, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeGridRepo) ListAvailabilitySlotsByDay(_ context.Context, _ uint, weekday int) ([]models.AvailabilitySlot, error) {
	var out []models.AvailabilitySlot
	for _, s := range f.slots {
		if s.Weekday == weekday {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeGridRepo) ListBlockingAppointmentsForDay(_ context.Context, _, _ uint, _, _ time.Time) ([]models.Appointment, error) {
	return f.busy, nil
}

func (f *fakeGridRepo) UpsertAvailabilitySlot(_ context.Context, salonID uint, weekday int, hour string, available bool) error {
	f.upserted = append(f.upserted, models.AvailabilitySlot{
		SalonID: salonID, Weekday: weekday, Hour: hour, Available: available,
	})
	return nil
}

func (f *fakeGridRepo) ListAvailabilitySlots(_ context.Context, _ uint) ([]models.AvailabilitySlot, error) {
	return f.slots, nil
}

func (f *fakeGridRepo) ClearAvailabilitySlots(_ context.Context, _ uint) (int64, error) {
	f.cleared = true
	return int64(len(f.slots)), nil
}

func newGridRepo() *fakeGridRepo {
	return &fakeGridRepo{
		salon: &models.Salon{ID: 1, Timezone: "UTC"},
		prof:  &models.Professional{ID: 2, SalonID: 1, Active: true},
	}
}

func testConfig() *config.Config {
	return &config.Config{OpenHour: 8, CloseHour: 20}
}

func gridCode(t *testing.T, err error) string {
	t.Helper()
	code, ok := httperr.BusinessCode(err)
	require.True(t, ok, "esperava erro de negócio, veio: %v", err)
	return code
}

func TestComputeAvailability(t *testing.T) {
	ctx := context.Background()

	// terça-feira
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	input := func() domain.AvailabilityInput {
		return domain.AvailabilityInput{
			SalonID:        1,
			ProfessionalID: 2,
			Date:           date,
			Weekday:        int(date.Weekday()),
		}
	}

	t.Run("sem grade configurada vale o template padrão", func(t *testing.T) {
		repo := newGridRepo()
		uc := NewComputeAvailability(repo, nil, testConfig())

		slots, err := uc.Execute(ctx, input())
		require.NoError(t, err)

		require.Len(t, slots, 13)
		for _, s := range slots {
			assert.True(t, s.Available, s.Hour)
		}
	})

	t.Run("linha configurada e agendamento ocupam a grade", func(t *testing.T) {
		repo := newGridRepo()
		repo.slots = []models.AvailabilitySlot{
			{Weekday: int(date.Weekday()), Hour: "09:00", Available: false},
		}
		repo.busy = []models.Appointment{
			{
				Status:    "confirmed",
				StartTime: time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
				EndTime:   time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
			},
		}

		uc := NewComputeAvailability(repo, nil, testConfig())

		slots, err := uc.Execute(ctx, input())
		require.NoError(t, err)

		byHour := map[string]bool{}
		for _, s := range slots {
			byHour[s.Hour] = s.Available
		}

		assert.False(t, byHour["09:00"], "desligado na configuração")
		assert.False(t, byHour["14:00"], "ocupado por agendamento")
		assert.True(t, byHour["15:00"], "borda do agendamento continua livre")
	})

	t.Run("dia da semana inconsistente com a data", func(t *testing.T) {
		repo := newGridRepo()
		uc := NewComputeAvailability(repo, nil, testConfig())

		in := input()
		in.Weekday = (in.Weekday + 1) % 7
		_, err := uc.Execute(ctx, in)
		assert.Equal(t, "weekday_mismatch", gridCode(t, err))
	})

	t.Run("profissional de outro salão", func(t *testing.T) {
		repo := newGridRepo()
		repo.prof.SalonID = 42

		uc := NewComputeAvailability(repo, nil, testConfig())

		_, err := uc.Execute(ctx, input())
		assert.Equal(t, "not_found", gridCode(t, err))
	})
}

func TestManageAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("upsert valida dia e hora", func(t *testing.T) {
		repo := newGridRepo()
		uc := NewManageAvailability(repo, nil)

		require.NoError(t, uc.SaveSlot(ctx, 1, 2, "09:00", false))
		require.Len(t, repo.upserted, 1)
		assert.False(t, repo.upserted[0].Available)

		err := uc.SaveSlot(ctx, 1, 7, "09:00", true)
		assert.Equal(t, "invalid_weekday", gridCode(t, err))

		err = uc.SaveSlot(ctx, 1, 2, "9h", true)
		assert.Equal(t, "invalid_hour", gridCode(t, err))
	})

	t.Run("limpar devolve o total removido", func(t *testing.T) {
		repo := newGridRepo()
		repo.slots = []models.AvailabilitySlot{
			{Weekday: 1, Hour: "09:00"},
			{Weekday: 2, Hour: "10:00"},
		}

		uc := NewManageAvailability(repo, nil)

		removed, err := uc.ClearAll(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), removed)
		assert.True(t, repo.cleared)
	})

	t.Run("listagem por dia delega o filtro", func(t *testing.T) {
		repo := newGridRepo()
		repo.slots = []models.AvailabilitySlot{
			{Weekday: 1, Hour: "09:00"},
			{Weekday: 2, Hour: "10:00"},
		}

		uc := NewManageAvailability(repo, nil)

		slots, err := uc.GetByDay(ctx, 1, 2)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, "10:00", slots[0].Hour)

		_, err = uc.GetByDay(ctx, 1, -1)
		assert.Equal(t, "invalid_weekday", gridCode(t, err))
	})
}
