package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// fluxo completo da recepção: reservar, colidir, cancelar, reservar de novo
func TestBookingFlow(t *testing.T) {
	ctx := context.Background()

	repo := newFakeRepo()
	salon := repo.seedSalon(false)
	prof := repo.seedProfessional(salon.ID)
	svc := repo.seedService(salon.ID, 30, 40)

	create := NewCreateAppointment(repo, nil, nil)
	updateStatus := NewUpdateAppointmentStatus(repo, nil, nil)

	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	book := func(hour, min int) (*models.Appointment, error) {
		return create.Execute(ctx, CreateAppointmentInput{
			SalonID:        salon.ID,
			ProfessionalID: prof.ID,
			ServiceID:      svc.ID,
			ClientName:     "Paula",
			ClientEmail:    "paula@example.com",
			Start:          monday.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute),
		})
	}

	// [10:00, 10:30) entra pendente
	first, err := book(10, 0)
	require.NoError(t, err)
	assert.Equal(t, "pending", first.Status)

	// [10:15, 10:45) colide
	_, err = book(10, 15)
	assert.Equal(t, "time_conflict", businessCode(t, err))

	// cancelado o primeiro, o mesmo horário entra
	_, err = updateStatus.Execute(ctx, salon.ID, nil, first.ID, "cancelled")
	require.NoError(t, err)

	second, err := book(10, 15)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

// bloqueio de almoço barra a reserva mesmo sem nenhum agendamento
func TestLunchBlockFlow(t *testing.T) {
	ctx := context.Background()

	repo := newFakeRepo()
	salon := repo.seedSalon(false)
	prof := repo.seedProfessional(salon.ID)
	svc := repo.seedService(salon.ID, 30, 40)

	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	repo.blocks = append(repo.blocks, &models.TimeBlock{
		SalonID:        salon.ID,
		ProfessionalID: prof.ID,
		StartTime:      monday.Add(12 * time.Hour),
		EndTime:        monday.Add(13 * time.Hour),
		Kind:           models.TimeBlockKindLunch,
		Reason:         "almoço",
	})

	create := NewCreateAppointment(repo, nil, nil)

	_, err := create.Execute(ctx, CreateAppointmentInput{
		SalonID:        salon.ID,
		ProfessionalID: prof.ID,
		ServiceID:      svc.ID,
		ClientName:     "Paula",
		Start:          monday.Add(12*time.Hour + 30*time.Minute),
	})
	assert.Equal(t, "time_block_conflict", businessCode(t, err))

	// logo depois do bloqueio, livre
	_, err = create.Execute(ctx, CreateAppointmentInput{
		SalonID:        salon.ID,
		ProfessionalID: prof.ID,
		ServiceID:      svc.ID,
		ClientName:     "Paula",
		Start:          monday.Add(13 * time.Hour),
	})
	assert.NoError(t, err)
}
