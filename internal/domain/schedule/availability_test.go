package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestDefaultTemplate(t *testing.T) {
	labels := DefaultTemplate(8, 20)

	require.Len(t, labels, 13)
	assert.Equal(t, "08:00", labels[0])
	assert.Equal(t, "20:00", labels[12])
}

func TestDefaultTemplateInvertedWindow(t *testing.T) {
	// janela invertida é normalizada em vez de gerar grade vazia
	labels := DefaultTemplate(20, 8)
	require.Len(t, labels, 13)
	assert.Equal(t, "08:00", labels[0])
}

func TestBuildDay(t *testing.T) {
	template := DefaultTemplate(8, 10) // 08:00, 09:00, 10:00

	t.Run("sem linha configurada vale o template inteiro", func(t *testing.T) {
		slots := BuildDay(template, nil)

		require.Len(t, slots, 3)
		for _, s := range slots {
			assert.True(t, s.Available, s.Hour)
		}
	})

	t.Run("linha configurada sobrescreve o template", func(t *testing.T) {
		configured := []models.AvailabilitySlot{
			{Hour: "09:00", Available: false},
			{Hour: "12:00", Available: true}, // fora do template
		}

		slots := BuildDay(template, configured)
		require.Len(t, slots, 4)

		byHour := map[string]bool{}
		for _, s := range slots {
			byHour[s.Hour] = s.Available
		}

		assert.True(t, byHour["08:00"])
		assert.False(t, byHour["09:00"])
		assert.True(t, byHour["10:00"])
		assert.True(t, byHour["12:00"])
	})

	t.Run("saída ordenada por hora", func(t *testing.T) {
		slots := BuildDay(template, []models.AvailabilitySlot{{Hour: "07:00", Available: true}})

		require.NotEmpty(t, slots)
		assert.Equal(t, "07:00", slots[0].Hour)
	})
}

func TestMarkBooked(t *testing.T) {
	loc := time.UTC
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)

	slots := []HourSlot{
		{Hour: "09:00", Available: true},
		{Hour: "10:00", Available: true},
		{Hour: "11:00", Available: true},
	}

	busy := []models.Appointment{
		{
			Status:    string(StatusConfirmed),
			StartTime: time.Date(2026, 3, 10, 10, 0, 0, 0, loc),
			EndTime:   time.Date(2026, 3, 10, 11, 0, 0, 0, loc),
		},
		{
			// cancelado não ocupa a grade
			Status:    string(StatusCancelled),
			StartTime: time.Date(2026, 3, 10, 9, 0, 0, 0, loc),
			EndTime:   time.Date(2026, 3, 10, 10, 0, 0, 0, loc),
		},
	}

	got := MarkBooked(slots, date, loc, busy)

	assert.True(t, got[0].Available, "09:00 livre: agendamento cancelado não bloqueia")
	assert.False(t, got[1].Available, "10:00 ocupado")
	assert.True(t, got[2].Available, "11:00 livre: borda não conflita")
}

func TestMarkBookedPartialOverlap(t *testing.T) {
	loc := time.UTC
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)

	slots := []HourSlot{
		{Hour: "09:00", Available: true},
		{Hour: "10:00", Available: true},
	}

	// 09:30–10:30 consome os dois slots
	busy := []models.Appointment{
		{
			Status:    string(StatusPending),
			StartTime: time.Date(2026, 3, 10, 9, 30, 0, 0, loc),
			EndTime:   time.Date(2026, 3, 10, 10, 30, 0, 0, loc),
		},
	}

	got := MarkBooked(slots, date, loc, busy)

	assert.False(t, got[0].Available)
	assert.False(t, got[1].Available)
}
