package schedule

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AvailabilityInput struct {
	SalonID        uint
	ProfessionalID uint
	Date           time.Time
	Weekday        int
}

type HourSlot struct {
	Hour      string `json:"hour"`
	Available bool   `json:"available"`
}

const slotDuration = time.Hour

// DefaultTemplate gera os rótulos de hora da janela padrão de
// atendimento, inclusiva nas duas pontas (8..20 => 13 slots).
func DefaultTemplate(openHour, closeHour int) []string {
	if closeHour < openHour {
		openHour, closeHour = closeHour, openHour
	}

	labels := make([]string, 0, closeHour-openHour+1)
	for h := openHour; h <= closeHour; h++ {
		labels = append(labels, time.Date(0, 1, 1, h, 0, 0, 0, time.UTC).Format("15:04"))
	}
	return labels
}

// BuildDay monta a grade do dia: linhas configuradas do salão mescladas
// com o template padrão, ordenadas e sem duplicatas. Sem linha alguma
// para o dia, vale o template inteiro.
func BuildDay(template []string, configured []models.AvailabilitySlot) []HourSlot {
	byHour := make(map[string]bool, len(template)+len(configured))

	for _, h := range template {
		byHour[h] = true
	}
	for _, row := range configured {
		byHour[row.Hour] = row.Available
	}

	hours := make([]string, 0, len(byHour))
	for h := range byHour {
		hours = append(hours, h)
	}
	sort.Strings(hours)

	slots := make([]HourSlot, 0, len(hours))
	for _, h := range hours {
		slots = append(slots, HourSlot{Hour: h, Available: byHour[h]})
	}
	return slots
}

// MarkBooked desmarca os slots consumidos por agendamentos em status
// bloqueante. A grade é consultiva: a checagem que vale é a do commit.
func MarkBooked(
	slots []HourSlot,
	date time.Time,
	loc *time.Location,
	busy []models.Appointment,
) []HourSlot {

	for i, slot := range slots {
		if !slot.Available {
			continue
		}

		hm, err := time.Parse("15:04", slot.Hour)
		if err != nil {
			continue
		}

		slotStart := time.Date(
			date.Year(), date.Month(), date.Day(),
			hm.Hour(), hm.Minute(), 0, 0,
			loc,
		)
		slotEnd := slotStart.Add(slotDuration)

		for _, ap := range busy {
			if !Blocking(Status(ap.Status)) {
				continue
			}
			if Overlaps(slotStart, slotEnd, ap.StartTime, ap.EndTime) {
				slots[i].Available = false
				break
			}
		}
	}

	return slots
}
