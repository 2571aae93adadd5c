package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type AppointmentListItem struct {
	ID               uint      `json:"id"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	Status           string    `json:"status"`
	CheckedIn        bool      `json:"checked_in"`
	ClientName       string    `json:"client_name"`
	ServiceName      string    `json:"service_name"`
	ProfessionalName string    `json:"professional_name"`
	Value            float64   `json:"value"`
}

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(repo domain.Repository) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{repo: repo}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	salonID uint,
	date time.Time,
) ([]AppointmentListItem, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	loc := timezone.Location(salon.Timezone)
	dayStart, dayEnd := timezone.DayBounds(date, loc)

	appointments, err := uc.repo.ListAppointmentsForDate(ctx, salonID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	out := make([]AppointmentListItem, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, AppointmentListItem{
			ID:               ap.ID,
			StartTime:        ap.StartTime,
			EndTime:          ap.EndTime,
			Status:           ap.Status,
			CheckedIn:        ap.CheckedIn,
			ClientName:       ap.ClientName,
			ServiceName:      ap.Service.Name,
			ProfessionalName: ap.Professional.Name,
			Value:            ap.Value,
		})
	}

	return out, nil
}
