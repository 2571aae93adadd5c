package schedule

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Repository é a porta de persistência do núcleo de agenda. Todo método
// de leitura/escrita de entidade escopada recebe o salonID primeiro;
// a implementação é obrigada a filtrar por ele.
type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		salonID uint,
	) (*models.Salon, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		salonID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Professional --------
	GetProfessional(
		ctx context.Context,
		salonID uint,
		professionalID uint,
	) (*models.Professional, error)

	// -------- Customer --------
	GetOrCreateCustomer(
		ctx context.Context,
		salonID uint,
		name string,
		phone string,
		email string,
	) (*models.Customer, error)

	IncrementCustomerVisits(
		ctx context.Context,
		salonID uint,
		customerID uint,
	) error

	// -------- Appointment (create / reschedule com resolução de conflito) --------

	// CreateAppointmentIfFree roda a varredura de sobreposição
	// (agendamentos bloqueantes + bloqueios de agenda) e o insert numa
	// única transação. Falha com time_conflict ou time_block_conflict.
	CreateAppointmentIfFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// SaveAppointmentIfFree é o equivalente para reagendamento: a
	// varredura exclui o próprio ap.ID.
	SaveAppointmentIfFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change / reads) --------
	GetAppointment(
		ctx context.Context,
		salonID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListBlockingAppointmentsForDay(
		ctx context.Context,
		salonID uint,
		professionalID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForProfessional(
		ctx context.Context,
		salonID uint,
		professionalID uint,
		from *time.Time,
		to *time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForCustomer(
		ctx context.Context,
		salonID uint,
		customerID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForDate(
		ctx context.Context,
		salonID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		salonID uint,
		page int,
		pageSize int,
	) ([]models.Appointment, int64, error)

	// -------- TimeBlock --------
	CreateTimeBlock(
		ctx context.Context,
		block *models.TimeBlock,
	) error

	GetTimeBlock(
		ctx context.Context,
		salonID uint,
		blockID uint,
	) (*models.TimeBlock, error)

	SaveTimeBlock(
		ctx context.Context,
		block *models.TimeBlock,
	) error

	DeleteTimeBlock(
		ctx context.Context,
		salonID uint,
		blockID uint,
	) error

	ListTimeBlocks(
		ctx context.Context,
		salonID uint,
		professionalID uint,
		from *time.Time,
		to *time.Time,
	) ([]models.TimeBlock, error)

	// -------- AvailabilitySlot --------
	UpsertAvailabilitySlot(
		ctx context.Context,
		salonID uint,
		weekday int,
		hour string,
		available bool,
	) error

	ListAvailabilitySlots(
		ctx context.Context,
		salonID uint,
	) ([]models.AvailabilitySlot, error)

	ListAvailabilitySlotsByDay(
		ctx context.Context,
		salonID uint,
		weekday int,
	) ([]models.AvailabilitySlot, error)

	ClearAvailabilitySlots(
		ctx context.Context,
		salonID uint,
	) (int64, error)

	// -------- LinkRequest --------
	HasPendingLinkRequest(
		ctx context.Context,
		requesterID uint,
	) (bool, error)

	CreateLinkRequest(
		ctx context.Context,
		req *models.LinkRequest,
	) error

	GetLinkRequest(
		ctx context.Context,
		salonID uint,
		requestID uint,
	) (*models.LinkRequest, error)

	SaveLinkRequest(
		ctx context.Context,
		req *models.LinkRequest,
	) error

	LinkProfessionalToSalon(
		ctx context.Context,
		professionalID uint,
		salonID uint,
	) error

	ListPendingLinkRequests(
		ctx context.Context,
		salonID uint,
	) ([]models.LinkRequest, error)

	ListLinkRequestsForRequester(
		ctx context.Context,
		requesterID uint,
	) ([]models.LinkRequest, error)
}
