package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var blockingStatuses = []string{
	string(domain.StatusPending),
	string(domain.StatusConfirmed),
}

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *ScheduleGormRepository) GetSalonByID(
	ctx context.Context,
	salonID uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, salonID).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *ScheduleGormRepository) GetService(
	ctx context.Context,
	salonID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", serviceID, salonID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (r *ScheduleGormRepository) GetProfessional(
	ctx context.Context,
	salonID uint,
	professionalID uint,
) (*models.Professional, error) {

	var pro models.Professional
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", professionalID, salonID).
		First(&pro).Error; err != nil {
		return nil, err
	}
	return &pro, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

// GetOrCreateCustomer é idempotente por (salon_id, email); sem e-mail,
// cai para o telefone como chave de deduplicação.
func (r *ScheduleGormRepository) GetOrCreateCustomer(
	ctx context.Context,
	salonID uint,
	name string,
	phone string,
	email string,
) (*models.Customer, error) {

	var customer models.Customer

	q := r.db.WithContext(ctx).Where("salon_id = ?", salonID)
	if email != "" {
		q = q.Where("email = ?", email)
	} else {
		q = q.Where("phone = ?", phone)
	}

	err := q.First(&customer).Error
	if err == nil {
		return &customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	customer = models.Customer{
		SalonID: salonID,
		Name:    name,
		Phone:   phone,
		Email:   email,
	}

	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}

	return &customer, nil
}

func (r *ScheduleGormRepository) IncrementCustomerVisits(
	ctx context.Context,
	salonID uint,
	customerID uint,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ? AND salon_id = ?", customerID, salonID).
		UpdateColumn("visit_count", gorm.Expr("visit_count + 1")).Error
}

// --------------------------------------------------
// Appointment — resolução de conflito no commit
// --------------------------------------------------

// assertBookable roda as duas varreduras de sobreposição meio-aberta
// (agendamentos bloqueantes e bloqueios de agenda) dentro da transação
// do chamador, com lock FOR UPDATE nas linhas candidatas. É a única
// barreira contra double-booking: duas reservas concorrentes para o
// mesmo profissional serializam aqui.
func assertBookable(
	tx *gorm.DB,
	salonID uint,
	professionalID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) error {

	q := tx.Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"salon_id = ? AND professional_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			salonID, professionalID, blockingStatuses, end, start,
		)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var conflicts int64
	if err := q.Count(&conflicts).Error; err != nil {
		return err
	}
	if conflicts > 0 {
		return httperr.ErrBusiness("time_conflict")
	}

	var blocked int64
	if err := tx.Model(&models.TimeBlock{}).
		Where(
			"salon_id = ? AND professional_id = ? AND start_time < ? AND end_time > ?",
			salonID, professionalID, end, start,
		).
		Count(&blocked).Error; err != nil {
		return err
	}
	if blocked > 0 {
		return httperr.ErrBusiness("time_block_conflict")
	}

	return nil
}

func (r *ScheduleGormRepository) CreateAppointmentIfFree(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertBookable(
			tx,
			ap.SalonID,
			ap.ProfessionalID,
			ap.StartTime,
			ap.EndTime,
			0,
		); err != nil {
			return err
		}
		return tx.Create(ap).Error
	})
}

func (r *ScheduleGormRepository) SaveAppointmentIfFree(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertBookable(
			tx,
			ap.SalonID,
			ap.ProfessionalID,
			ap.StartTime,
			ap.EndTime,
			ap.ID,
		); err != nil {
			return err
		}
		return tx.Save(ap).Error
	})
}

// --------------------------------------------------
// Appointment — state change / reads
// --------------------------------------------------

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	salonID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ? AND deleted_at IS NULL", appointmentID, salonID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *ScheduleGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *ScheduleGormRepository) ListBlockingAppointmentsForDay(
	ctx context.Context,
	salonID uint,
	professionalID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time", "status").
		Where(
			"salon_id = ? AND professional_id = ? AND status IN ? AND start_time >= ? AND start_time < ?",
			salonID, professionalID, blockingStatuses, dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *ScheduleGormRepository) ListAppointmentsForProfessional(
	ctx context.Context,
	salonID uint,
	professionalID uint,
	from *time.Time,
	to *time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Where("salon_id = ? AND professional_id = ? AND deleted_at IS NULL", salonID, professionalID)

	if from != nil {
		q = q.Where("start_time >= ?", *from)
	}
	if to != nil {
		q = q.Where("start_time < ?", *to)
	}

	var aps []models.Appointment
	if err := q.Order("start_time ASC").Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *ScheduleGormRepository) ListAppointmentsForCustomer(
	ctx context.Context,
	salonID uint,
	customerID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("salon_id = ? AND customer_id = ? AND deleted_at IS NULL", salonID, customerID).
		Order("start_time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *ScheduleGormRepository) ListAppointmentsForDate(
	ctx context.Context,
	salonID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Preload("Professional").
		Where(
			"salon_id = ? AND start_time >= ? AND start_time < ? AND deleted_at IS NULL",
			salonID, dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *ScheduleGormRepository) ListAppointments(
	ctx context.Context,
	salonID uint,
	page int,
	pageSize int,
) ([]models.Appointment, int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("salon_id = ? AND deleted_at IS NULL", salonID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Where("salon_id = ? AND deleted_at IS NULL", salonID).
		Order("start_time DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&aps).Error; err != nil {
		return nil, 0, err
	}

	return aps, total, nil
}

// --------------------------------------------------
// TimeBlock
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateTimeBlock(
	ctx context.Context,
	block *models.TimeBlock,
) error {
	return r.db.WithContext(ctx).Create(block).Error
}

func (r *ScheduleGormRepository) GetTimeBlock(
	ctx context.Context,
	salonID uint,
	blockID uint,
) (*models.TimeBlock, error) {

	var block models.TimeBlock
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", blockID, salonID).
		First(&block).Error; err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *ScheduleGormRepository) SaveTimeBlock(
	ctx context.Context,
	block *models.TimeBlock,
) error {
	return r.db.WithContext(ctx).Save(block).Error
}

func (r *ScheduleGormRepository) DeleteTimeBlock(
	ctx context.Context,
	salonID uint,
	blockID uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", blockID, salonID).
		Delete(&models.TimeBlock{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ScheduleGormRepository) ListTimeBlocks(
	ctx context.Context,
	salonID uint,
	professionalID uint,
	from *time.Time,
	to *time.Time,
) ([]models.TimeBlock, error) {

	q := r.db.WithContext(ctx).
		Where("salon_id = ? AND professional_id = ?", salonID, professionalID)

	if from != nil {
		q = q.Where("start_time >= ?", *from)
	}
	if to != nil {
		q = q.Where("start_time < ?", *to)
	}

	var blocks []models.TimeBlock
	if err := q.Order("start_time ASC").Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// --------------------------------------------------
// AvailabilitySlot
// --------------------------------------------------

func (r *ScheduleGormRepository) UpsertAvailabilitySlot(
	ctx context.Context,
	salonID uint,
	weekday int,
	hour string,
	available bool,
) error {

	slot := models.AvailabilitySlot{
		SalonID:   salonID,
		Weekday:   weekday,
		Hour:      hour,
		Available: available,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "salon_id"}, {Name: "weekday"}, {Name: "hour"}},
			DoUpdates: clause.Assignments(map[string]any{"available": available}),
		}).
		Create(&slot).Error
}

func (r *ScheduleGormRepository) ListAvailabilitySlots(
	ctx context.Context,
	salonID uint,
) ([]models.AvailabilitySlot, error) {

	var slots []models.AvailabilitySlot
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("weekday ASC, hour ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *ScheduleGormRepository) ListAvailabilitySlotsByDay(
	ctx context.Context,
	salonID uint,
	weekday int,
) ([]models.AvailabilitySlot, error) {

	var slots []models.AvailabilitySlot
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND weekday = ?", salonID, weekday).
		Order("hour ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *ScheduleGormRepository) ClearAvailabilitySlots(
	ctx context.Context,
	salonID uint,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Delete(&models.AvailabilitySlot{})

	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// LinkRequest
// --------------------------------------------------

func (r *ScheduleGormRepository) HasPendingLinkRequest(
	ctx context.Context,
	requesterID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.LinkRequest{}).
		Where("requester_id = ? AND status = ?", requesterID, models.LinkRequestPending).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ScheduleGormRepository) CreateLinkRequest(
	ctx context.Context,
	req *models.LinkRequest,
) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *ScheduleGormRepository) GetLinkRequest(
	ctx context.Context,
	salonID uint,
	requestID uint,
) (*models.LinkRequest, error) {

	var req models.LinkRequest
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", requestID, salonID).
		First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *ScheduleGormRepository) SaveLinkRequest(
	ctx context.Context,
	req *models.LinkRequest,
) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *ScheduleGormRepository) LinkProfessionalToSalon(
	ctx context.Context,
	professionalID uint,
	salonID uint,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Professional{}).
		Where("id = ?", professionalID).
		Update("salon_id", salonID).Error
}

func (r *ScheduleGormRepository) ListPendingLinkRequests(
	ctx context.Context,
	salonID uint,
) ([]models.LinkRequest, error) {

	var reqs []models.LinkRequest
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND status = ?", salonID, models.LinkRequestPending).
		Order("created_at ASC").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *ScheduleGormRepository) ListLinkRequestsForRequester(
	ctx context.Context,
	requesterID uint,
) ([]models.LinkRequest, error) {

	var reqs []models.LinkRequest
	if err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
