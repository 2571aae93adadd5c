package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db *gorm.DB

	createUC       *ucAppointment.CreateAppointment
	rescheduleUC   *ucAppointment.RescheduleAppointment
	updateStatusUC *ucAppointment.UpdateAppointmentStatus
	checkInUC      *ucAppointment.CheckInAppointment
	softDeleteUC   *ucAppointment.SoftDeleteAppointment

	listByDateUC   *ucAppointment.ListAppointmentsByDate
	listForProUC   *ucAppointment.ListAppointmentsForProfessional
	listForCustUC  *ucAppointment.ListAppointmentsForCustomer
	listAllUC      *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	db *gorm.DB,
	createUC *ucAppointment.CreateAppointment,
	rescheduleUC *ucAppointment.RescheduleAppointment,
	updateStatusUC *ucAppointment.UpdateAppointmentStatus,
	checkInUC *ucAppointment.CheckInAppointment,
	softDeleteUC *ucAppointment.SoftDeleteAppointment,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	listForProUC *ucAppointment.ListAppointmentsForProfessional,
	listForCustUC *ucAppointment.ListAppointmentsForCustomer,
	listAllUC *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:             db,
		createUC:       createUC,
		rescheduleUC:   rescheduleUC,
		updateStatusUC: updateStatusUC,
		checkInUC:      checkInUC,
		softDeleteUC:   softDeleteUC,
		listByDateUC:   listByDateUC,
		listForProUC:   listForProUC,
		listForCustUC:  listForCustUC,
		listAllUC:      listAllUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ClientName     string `json:"client_name" binding:"required"`
	ClientPhone    string `json:"client_phone"`
	ClientEmail    string `json:"client_email"`
	ServiceID      uint   `json:"service_id" binding:"required"`

	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:mm

	Value float64 `json:"value"`
	Notes string  `json:"notes"`
}

type RescheduleAppointmentRequest struct {
	Date           *string  `json:"date,omitempty"`
	Time           *string  `json:"time,omitempty"`
	EndTime        *string  `json:"end_time,omitempty"` // RFC3339
	ProfessionalID *uint    `json:"professional_id,omitempty"`
	ServiceID      *uint    `json:"service_id,omitempty"`
	Value          *float64 `json:"value,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.Internal(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	start, err := parseDateTimeInSalon(&salon, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		SalonID:        salonID,
		ProfessionalID: req.ProfessionalID,
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
		ClientEmail:    req.ClientEmail,
		ServiceID:      req.ServiceID,
		Start:          start,
		Value:          req.Value,
		Notes:          req.Notes,
		ActorID:        &userID,
	})
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao criar agendamento.")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := ucAppointment.RescheduleAppointmentInput{
		SalonID:           salonID,
		AppointmentID:     id,
		NewProfessionalID: req.ProfessionalID,
		NewServiceID:      req.ServiceID,
		NewValue:          req.Value,
		NewNotes:          req.Notes,
		ActorID:           &userID,
	}

	if req.Date != nil && req.Time != nil {
		var salon models.Salon
		if err := h.db.First(&salon, salonID).Error; err != nil {
			httperr.Internal(c, "salon_not_found", "Salão não encontrado.")
			return
		}

		start, err := parseDateTimeInSalon(&salon, *req.Date, *req.Time)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
			return
		}
		in.NewStart = &start
	}

	if req.EndTime != nil {
		end, err := parseInstant(*req.EndTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_end_time", "Fim inválido.")
			return
		}
		in.NewEnd = &end
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao remarcar agendamento.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STATUS / CHECK-IN / DELETE
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.updateStatusUC.Execute(c.Request.Context(), salonID, &userID, id, req.Status)
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao mudar status.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) CheckIn(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ap, err := h.checkInUC.Execute(c.Request.Context(), salonID, &userID, id)
	if err != nil {
		httperr.FromBusiness(c, err, "Erro no check-in.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) SoftDelete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ap, err := h.softDeleteUC.Execute(c.Request.Context(), salonID, &userID, id)
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao excluir agendamento.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// READS
// ======================================================

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var ap models.Appointment
	if err := h.db.
		Preload("Customer").
		Preload("Service").
		Preload("Professional").
		Where("id = ? AND salon_id = ? AND deleted_at IS NULL", id, salonID).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "not_found", "Agendamento não encontrado.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	items, err := h.listByDateUC.Execute(c.Request.Context(), salonID, date)
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) ListAll(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	aps, total, err := h.listAllUC.Execute(c.Request.Context(), salonID, page, pageSize)
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao listar agendamentos.")
		return
	}

	httpresp.Page(c, aps, total, page, pageSize)
}

func (h *AppointmentHandler) ListByProfessional(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		t, err := parseInstant(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "Início do período inválido.")
			return
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := parseInstant(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "Fim do período inválido.")
			return
		}
		to = &t
	}

	aps, err := h.listForProUC.Execute(c.Request.Context(), salonID, id, from, to)
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListByCustomer(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	aps, err := h.listForCustUC.Execute(c.Request.Context(), salonID, id)
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, aps)
}
