package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
	ucAvailability "github.com/BruksfildServices01/salon-scheduler/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

// PublicHandler atende a página de reserva do salão, resolvida por
// slug, sem autenticação.
type PublicHandler struct {
	db        *gorm.DB
	createUC  *ucAppointment.CreateAppointment
	computeUC *ucAvailability.ComputeAvailability
}

func NewPublicHandler(
	db *gorm.DB,
	createUC *ucAppointment.CreateAppointment,
	computeUC *ucAvailability.ComputeAvailability,
) *PublicHandler {
	return &PublicHandler{
		db:        db,
		createUC:  createUC,
		computeUC: computeUC,
	}
}

func (h *PublicHandler) salonBySlug(c *gin.Context) (*models.Salon, bool) {
	var salon models.Salon
	if err := h.db.
		Where("slug = ?", c.Param("slug")).
		First(&salon).Error; err != nil {
		httperr.NotFound(c, "not_found", "Salão não encontrado.")
		return nil, false
	}
	return &salon, true
}

// ======================================================
// LEITURAS PÚBLICAS
// ======================================================

func (h *PublicHandler) GetSalon(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	// perfil enxuto: nada de flags internas na página pública
	httpresp.OK(c, gin.H{
		"name":    salon.Name,
		"slug":    salon.Slug,
		"phone":   salon.Phone,
		"address": salon.Address,
	})
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("salon_id = ? AND active = ? AND deleted_at IS NULL", salon.ID, true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListProfessionals(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var profs []models.Professional
	if err := h.db.
		Where("salon_id = ? AND active = ?", salon.ID, true).
		Order("name ASC").
		Find(&profs).Error; err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar profissionais.")
		return
	}

	httpresp.List(c, profs)
}

// Availability responde a grade do dia para a página de reserva.
// GET /:slug/availability?professional_id=&date=YYYY-MM-DD
func (h *PublicHandler) Availability(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	profID, err := strconv.ParseUint(c.Query("professional_id"), 10, 64)
	if err != nil || profID == 0 {
		httperr.BadRequest(c, "invalid_professional", "Profissional inválido.")
		return
	}

	date, err := parseDateInSalon(salon, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.computeUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		SalonID:        salon.ID,
		ProfessionalID: uint(profID),
		Date:           date,
		Weekday:        int(date.Weekday()),
	})
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao calcular disponibilidade.")
		return
	}

	httpresp.OK(c, gin.H{
		"date":  date.Format("2006-01-02"),
		"slots": slots,
	})
}

// ======================================================
// RESERVA PÚBLICA
// ======================================================

type PublicBookingRequest struct {
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	ClientName     string `json:"client_name" binding:"required"`
	ClientPhone    string `json:"client_phone"`
	ClientEmail    string `json:"client_email"`

	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:mm

	Notes string `json:"notes"`
}

// Book cria a reserva vinda do cliente final. Sem auto-aprovação a
// reserva nasce pendente e aguarda o salão confirmar.
func (h *PublicHandler) Book(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err := parseDateTimeInSalon(salon, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		SalonID:        salon.ID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
		ClientEmail:    req.ClientEmail,
		Start:          start,
		Notes:          req.Notes,
		PublicBooking:  true,
	})
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao criar reserva.")
		return
	}

	// a referência pública permite consultar a reserva sem expor IDs
	httpresp.Created(c, gin.H{
		"public_ref": ap.PublicRef,
		"status":     ap.Status,
		"start_time": ap.StartTime,
		"end_time":   ap.EndTime,
	})
}

// Lookup consulta a reserva pela referência pública.
// GET /:slug/bookings/:ref
func (h *PublicHandler) Lookup(c *gin.Context) {
	salon, ok := h.salonBySlug(c)
	if !ok {
		return
	}

	var ap models.Appointment
	if err := h.db.
		Preload("Service").
		Preload("Professional").
		Where("public_ref = ? AND salon_id = ? AND deleted_at IS NULL", c.Param("ref"), salon.ID).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "not_found", "Reserva não encontrada.")
		return
	}

	httpresp.OK(c, gin.H{
		"public_ref":   ap.PublicRef,
		"status":       ap.Status,
		"start_time":   ap.StartTime,
		"end_time":     ap.EndTime,
		"professional": ap.Professional.Name,
		"service":      ap.Service.Name,
	})
}
