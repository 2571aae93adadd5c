package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucAvailability "github.com/BruksfildServices01/salon-scheduler/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	db        *gorm.DB
	manageUC  *ucAvailability.ManageAvailability
	computeUC *ucAvailability.ComputeAvailability
}

func NewAvailabilityHandler(
	db *gorm.DB,
	manageUC *ucAvailability.ManageAvailability,
	computeUC *ucAvailability.ComputeAvailability,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		db:        db,
		manageUC:  manageUC,
		computeUC: computeUC,
	}
}

// ======================================================
// GRADE CONFIGURADA
// ======================================================

type SaveSlotRequest struct {
	Weekday   int    `json:"weekday"`
	Hour      string `json:"hour" binding:"required"` // HH:mm
	Available *bool  `json:"available" binding:"required"`
}

func (h *AvailabilityHandler) SaveSlot(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req SaveSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	err := h.manageUC.SaveSlot(
		c.Request.Context(),
		salonID,
		req.Weekday,
		req.Hour,
		*req.Available,
	)
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao salvar horário.")
		return
	}

	httpresp.OK(c, gin.H{"saved": true})
}

func (h *AvailabilityHandler) GetAll(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	slots, err := h.manageUC.GetAll(c.Request.Context(), salonID)
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao listar grade.")
		return
	}

	httpresp.List(c, slots)
}

func (h *AvailabilityHandler) GetByDay(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	weekday, err := strconv.Atoi(c.Param("weekday"))
	if err != nil {
		httperr.BadRequest(c, "invalid_weekday", "Dia da semana inválido.")
		return
	}

	slots, err := h.manageUC.GetByDay(c.Request.Context(), salonID, weekday)
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao listar grade.")
		return
	}

	httpresp.List(c, slots)
}

func (h *AvailabilityHandler) ClearAll(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	removed, err := h.manageUC.ClearAll(c.Request.Context(), salonID)
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao limpar grade.")
		return
	}

	httpresp.OK(c, gin.H{"removed": removed})
}

// ======================================================
// GRADE DO DIA (CONSULTIVA)
// ======================================================

// Compute responde a grade de um profissional para uma data.
// GET ...?professional_id=&date=YYYY-MM-DD
func (h *AvailabilityHandler) Compute(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	profID, err := strconv.ParseUint(c.Query("professional_id"), 10, 64)
	if err != nil || profID == 0 {
		httperr.BadRequest(c, "invalid_professional", "Profissional inválido.")
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.Internal(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	date, err := parseDateInSalon(&salon, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.computeUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		SalonID:        salonID,
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
