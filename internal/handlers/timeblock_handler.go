package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucTimeblock "github.com/BruksfildServices01/salon-scheduler/internal/usecase/timeblock"
)

type TimeBlockHandler struct {
	registry *ucTimeblock.Registry
}

func NewTimeBlockHandler(registry *ucTimeblock.Registry) *TimeBlockHandler {
	return &TimeBlockHandler{registry: registry}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateTimeBlockRequest struct {
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	StartTime      string `json:"start_time" binding:"required"` // RFC3339
	EndTime        string `json:"end_time" binding:"required"`   // RFC3339
	Reason         string `json:"reason"`
	Kind           string `json:"kind"`
}

type UpdateTimeBlockRequest struct {
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Reason    *string `json:"reason,omitempty"`
	Kind      *string `json:"kind,omitempty"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *TimeBlockHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateTimeBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err := parseInstant(req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_time", "Início inválido.")
		return
	}
	end, err := parseInstant(req.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_end_time", "Fim inválido.")
		return
	}

	block, err := h.registry.Create(c.Request.Context(), ucTimeblock.CreateTimeBlockInput{
		SalonID:        salonID,
		ProfessionalID: req.ProfessionalID,
		Start:          start,
		End:            end,
		Reason:         req.Reason,
		Kind:           req.Kind,
		ActorID:        &userID,
	})
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao criar bloqueio.")
		return
	}

	httpresp.Created(c, block)
}

func (h *TimeBlockHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateTimeBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := ucTimeblock.UpdateTimeBlockInput{
		SalonID:   salonID,
		BlockID:   id,
		NewReason: req.Reason,
		NewKind:   req.Kind,
		ActorID:   &userID,
	}

	if req.StartTime != nil {
		start, err := parseInstant(*req.StartTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_start_time", "Início inválido.")
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

	block, err := h.registry.Update(c.Request.Context(), in)
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao atualizar bloqueio.")
		return
	}

	httpresp.OK(c, block)
}

func (h *TimeBlockHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.registry.Delete(c.Request.Context(), salonID, &userID, id); err != nil {
		httperr.FromBusiness(c, err, "Erro ao remover bloqueio.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}

func (h *TimeBlockHandler) GetByID(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	block, err := h.registry.Get(c.Request.Context(), salonID, id)
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao buscar bloqueio.")
		return
	}

	httpresp.OK(c, block)
}

// List filtra por profissional e, opcionalmente, por período.
// GET ...?professional_id=&from=&to=
func (h *TimeBlockHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	profID, err := strconv.ParseUint(c.Query("professional_id"), 10, 64)
	if err != nil || profID == 0 {
		httperr.BadRequest(c, "invalid_professional", "Profissional inválido.")
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

	blocks, err := h.registry.List(c.Request.Context(), salonID, uint(profID), from, to)
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao listar bloqueios.")
		return
	}

	httpresp.List(c, blocks)
}
