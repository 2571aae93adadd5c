package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucLinkrequest "github.com/BruksfildServices01/salon-scheduler/internal/usecase/linkrequest"
)

type LinkRequestHandler struct {
	workflow *ucLinkrequest.Workflow
}

func NewLinkRequestHandler(workflow *ucLinkrequest.Workflow) *LinkRequestHandler {
	return &LinkRequestHandler{workflow: workflow}
}

type ProposeLinkRequest struct {
	SalonID uint   `json:"salon_id" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Kind    string `json:"kind"`
}

// Propose é chamado pelo profissional ainda sem vínculo; o requester é
// sempre o usuário do token, nunca o corpo da requisição.
func (h *LinkRequestHandler) Propose(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ProposeLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	lr, err := h.workflow.Propose(c.Request.Context(), ucLinkrequest.ProposeInput{
		RequesterID: userID,
		SalonID:     req.SalonID,
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Kind:        req.Kind,
	})
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao solicitar vínculo.")
		return
	}

	httpresp.Created(c, lr)
}

func (h *LinkRequestHandler) Accept(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	lr, err := h.workflow.Accept(c.Request.Context(), salonID, &userID, id)
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao aceitar solicitação.")
		return
	}

	httpresp.OK(c, lr)
}

func (h *LinkRequestHandler) Reject(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	lr, err := h.workflow.Reject(c.Request.Context(), salonID, &userID, id)
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao rejeitar solicitação.")
		return
	}

	httpresp.OK(c, lr)
}

func (h *LinkRequestHandler) Pending(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	lrs, err := h.workflow.PendingForOwner(c.Request.Context(), salonID)
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao listar solicitações.")
		return
	}

	httpresp.List(c, lrs)
}

// Mine lista as solicitações feitas pelo próprio usuário do token.
func (h *LinkRequestHandler) Mine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	lrs, err := h.workflow.ForRequester(c.Request.Context(), userID)
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao listar solicitações.")
		return
	}

	httpresp.List(c, lrs)
}
