package linkrequest

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ProposeInput struct {
	RequesterID uint
	SalonID     uint

	Name  string
	Phone string
	Email string
	Kind  string
}

// Workflow implementa o fluxo pendente → aceito | rejeitado de vínculo
// profissional/salão. No máximo uma solicitação pendente por
// solicitante.
type Workflow struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewWorkflow(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Workflow {
	return &Workflow{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Workflow) Propose(
	ctx context.Context,
	in ProposeInput,
) (*models.LinkRequest, error) {

	if _, err := uc.repo.GetSalonByID(ctx, in.SalonID); err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	pending, err := uc.repo.HasPendingLinkRequest(ctx, in.RequesterID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, httperr.ErrBusiness("duplicate_pending_request")
	}

	kind := in.Kind
	if kind == "" {
		kind = models.LinkRequestKindEmployee
	}

	req := &models.LinkRequest{
		RequesterID: in.RequesterID,
		SalonID:     in.SalonID,
		Name:        in.Name,
		Phone:       in.Phone,
		Email:       in.Email,
		Kind:        kind,
		Status:      models.LinkRequestPending,
	}

	if err := uc.repo.CreateLinkRequest(ctx, req); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   &in.RequesterID,
		Action:   "link_request_proposed",
		Entity:   "link_request",
		EntityID: &req.ID,
	})

	return req, nil
}

// Accept flipa o status e vincula o perfil do solicitante ao salão.
func (uc *Workflow) Accept(
	ctx context.Context,
	salonID uint,
	actorID *uint,
	requestID uint,
) (*models.LinkRequest, error) {

	req, err := uc.repo.GetLinkRequest(ctx, salonID, requestID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	if req.Status != models.LinkRequestPending {
		return nil, httperr.ErrBusiness("invalid_transition")
	}

	req.Status = models.LinkRequestAccepted
	if err := uc.repo.SaveLinkRequest(ctx, req); err != nil {
		return nil, err
	}

	if err := uc.repo.LinkProfessionalToSalon(ctx, req.RequesterID, salonID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   actorID,
		Action:   "link_request_accepted",
		Entity:   "link_request",
		EntityID: &req.ID,
	})

	return req, nil
}

func (uc *Workflow) Reject(
	ctx context.Context,
	salonID uint,
	actorID *uint,
	requestID uint,
) (*models.LinkRequest, error) {

	req, err := uc.repo.GetLinkRequest(ctx, salonID, requestID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	if req.Status != models.LinkRequestPending {
		return nil, httperr.ErrBusiness("invalid_transition")
	}

	req.Status = models.LinkRequestRejected
	if err := uc.repo.SaveLinkRequest(ctx, req); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   actorID,
		Action:   "link_request_rejected",
		Entity:   "link_request",
		EntityID: &req.ID,
	})

	return req, nil
}

func (uc *Workflow) PendingForOwner(
	ctx context.Context,
	salonID uint,
) ([]models.LinkRequest, error) {
	return uc.repo.ListPendingLinkRequests(ctx, salonID)
}

func (uc *Workflow) ForRequester(
	ctx context.Context,
	requesterID uint,
) ([]models.LinkRequest, error) {
	return uc.repo.ListLinkRequestsForRequester(ctx, requesterID)
}
