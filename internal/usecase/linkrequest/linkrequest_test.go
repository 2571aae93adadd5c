package linkrequest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type fakeLinkRepo struct {
	domain.Repository

	salons   map[uint]*models.Salon
	requests map[uint]*models.LinkRequest
	linked   map[uint]uint // professionalID -> salonID
	nextID   uint
}

func newLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{
		salons:   map[uint]*models.Salon{1: {ID: 1, Name: "Studio Norte"}},
		requests: map[uint]*models.LinkRequest{},
		linked:   map[uint]uint{},
	}
}

func (f *fakeLinkRepo) GetSalonByID(_ context.Context, salonID uint) (*models.Salon, error) {
	if s, ok := f.salons[salonID]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLinkRepo) HasPendingLinkRequest(_ context.Context, requesterID uint) (bool, error) {
	for _, r := range f.requests {
		if r.RequesterID == requesterID && r.Status == models.LinkRequestPending {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLinkRepo) CreateLinkRequest(_ context.Context, req *models.LinkRequest) error {
	f.nextID++
	req.ID = f.nextID
	stored := *req
	f.requests[req.ID] = &stored
	return nil
}

func (f *fakeLinkRepo) GetLinkRequest(_ context.Context, salonID, requestID uint) (*models.LinkRequest, error) {
	if r, ok := f.requests[requestID]; ok && r.SalonID == salonID {
		cp := *r
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLinkRepo) SaveLinkRequest(_ context.Context, req *models.LinkRequest) error {
	stored := *req
	f.requests[req.ID] = &stored
	return nil
}

func (f *fakeLinkRepo) LinkProfessionalToSalon(_ context.Context, professionalID, salonID uint) error {
	f.linked[professionalID] = salonID
	return nil
}

func (f *fakeLinkRepo) ListPendingLinkRequests(_ context.Context, salonID uint) ([]models.LinkRequest, error) {
	var out []models.LinkRequest
	for _, r := range f.requests {
		if r.SalonID == salonID && r.Status == models.LinkRequestPending {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeLinkRepo) ListLinkRequestsForRequester(_ context.Context, requesterID uint) ([]models.LinkRequest, error) {
	var out []models.LinkRequest
	for _, r := range f.requests {
		if r.RequesterID == requesterID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func linkCode(t *testing.T, err error) string {
	t.Helper()
	code, ok := httperr.BusinessCode(err)
	require.True(t, ok, "esperava erro de negócio, veio: %v", err)
	return code
}

func TestLinkRequestWorkflow(t *testing.T) {
	ctx := context.Background()

	propose := func(repo *fakeLinkRepo, requesterID uint) (*models.LinkRequest, error) {
		uc := NewWorkflow(repo, nil)
		return uc.Propose(ctx, ProposeInput{
			RequesterID: requesterID,
			SalonID:     1,
			Name:        "Marina",
			Email:       "marina@example.com",
		})
	}

	t.Run("proposta nasce pendente com kind padrão", func(t *testing.T) {
		repo := newLinkRepo()

		req, err := propose(repo, 10)
		require.NoError(t, err)
		assert.Equal(t, models.LinkRequestPending, req.Status)
		assert.Equal(t, models.LinkRequestKindEmployee, req.Kind)
	})

	t.Run("uma pendente por solicitante", func(t *testing.T) {
		repo := newLinkRepo()

		_, err := propose(repo, 10)
		require.NoError(t, err)

		_, err = propose(repo, 10)
		assert.Equal(t, "duplicate_pending_request", linkCode(t, err))

		// outro solicitante não é afetado
		_, err = propose(repo, 11)
		assert.NoError(t, err)
	})

	t.Run("salão inexistente", func(t *testing.T) {
		repo := newLinkRepo()
		uc := NewWorkflow(repo, nil)

		_, err := uc.Propose(ctx, ProposeInput{RequesterID: 10, SalonID: 99})
		assert.Equal(t, "not_found", linkCode(t, err))
	})

	t.Run("aceite vincula o profissional ao salão", func(t *testing.T) {
		repo := newLinkRepo()

		req, err := propose(repo, 10)
		require.NoError(t, err)

		uc := NewWorkflow(repo, nil)
		got, err := uc.Accept(ctx, 1, nil, req.ID)
		require.NoError(t, err)

		assert.Equal(t, models.LinkRequestAccepted, got.Status)
		assert.Equal(t, uint(1), repo.linked[10])

		// aceitar de novo falha: já não está pendente
		_, err = uc.Accept(ctx, 1, nil, req.ID)
		assert.Equal(t, "invalid_transition", linkCode(t, err))

		// e o solicitante pode propor de novo
		_, err = propose(repo, 10)
		assert.NoError(t, err)
	})

	t.Run("rejeição não vincula", func(t *testing.T) {
		repo := newLinkRepo()

		req, err := propose(repo, 10)
		require.NoError(t, err)

		uc := NewWorkflow(repo, nil)
		got, err := uc.Reject(ctx, 1, nil, req.ID)
		require.NoError(t, err)

		assert.Equal(t, models.LinkRequestRejected, got.Status)
		assert.Empty(t, repo.linked)
	})

	t.Run("dono só enxerga pendentes do próprio salão", func(t *testing.T) {
		repo := newLinkRepo()
		repo.salons[2] = &models.Salon{ID: 2}

		_, err := propose(repo, 10)
		require.NoError(t, err)

		uc := NewWorkflow(repo, nil)
		_, err = uc.Propose(ctx, ProposeInput{RequesterID: 11, SalonID: 2, Name: "Lia"})
		require.NoError(t, err)

		pendings, err := uc.PendingForOwner(ctx, 1)
		require.NoError(t, err)
		require.Len(t, pendings, 1)
		assert.Equal(t, uint(10), pendings[0].RequesterID)

		mine, err := uc.ForRequester(ctx, 11)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, uint(2), mine[0].SalonID)
	})

	t.Run("solicitação de outro salão é invisível no aceite", func(t *testing.T) {
		repo := newLinkRepo()
		repo.salons[2] = &models.Salon{ID: 2}

		req, err := propose(repo, 10)
		require.NoError(t, err)

		uc := NewWorkflow(repo, nil)
		_, err = uc.Accept(ctx, 2, nil, req.ID)
		assert.Equal(t, "not_found", linkCode(t, err))
	})
}
