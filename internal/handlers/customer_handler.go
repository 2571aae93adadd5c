package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

type CustomerHandler struct {
	db   *gorm.DB
	repo domain.Repository
}

func NewCustomerHandler(db *gorm.DB, repo domain.Repository) *CustomerHandler {
	return &CustomerHandler{db: db, repo: repo}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Tags  string `json:"tags"`
}

type UpdateCustomerRequest struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Email  *string `json:"email,omitempty"`
	Tags   *string `json:"tags,omitempty"`
	Rating *int    `json:"rating,omitempty"`
}

// ======================================================
// HANDLERS
// ======================================================

// Create reaproveita o mesmo caminho idempotente do agendamento:
// cliente já existente com o mesmo e-mail (ou telefone) é reutilizado.
func (h *CustomerHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Email != "" && !validators.IsEmailFormatValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
		return
	}

	customer, err := h.repo.GetOrCreateCustomer(
		c.Request.Context(),
		salonID,
		strings.TrimSpace(req.Name),
		req.Phone,
		req.Email,
	)
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao criar cliente.")
		return
	}

	if req.Tags != "" {
		customer.Tags = req.Tags
		if err := h.db.Save(customer).Error; err != nil {
			httperr.Internal(c, "save_failed", "Erro ao salvar cliente.")
			return
		}
	}

	httpresp.Created(c, customer)
}

// List aceita busca livre por nome/telefone/e-mail e filtro por tag.
func (h *CustomerHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	q := h.db.Where("salon_id = ?", salonID)

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, "%"+search+"%", like,
		)
	}

	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		q = q.Where("tags LIKE ?", "%"+tag+"%")
	}

	var customers []models.Customer
	if err := q.Order("name ASC").Find(&customers).Error; err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, customers)
}

func (h *CustomerHandler) GetByID(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var customer models.Customer
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&customer).Error; err != nil {
		httperr.NotFound(c, "not_found", "Cliente não encontrado.")
		return
	}

	httpresp.OK(c, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var customer models.Customer
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&customer).Error; err != nil {
		httperr.NotFound(c, "not_found", "Cliente não encontrado.")
		return
	}

	if req.Name != nil {
		customer.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Email != nil {
		if *req.Email != "" && !validators.IsEmailFormatValid(*req.Email) {
			httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
			return
		}
		customer.Email = *req.Email
	}
	if req.Tags != nil {
		customer.Tags = *req.Tags
	}
	if req.Rating != nil {
		if *req.Rating < 0 || *req.Rating > 5 {
			httperr.BadRequest(c, "invalid_rating", "Avaliação deve estar entre 0 e 5.")
			return
		}
		customer.Rating = *req.Rating
	}

	if err := h.db.Save(&customer).Error; err != nil {
		httperr.Internal(c, "save_failed", "Erro ao salvar cliente.")
		return
	}

	httpresp.OK(c, customer)
}
