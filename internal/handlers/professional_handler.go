package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/media"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ProfessionalHandler struct {
	db      *gorm.DB
	avatars *media.AvatarStore
}

func NewProfessionalHandler(db *gorm.DB, avatars *media.AvatarStore) *ProfessionalHandler {
	return &ProfessionalHandler{db: db, avatars: avatars}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateProfessionalRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type UpdateProfessionalRequest struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Email  *string `json:"email,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ProfessionalHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	prof := models.Professional{
		SalonID: salonID,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Active:  true,
	}

	if err := h.db.Create(&prof).Error; err != nil {
		httperr.Internal(c, "create_failed", "Erro ao criar profissional.")
		return
	}

	httpresp.Created(c, prof)
}

func (h *ProfessionalHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	q := h.db.Where("salon_id = ?", salonID)
	if c.Query("active") == "true" {
		q = q.Where("active = ?", true)
	}

	var profs []models.Professional
	if err := q.Order("name ASC").Find(&profs).Error; err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar profissionais.")
		return
	}

	httpresp.List(c, profs)
}

func (h *ProfessionalHandler) GetByID(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var prof models.Professional
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&prof).Error; err != nil {
		httperr.NotFound(c, "not_found", "Profissional não encontrado.")
		return
	}

	httpresp.OK(c, prof)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var prof models.Professional
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&prof).Error; err != nil {
		httperr.NotFound(c, "not_found", "Profissional não encontrado.")
		return
	}

	if req.Name != nil {
		prof.Name = *req.Name
	}
	if req.Phone != nil {
		prof.Phone = *req.Phone
	}
	if req.Email != nil {
		prof.Email = *req.Email
	}
	if req.Active != nil {
		prof.Active = *req.Active
	}

	if err := h.db.Save(&prof).Error; err != nil {
		httperr.Internal(c, "save_failed", "Erro ao salvar profissional.")
		return
	}

	httpresp.OK(c, prof)
}

// Deactivate tira o profissional da agenda sem apagar o histórico.
func (h *ProfessionalHandler) Deactivate(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := h.db.Model(&models.Professional{}).
		Where("id = ? AND salon_id = ?", id, salonID).
		Update("active", false)
	if result.Error != nil {
		httperr.Internal(c, "save_failed", "Erro ao desativar profissional.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "not_found", "Profissional não encontrado.")
		return
	}

	httpresp.OK(c, gin.H{"deactivated": true})
}

// UploadAvatar recebe multipart "avatar", normaliza e publica a imagem.
func (h *ProfessionalHandler) UploadAvatar(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var prof models.Professional
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&prof).Error; err != nil {
		httperr.NotFound(c, "not_found", "Profissional não encontrado.")
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Arquivo obrigatório.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "read_failed", "Erro ao ler arquivo.")
		return
	}
	defer file.Close()

	url, err := h.avatars.Upload(c.Request.Context(), prof.ID, file)
	if err != nil {
		httperr.FromBusiness(c, err, "Erro ao enviar avatar.")
		return
	}

	prof.AvatarURL = url
	if err := h.db.Save(&prof).Error; err != nil {
		httperr.Internal(c, "save_failed", "Erro ao salvar profissional.")
		return
	}

	httpresp.OK(c, gin.H{"avatar_url": url})
}
