package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bellestudio/salon-agenda/internal/cache"
	"github.com/bellestudio/salon-agenda/internal/httperr"
	"github.com/bellestudio/salon-agenda/internal/httpresp"
	"github.com/bellestudio/salon-agenda/internal/models"
)

const professionalsCacheKey = "catalog:professionals"

type ProfessionalHandler struct {
	db    *gorm.DB
	cache *cache.CatalogCache
}

func NewProfessionalHandler(db *gorm.DB, cc *cache.CatalogCache) *ProfessionalHandler {
	return &ProfessionalHandler{db: db, cache: cc}
}

type ProfessionalRequest struct {
	Name        string               `json:"name" binding:"required"`
	Phone       string               `json:"phone"`
	Specialties []models.ServiceType `json:"specialties"`
}

func (h *ProfessionalHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var pros []models.Professional
	if h.cache.Get(ctx, professionalsCacheKey, &pros) {
		httpresp.List(c, pros)
		return
	}

	if err := h.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&pros).Error; err != nil {
		httperr.Internal(c, "failed_to_list_professionals", "Erro ao listar profissionais.")
		return
	}

	h.cache.Set(ctx, professionalsCacheKey, pros)
	httpresp.List(c, pros)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	var req ProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	pro := models.Professional{
		Name:        req.Name,
		Phone:       req.Phone,
		Specialties: models.Specialties(req.Specialties),
		Active:      true,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_create_professional", "Erro ao criar profissional.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), professionalsCacheKey)
	httpresp.Created(c, pro)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req ProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var pro models.Professional
	if err := h.db.WithContext(c.Request.Context()).First(&pro, id).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrada.")
		return
	}

	pro.Name = req.Name
	pro.Phone = req.Phone
	pro.Specialties = models.Specialties(req.Specialties)

	if err := h.db.WithContext(c.Request.Context()).Save(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_update_professional", "Erro ao atualizar profissional.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), professionalsCacheKey)
	httpresp.OK(c, pro)
}
