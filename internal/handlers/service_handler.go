package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bellestudio/salon-agenda/internal/cache"
	"github.com/bellestudio/salon-agenda/internal/httperr"
	"github.com/bellestudio/salon-agenda/internal/httpresp"
	"github.com/bellestudio/salon-agenda/internal/models"
)

const servicesCacheKey = "catalog:services"

type ServiceHandler struct {
	db    *gorm.DB
	cache *cache.CatalogCache
}

func NewServiceHandler(db *gorm.DB, cc *cache.CatalogCache) *ServiceHandler {
	return &ServiceHandler{db: db, cache: cc}
}

type ServiceRequest struct {
	Name        string             `json:"name" binding:"required"`
	ServiceType models.ServiceType `json:"service_type" binding:"required"`
	DurationMin int                `json:"duration_min"`
	PriceCents  int64              `json:"price_cents"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var services []models.Service
	if h.cache.Get(ctx, servicesCacheKey, &services) {
		httpresp.List(c, services)
		return
	}

	if err := h.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	h.cache.Set(ctx, servicesCacheKey, services)
	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc := models.Service{
		Name:        req.Name,
		ServiceType: req.ServiceType,
		DurationMin: req.DurationMin,
		PriceCents:  req.PriceCents,
		Active:      true,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), servicesCacheKey)
	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var svc models.Service
	if err := h.db.WithContext(c.Request.Context()).First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	svc.Name = req.Name
	svc.ServiceType = req.ServiceType
	svc.DurationMin = req.DurationMin
	svc.PriceCents = req.PriceCents

	if err := h.db.WithContext(c.Request.Context()).Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), servicesCacheKey)
	httpresp.OK(c, svc)
}
