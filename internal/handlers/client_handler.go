package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bellestudio/salon-agenda/internal/httperr"
	"github.com/bellestudio/salon-agenda/internal/httpresp"
	"github.com/bellestudio/salon-agenda/internal/models"
	"github.com/bellestudio/salon-agenda/internal/timezone"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

type ClientRequest struct {
	Name            string `json:"name" binding:"required"`
	BirthDate       string `json:"birth_date"`
	Gender          string `json:"gender"`
	Phone           string `json:"phone"`
	PhoneIsWhatsapp bool   `json:"phone_is_whatsapp"`
}

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context()).Model(&models.Client{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR phone LIKE ?", like, like)
	}

	var clients []models.Client
	if err := q.Order("name ASC").Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	client := models.Client{
		Name:            req.Name,
		Gender:          req.Gender,
		Phone:           req.Phone,
		PhoneIsWhatsapp: req.PhoneIsWhatsapp,
	}

	if req.BirthDate != "" {
		t, err := timezone.ParseDate(req.BirthDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
			return
		}
		client.BirthDate = &t
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao criar cliente.")
		return
	}

	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var client models.Client
	if err := h.db.WithContext(c.Request.Context()).First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	client.Name = req.Name
	client.Gender = req.Gender
	client.Phone = req.Phone
	client.PhoneIsWhatsapp = req.PhoneIsWhatsapp

	client.BirthDate = nil
	if req.BirthDate != "" {
		t, err := timezone.ParseDate(req.BirthDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
			return
		}
		client.BirthDate = &t
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	httpresp.OK(c, client)
}
