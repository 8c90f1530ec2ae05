package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/bellestudio/salon-agenda/internal/domain/appointment"
	"github.com/bellestudio/salon-agenda/internal/httperr"
	"github.com/bellestudio/salon-agenda/internal/httpresp"
	"github.com/bellestudio/salon-agenda/internal/middleware"
	"github.com/bellestudio/salon-agenda/internal/timezone"
	ucAppointment "github.com/bellestudio/salon-agenda/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create     *ucAppointment.CreateAppointment
	update     *ucAppointment.UpdateAppointment
	transition *ucAppointment.TransitionStatus
	toggle     *ucAppointment.ToggleCancel
	list       *ucAppointment.ListAppointments
	repo       domain.Repository
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	transition *ucAppointment.TransitionStatus,
	toggle *ucAppointment.ToggleCancel,
	list *ucAppointment.ListAppointments,
	repo domain.Repository,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:     create,
		update:     update,
		transition: transition,
		toggle:     toggle,
		list:       list,
		repo:       repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	ClientID        uint   `json:"client_id" binding:"required"`
	ProfessionalID  uint   `json:"professional_id" binding:"required"`
	ServiceID       uint   `json:"service_id" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required"`
	PriceCents      int64  `json:"price_cents"`
	Observations    string `json:"observations"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

// List aceita os filtros opcionais {date_from, date_to,
// professional_id, client_id, status} e paginação {page, size};
// campos ausentes não filtram nada.
func (h *AppointmentHandler) List(c *gin.Context) {
	var filter domain.ListFilter

	if v := c.Query("date_from"); v != "" {
		t, err := timezone.ParseDate(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_from", "Data inicial inválida.")
			return
		}
		filter.DateFrom = &t
	}
	if v := c.Query("date_to"); v != "" {
		t, err := timezone.ParseDate(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_to", "Data final inválida.")
			return
		}
		// intervalo fechado no dia: fim exclusivo no dia seguinte
		end := t.AddDate(0, 0, 1)
		filter.DateTo = &end
	}
	if v := c.Query("professional_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_professional_id", "Profissional inválida.")
			return
		}
		pid := uint(id)
		filter.ProfessionalID = &pid
	}
	if v := c.Query("client_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_client_id", "Cliente inválido.")
			return
		}
		cid := uint(id)
		filter.ClientID = &cid
	}
	if v := c.Query("status"); v != "" {
		status, err := domain.ParseStatus(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
			return
		}
		filter.Status = &status
	}

	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	filter.Size, _ = strconv.Atoi(c.DefaultQuery("size", "5"))

	page, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.OK(c, page)
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.repo.GetAppointment(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := timezone.ParseDateTime(req.AppointmentDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data ou hora inválida.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), userID, ucAppointment.CreateAppointmentInput{
		ClientID:        req.ClientID,
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		AppointmentDate: date,
		PriceCents:      req.PriceCents,
		Observations:    req.Observations,
	})
	if err != nil {
		writeBusinessError(c, err, "Erro ao criar agendamento.")
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := timezone.ParseDateTime(req.AppointmentDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data ou hora inválida.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), userID, id, ucAppointment.UpdateAppointmentInput{
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		AppointmentDate: date,
		PriceCents:      req.PriceCents,
		Observations:    req.Observations,
	})
	if err != nil {
		writeBusinessError(c, err, "Erro ao atualizar agendamento.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.transition.Execute(c.Request.Context(), userID, id, req.Status)
	if err != nil {
		writeBusinessError(c, err, "Erro ao atualizar status.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) ToggleCancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.toggle.Execute(c.Request.Context(), userID, id)
	if err != nil {
		writeBusinessError(c, err, "Erro ao cancelar agendamento.")
		return
	}

	httpresp.OK(c, ap)
}
