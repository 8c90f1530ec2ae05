package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/bellestudio/salon-agenda/internal/domain/appointment"
	"github.com/bellestudio/salon-agenda/internal/httperr"
	"github.com/bellestudio/salon-agenda/internal/httpresp"
	"github.com/bellestudio/salon-agenda/internal/middleware"
	"github.com/bellestudio/salon-agenda/internal/timezone"
	ucPayment "github.com/bellestudio/salon-agenda/internal/usecase/payment"
)

type PaymentHandler struct {
	register *ucPayment.RegisterPayment
	update   *ucPayment.UpdatePayment
	cancel   *ucPayment.CancelPayment
	repo     domain.Repository
}

func NewPaymentHandler(
	register *ucPayment.RegisterPayment,
	update *ucPayment.UpdatePayment,
	cancel *ucPayment.CancelPayment,
	repo domain.Repository,
) *PaymentHandler {
	return &PaymentHandler{
		register: register,
		update:   update,
		cancel:   cancel,
		repo:     repo,
	}
}

type CreatePaymentRequest struct {
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	AmountCents   int64  `json:"amount_cents" binding:"required"`
	Method        string `json:"method" binding:"required"`
	Observations  string `json:"observations"`
}

type UpdatePaymentRequest struct {
	AmountCents  int64  `json:"amount_cents" binding:"required"`
	Method       string `json:"method" binding:"required"`
	Observations string `json:"observations"`
}

func (h *PaymentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	p, err := h.register.Execute(c.Request.Context(), userID, ucPayment.RegisterPaymentInput{
		AppointmentID: req.AppointmentID,
		AmountCents:   req.AmountCents,
		Method:        req.Method,
		Observations:  req.Observations,
	})
	if err != nil {
		writeBusinessError(c, err, "Erro ao registrar pagamento.")
		return
	}

	httpresp.Created(c, p)
}

func (h *PaymentHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	p, err := h.update.Execute(c.Request.Context(), userID, id, ucPayment.UpdatePaymentInput{
		AmountCents:  req.AmountCents,
		Method:       req.Method,
		Observations: req.Observations,
	})
	if err != nil {
		writeBusinessError(c, err, "Erro ao atualizar pagamento.")
		return
	}

	httpresp.OK(c, p)
}

func (h *PaymentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	p, err := h.cancel.Execute(c.Request.Context(), userID, id)
	if err != nil {
		writeBusinessError(c, err, "Erro ao cancelar pagamento.")
		return
	}

	httpresp.OK(c, p)
}

// List devolve os pagamentos de um intervalo de datas; sem
// intervalo, o mês corrente.
func (h *PaymentHandler) List(c *gin.Context) {
	now := timezone.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)

	if v := c.Query("date_from"); v != "" {
		t, err := timezone.ParseDate(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_from", "Data inicial inválida.")
			return
		}
		from = t
	}
	if v := c.Query("date_to"); v != "" {
		t, err := timezone.ParseDate(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_to", "Data final inválida.")
			return
		}
		to = t.AddDate(0, 0, 1)
	}

	payments, err := h.repo.ListPayments(c.Request.Context(), from, to)
	if err != nil {
		httperr.Internal(c, "failed_to_list_payments", "Erro ao listar pagamentos.")
		return
	}

	httpresp.List(c, payments)
}
