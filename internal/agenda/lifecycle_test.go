package agenda

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bellestudio/salon-agenda/internal/domain/appointment"
	"github.com/bellestudio/salon-agenda/internal/models"
)

// fakeAPI simula o servidor da agenda: PATCH de status ecoa o
// agendamento com o novo status; POST de pagamento é controlado
// pelo teste (failPayments).
type fakeAPI struct {
	statusCalls   int32
	paymentCalls  int32
	failPayments  bool
	lastStatus    string
	lastPayment   PaymentRequest
	server        *httptest.Server
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &fakeAPI{}
	r := gin.New()

	r.PATCH("/api/v1/appointments/:id/status", func(c *gin.Context) {
		atomic.AddInt32(&f.statusCalls, 1)

		var body struct {
			Status string `json:"status"`
		}
		require.NoError(t, c.ShouldBindJSON(&body))
		f.lastStatus = body.Status

		c.JSON(http.StatusOK, models.Appointment{
			ID:         42,
			Status:     body.Status,
			PriceCents: 8000,
		})
	})

	r.POST("/api/v1/payments", func(c *gin.Context) {
		atomic.AddInt32(&f.paymentCalls, 1)

		var req PaymentRequest
		require.NoError(t, c.ShouldBindJSON(&req))
		f.lastPayment = req

		if f.failPayments {
			c.JSON(http.StatusBadRequest, gin.H{"error_code": "bad_request", "message": "pagamento recusado"})
			return
		}
		c.JSON(http.StatusCreated, models.Payment{
			ID:            7,
			AppointmentID: req.AppointmentID,
			AmountCents:   req.AmountCents,
			Method:        req.Method,
			Status:        models.PaymentStatusPaid,
		})
	})

	f.server = httptest.NewServer(r)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeAPI) client() *Client {
	return NewClient(f.server.URL, "", 0)
}

func TestTransitionToDoneOpensPrefilledPayment(t *testing.T) {
	f := newFakeAPI(t)

	var opened []*PaymentWorkflow
	trigger := NewPaymentTrigger(f.client(), nil, func(w *PaymentWorkflow) {
		opened = append(opened, w)
	})
	lc := NewLifecycle(f.client(), trigger.HandleCompleted)

	ap := &models.Appointment{ID: 42, Status: "CONFIRMED", PriceCents: 8000}
	updated, err := lc.Transition(context.Background(), ap, domain.StatusDone)
	require.NoError(t, err)
	assert.Equal(t, "DONE", updated.Status)

	// O fluxo abre exatamente uma vez, pré-preenchido com o preço
	// do agendamento e PIX como método padrão.
	require.Len(t, opened, 1)
	draft := opened[0].Draft()
	assert.Equal(t, uint(42), draft.AppointmentID)
	assert.Equal(t, int64(8000), draft.AmountCents)
	assert.Equal(t, models.PaymentMethodPIX, draft.Method)
	assert.Empty(t, draft.Observations)
	assert.True(t, opened[0].Open())
}

func TestTransitionToOtherStatusNeverOpensPayment(t *testing.T) {
	f := newFakeAPI(t)

	trigger := NewPaymentTrigger(f.client(), nil, nil)
	lc := NewLifecycle(f.client(), trigger.HandleCompleted)

	ap := &models.Appointment{ID: 42, Status: "SCHEDULED", PriceCents: 8000}
	for _, target := range []domain.Status{
		domain.StatusConfirmed, domain.StatusRescheduled, domain.StatusNoShow, domain.StatusCanceled,
	} {
		_, err := lc.Transition(context.Background(), ap, target)
		require.NoError(t, err)
	}

	assert.Nil(t, trigger.Active())
	assert.Equal(t, int32(0), atomic.LoadInt32(&f.paymentCalls))
}

func TestTransitionRejectedLocallyNeverHitsServer(t *testing.T) {
	f := newFakeAPI(t)
	lc := NewLifecycle(f.client(), nil)

	ap := &models.Appointment{ID: 42, Status: "SCHEDULED"}
	_, err := lc.Transition(context.Background(), ap, "FINISHED")
	require.Error(t, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(&f.statusCalls))
}

func TestPaymentSaveFailureKeepsWorkflowOpen(t *testing.T) {
	f := newFakeAPI(t)
	f.failPayments = true

	refreshed := 0
	trigger := NewPaymentTrigger(f.client(), func() { refreshed++ }, nil)
	lc := NewLifecycle(f.client(), trigger.HandleCompleted)

	ap := &models.Appointment{ID: 42, Status: "CONFIRMED", PriceCents: 8000}
	updated, err := lc.Transition(context.Background(), ap, domain.StatusDone)
	require.NoError(t, err)

	wf := trigger.Active()
	require.NotNil(t, wf)

	_, err = wf.Save(context.Background())
	require.Error(t, err)

	// Falha de pagamento não fecha o fluxo nem reverte o DONE.
	assert.True(t, wf.Open())
	assert.Error(t, wf.LastErr())
	assert.Equal(t, "DONE", updated.Status)
	assert.Equal(t, 0, refreshed)

	// Nova tentativa depois que o servidor volta.
	f.failPayments = false
	p, err := wf.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, p.Status)
	assert.False(t, wf.Open())
	assert.NoError(t, wf.LastErr())
	assert.Equal(t, 1, refreshed)
}

func TestPaymentSaveSendsEditedDraft(t *testing.T) {
	f := newFakeAPI(t)

	trigger := NewPaymentTrigger(f.client(), nil, nil)
	lc := NewLifecycle(f.client(), trigger.HandleCompleted)

	ap := &models.Appointment{ID: 42, Status: "CONFIRMED", PriceCents: 8000}
	_, err := lc.Transition(context.Background(), ap, domain.StatusDone)
	require.NoError(t, err)

	wf := trigger.Active()
	require.NotNil(t, wf)

	// A operadora ajustou método e valor antes de salvar.
	draft := wf.Draft()
	draft.Method = models.PaymentMethodCreditCard
	draft.AmountCents = 7500
	wf.SetDraft(draft)

	_, err = wf.Save(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint(42), f.lastPayment.AppointmentID)
	assert.Equal(t, int64(7500), f.lastPayment.AmountCents)
	assert.Equal(t, models.PaymentMethodCreditCard, f.lastPayment.Method)
}

func TestToggleCancelRequiresConfirmation(t *testing.T) {
	f := newFakeAPI(t)
	lc := NewLifecycle(f.client(), nil)

	ap := &models.Appointment{ID: 42, Status: "SCHEDULED"}

	// Sem confirmação nada é enviado.
	_, err := lc.ToggleCancel(context.Background(), ap, func() bool { return false })
	require.ErrorIs(t, err, ErrConfirmationDeclined)
	assert.Equal(t, int32(0), atomic.LoadInt32(&f.statusCalls))

	// Confirmado: SCHEDULED vira CANCELED.
	updated, err := lc.ToggleCancel(context.Background(), ap, func() bool { return true })
	require.NoError(t, err)
	assert.Equal(t, "CANCELED", updated.Status)
	assert.Equal(t, "CANCELED", f.lastStatus)

	// E CANCELED volta para SCHEDULED.
	updated, err = lc.ToggleCancel(context.Background(), updated, func() bool { return true })
	require.NoError(t, err)
	assert.Equal(t, "SCHEDULED", updated.Status)
}

func TestToggleCancelRejectsOtherStatuses(t *testing.T) {
	f := newFakeAPI(t)
	lc := NewLifecycle(f.client(), nil)

	confirmed := 0
	confirm := func() bool { confirmed++; return true }

	for _, status := range []string{"CONFIRMED", "RESCHEDULED", "DONE", "NO_SHOW"} {
		ap := &models.Appointment{ID: 42, Status: status}
		_, err := lc.ToggleCancel(context.Background(), ap, confirm)
		require.Error(t, err, status)
	}

	// A validação vem antes da confirmação e do servidor.
	assert.Equal(t, 0, confirmed)
	assert.Equal(t, int32(0), atomic.LoadInt32(&f.statusCalls))
}

func TestDecodeAPIErrorPrefersServerMessage(t *testing.T) {
	f := newFakeAPI(t)
	f.failPayments = true

	_, err := f.client().CreatePayment(context.Background(), PaymentRequest{
		AppointmentID: 42, AmountCents: 100, Method: models.PaymentMethodPIX,
	})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "bad_request", apiErr.Code)
	assert.Contains(t, apiErr.Error(), "pagamento recusado")
}
