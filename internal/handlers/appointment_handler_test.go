package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellestudio/salon-agenda/internal/audit"
	domain "github.com/bellestudio/salon-agenda/internal/domain/appointment"
	"github.com/bellestudio/salon-agenda/internal/httperr"
	"github.com/bellestudio/salon-agenda/internal/middleware"
	"github.com/bellestudio/salon-agenda/internal/models"
	"github.com/bellestudio/salon-agenda/internal/timezone"
	ucAppointment "github.com/bellestudio/salon-agenda/internal/usecase/appointment"
)

// listRepo captura o filtro montado pelo handler de listagem.
type listRepo struct {
	lastFilter  domain.ListFilter
	appointment *models.Appointment
}

func (r *listRepo) GetClient(_ context.Context, _ uint) (*models.Client, error) {
	return &models.Client{ID: 1}, nil
}

func (r *listRepo) GetProfessional(_ context.Context, _ uint) (*models.Professional, error) {
	return &models.Professional{ID: 1, Specialties: models.Specialties{models.ServiceTypeHair}}, nil
}

func (r *listRepo) GetService(_ context.Context, _ uint) (*models.Service, error) {
	return &models.Service{ID: 1, ServiceType: models.ServiceTypeHair, PriceCents: 8000}, nil
}

func (r *listRepo) GetAppointment(_ context.Context, _ uint) (*models.Appointment, error) {
	if r.appointment == nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	cp := *r.appointment
	return &cp, nil
}

func (r *listRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = 42
	return nil
}

func (r *listRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	cp := *ap
	r.appointment = &cp
	return nil
}

func (r *listRepo) ListAppointments(_ context.Context, filter domain.ListFilter) (*domain.Page, error) {
	r.lastFilter = filter
	return &domain.Page{Content: []models.Appointment{}, Page: filter.Page, Size: filter.Size}, nil
}

func (r *listRepo) GetPayment(_ context.Context, _ uint) (*models.Payment, error) {
	return nil, httperr.ErrBusiness("payment_not_found")
}

func (r *listRepo) GetPaidPaymentForAppointment(_ context.Context, _ uint) (*models.Payment, error) {
	return nil, httperr.ErrBusiness("payment_not_found")
}

func (r *listRepo) CreatePayment(_ context.Context, _ *models.Payment) error { return nil }
func (r *listRepo) UpdatePayment(_ context.Context, _ *models.Payment) error { return nil }

func (r *listRepo) ListPayments(_ context.Context, _, _ time.Time) ([]models.Payment, error) {
	return nil, nil
}

var _ domain.Repository = (*listRepo)(nil)

type noopSink struct{}

func (noopSink) Log(_ *uint, _, _ string, _ *uint, _ any) error { return nil }

func newTestRouter(repo *listRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	d := audit.NewDispatcher(noopSink{})
	h := NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(repo, d),
		ucAppointment.NewUpdateAppointment(repo, d),
		ucAppointment.NewTransitionStatus(repo, d),
		ucAppointment.NewToggleCancel(repo, d),
		ucAppointment.NewListAppointments(repo),
		repo,
	)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uint(1))
	})
	r.GET("/appointments", h.List)
	r.PATCH("/appointments/:id/status", h.UpdateStatus)
	r.PATCH("/appointments/:id/toggle-cancel", h.ToggleCancel)
	return r
}

func doRequest(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestListDefaults(t *testing.T) {
	repo := &listRepo{}
	r := newTestRouter(repo)

	rec := doRequest(r, http.MethodGet, "/appointments", "")
	require.Equal(t, http.StatusOK, rec.Code)

	f := repo.lastFilter
	assert.Nil(t, f.DateFrom)
	assert.Nil(t, f.DateTo)
	assert.Nil(t, f.ProfessionalID)
	assert.Nil(t, f.ClientID)
	assert.Nil(t, f.Status)
	assert.Equal(t, 0, f.Page)
	assert.Equal(t, 5, f.Size)
}

func TestListParsesFilters(t *testing.T) {
	repo := &listRepo{}
	r := newTestRouter(repo)

	rec := doRequest(r, http.MethodGet,
		"/appointments?date_from=2026-03-01&date_to=2026-03-31&professional_id=3&client_id=7&status=DONE&page=2&size=5", "")
	require.Equal(t, http.StatusOK, rec.Code)

	f := repo.lastFilter
	require.NotNil(t, f.DateFrom)
	require.NotNil(t, f.DateTo)

	loc := timezone.Location()
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), *f.DateFrom)
	// Intervalo fechado no dia final: o limite superior é o dia
	// seguinte, exclusivo.
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, loc), *f.DateTo)

	require.NotNil(t, f.ProfessionalID)
	assert.Equal(t, uint(3), *f.ProfessionalID)
	require.NotNil(t, f.ClientID)
	assert.Equal(t, uint(7), *f.ClientID)
	require.NotNil(t, f.Status)
	assert.Equal(t, domain.StatusDone, *f.Status)
	assert.Equal(t, 2, f.Page)
}

func TestListRejectsBadFilters(t *testing.T) {
	r := newTestRouter(&listRepo{})

	rec := doRequest(r, http.MethodGet, "/appointments?status=FINISHED", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(r, http.MethodGet, "/appointments?date_from=01/03/2026", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(r, http.MethodGet, "/appointments?professional_id=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatusEndpoint(t *testing.T) {
	repo := &listRepo{appointment: &models.Appointment{ID: 5, Status: "CONFIRMED"}}
	r := newTestRouter(repo)

	rec := doRequest(r, http.MethodPatch, "/appointments/5/status", `{"status":"DONE"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var ap models.Appointment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ap))
	assert.Equal(t, "DONE", ap.Status)
	require.NotNil(t, ap.CompletedAt)

	// Status desconhecido é recusado antes de tocar o repositório.
	rec = doRequest(r, http.MethodPatch, "/appointments/5/status", `{"status":"FINISHED"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body httperr.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid_status", body.Code)
}

func TestToggleCancelEndpoint(t *testing.T) {
	repo := &listRepo{appointment: &models.Appointment{ID: 5, Status: "SCHEDULED"}}
	r := newTestRouter(repo)

	rec := doRequest(r, http.MethodPatch, "/appointments/5/toggle-cancel", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var ap models.Appointment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ap))
	assert.Equal(t, "CANCELED", ap.Status)

	rec = doRequest(r, http.MethodPatch, "/appointments/5/toggle-cancel", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ap))
	assert.Equal(t, "SCHEDULED", ap.Status)
}
