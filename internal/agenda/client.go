// Package agenda é o motor de agendamentos do lado do cliente:
// compõe consultas filtradas com debounce, executa transições de
// status, aplica o filtro de disponibilidade em cascata e
// orquestra o fluxo de pagamento disparado pela conclusão.
//
// Tudo aqui conversa com a API HTTP por contratos de dados; a
// aquisição e renovação da credencial é de quem chama.
package agenda

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	domain "github.com/bellestudio/salon-agenda/internal/domain/appointment"
	"github.com/bellestudio/salon-agenda/internal/httperr"
	"github.com/bellestudio/salon-agenda/internal/models"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// --------------------------------------------------
// Requests
// --------------------------------------------------

type AppointmentRequest struct {
	ClientID        uint   `json:"client_id"`
	ProfessionalID  uint   `json:"professional_id"`
	ServiceID       uint   `json:"service_id"`
	AppointmentDate string `json:"appointment_date"`
	PriceCents      int64  `json:"price_cents"`
	Observations    string `json:"observations"`
}

type PaymentRequest struct {
	AppointmentID uint   `json:"appointment_id"`
	AmountCents   int64  `json:"amount_cents"`
	Method        string `json:"method"`
	Observations  string `json:"observations"`
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (c *Client) ListAppointments(ctx context.Context, q Query) (*domain.Page, error) {
	var page domain.Page
	path := "/api/v1/appointments?" + q.Values().Encode()
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	var ap models.Appointment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/appointments/%d", id), nil, &ap); err != nil {
		return nil, err
	}
	return &ap, nil
}

func (c *Client) CreateAppointment(ctx context.Context, req AppointmentRequest) (*models.Appointment, error) {
	var ap models.Appointment
	if err := c.do(ctx, http.MethodPost, "/api/v1/appointments", req, &ap); err != nil {
		return nil, err
	}
	return &ap, nil
}

func (c *Client) UpdateAppointment(ctx context.Context, id uint, req AppointmentRequest) (*models.Appointment, error) {
	var ap models.Appointment
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/appointments/%d", id), req, &ap); err != nil {
		return nil, err
	}
	return &ap, nil
}

func (c *Client) UpdateAppointmentStatus(ctx context.Context, id uint, status domain.Status) (*models.Appointment, error) {
	var ap models.Appointment
	body := map[string]string{"status": string(status)}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/v1/appointments/%d/status", id), body, &ap); err != nil {
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Payments
// --------------------------------------------------

func (c *Client) CreatePayment(ctx context.Context, req PaymentRequest) (*models.Payment, error) {
	var p models.Payment
	if err := c.do(ctx, http.MethodPost, "/api/v1/payments", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// --------------------------------------------------
// Reference data
// --------------------------------------------------

func (c *Client) ListClients(ctx context.Context) ([]models.Client, error) {
	var resp struct {
		Data []models.Client `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/clients", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) ListProfessionals(ctx context.Context) ([]models.Professional, error) {
	var resp struct {
		Data []models.Professional `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/professionals", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) ListServices(ctx context.Context) ([]models.Service, error) {
	var resp struct {
		Data []models.Service `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/services", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// --------------------------------------------------
// Transport
// --------------------------------------------------

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeAPIError prefere a mensagem do servidor quando o corpo
// segue o formato de erro da API.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	var body httperr.HTTPError
	if json.Unmarshal(raw, &body) == nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
	}

	// formato dos middlewares de auth
	if apiErr.Code == "" {
		var alt struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &alt) == nil {
			apiErr.Code = alt.Error
		}
	}

	return apiErr
}
