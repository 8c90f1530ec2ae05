package agenda

import (
	"context"
	"sync"

	"github.com/bellestudio/salon-agenda/internal/models"
)

// PaymentDraft é o pagamento pré-preenchido a partir do
// agendamento concluído: valor igual ao preço do agendamento,
// método padrão PIX, observações vazias. A operadora pode ajustar
// qualquer campo antes de salvar.
type PaymentDraft struct {
	AppointmentID uint
	AmountCents   int64
	Method        string
	Observations  string
}

// PaymentWorkflow é o fluxo de registro de pagamento aberto pelo
// orquestrador. Fica aberto até um save bem-sucedido; falha de
// save mantém o fluxo aberto com o erro disponível e não reverte
// o status do agendamento.
type PaymentWorkflow struct {
	api *Client

	mu      sync.Mutex
	draft   PaymentDraft
	open    bool
	lastErr error
	onSaved func()
}

func (w *PaymentWorkflow) Draft() PaymentDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

func (w *PaymentWorkflow) SetDraft(d PaymentDraft) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft = d
}

func (w *PaymentWorkflow) Open() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

func (w *PaymentWorkflow) LastErr() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// Save envia o pagamento. Sucesso fecha o fluxo e pede uma
// atualização da listagem; falha deixa tudo como está para nova
// tentativa manual.
func (w *PaymentWorkflow) Save(ctx context.Context) (*models.Payment, error) {
	w.mu.Lock()
	draft := w.draft
	w.mu.Unlock()

	p, err := w.api.CreatePayment(ctx, PaymentRequest{
		AppointmentID: draft.AppointmentID,
		AmountCents:   draft.AmountCents,
		Method:        draft.Method,
		Observations:  draft.Observations,
	})

	w.mu.Lock()
	defer w.mu.Unlock()

	if err != nil {
		w.lastErr = err
		return nil, err
	}

	w.open = false
	w.lastErr = nil
	if w.onSaved != nil {
		w.onSaved()
	}
	return p, nil
}

// Dismiss fecha o fluxo sem salvar. O status DONE do agendamento
// permanece.
func (w *PaymentWorkflow) Dismiss() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.open = false
}

// PaymentTrigger abre o fluxo de pagamento quando uma transição
// explícita termina em DONE. refresh normalmente é o Bump do
// Composer; opener é o gancho de interface e pode ser nil.
type PaymentTrigger struct {
	api     *Client
	refresh func()
	opener  func(*PaymentWorkflow)

	mu     sync.Mutex
	active *PaymentWorkflow
}

func NewPaymentTrigger(api *Client, refresh func(), opener func(*PaymentWorkflow)) *PaymentTrigger {
	return &PaymentTrigger{
		api:     api,
		refresh: refresh,
		opener:  opener,
	}
}

// HandleCompleted é o CompletedFunc ligado ao Lifecycle.
func (t *PaymentTrigger) HandleCompleted(ap models.Appointment) {
	w := &PaymentWorkflow{
		api:  t.api,
		open: true,
		draft: PaymentDraft{
			AppointmentID: ap.ID,
			AmountCents:   ap.PriceCents,
			Method:        models.PaymentMethodPIX,
		},
		onSaved: t.refresh,
	}

	t.mu.Lock()
	t.active = w
	t.mu.Unlock()

	if t.opener != nil {
		t.opener(w)
	}
}

// Active devolve o fluxo aberto mais recente, ou nil.
func (t *PaymentTrigger) Active() *PaymentWorkflow {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}
