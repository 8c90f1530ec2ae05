package agenda

import (
	"context"

	domain "github.com/bellestudio/salon-agenda/internal/domain/appointment"
	"github.com/bellestudio/salon-agenda/internal/models"
)

// CompletedFunc recebe o agendamento recém-concluído para abrir o
// fluxo de pagamento.
type CompletedFunc func(ap models.Appointment)

// Lifecycle executa as ações de status do lado do cliente. Só a
// ação explícita de transição notifica a conclusão; editar e
// re-salvar um agendamento passa por outro caminho e nunca
// dispara pagamento.
type Lifecycle struct {
	api         *Client
	onCompleted CompletedFunc
}

func NewLifecycle(api *Client, onCompleted CompletedFunc) *Lifecycle {
	return &Lifecycle{
		api:         api,
		onCompleted: onCompleted,
	}
}

// Transition pede ao servidor a mudança para target. Em sucesso
// com target DONE, o orquestrador de pagamento é notificado com o
// agendamento atualizado. Em erro nada é revertido localmente;
// quem chama refaz a listagem.
func (l *Lifecycle) Transition(ctx context.Context, ap *models.Appointment, target domain.Status) (*models.Appointment, error) {
	if err := domain.CanTransition(domain.Status(ap.Status), target); err != nil {
		return nil, err
	}

	updated, err := l.api.UpdateAppointmentStatus(ctx, ap.ID, target)
	if err != nil {
		return nil, err
	}

	if target == domain.StatusDone && l.onCompleted != nil {
		l.onCompleted(*updated)
	}

	return updated, nil
}

// ToggleCancel alterna CANCELED <-> SCHEDULED pelo caminho
// dedicado. confirm é a confirmação explícita da operadora; sem
// ela nada é enviado. O toggle nunca notifica pagamento.
func (l *Lifecycle) ToggleCancel(ctx context.Context, ap *models.Appointment, confirm func() bool) (*models.Appointment, error) {
	if err := domain.CanToggleCancel(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	if confirm == nil || !confirm() {
		return nil, ErrConfirmationDeclined
	}

	target := domain.StatusCanceled
	if domain.Status(ap.Status) == domain.StatusCanceled {
		target = domain.StatusScheduled
	}

	return l.api.UpdateAppointmentStatus(ctx, ap.ID, target)
}
