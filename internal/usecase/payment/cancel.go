package payment

import (
	"context"

	"github.com/bellestudio/salon-agenda/internal/audit"
	domain "github.com/bellestudio/salon-agenda/internal/domain/appointment"
	"github.com/bellestudio/salon-agenda/internal/httperr"
	"github.com/bellestudio/salon-agenda/internal/models"
)

// CancelPayment marca o pagamento como CANCELED. O status do
// agendamento não é tocado: os ciclos de vida são desacoplados
// depois do disparo.
type CancelPayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelPayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelPayment {
	return &CancelPayment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelPayment) Execute(
	ctx context.Context,
	userID uint,
	paymentID uint,
) (*models.Payment, error) {

	p, err := uc.repo.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, httperr.ErrBusiness("payment_not_found")
	}

	if p.Status == models.PaymentStatusCanceled {
		return nil, httperr.ErrBusiness("payment_already_canceled")
	}

	p.Status = models.PaymentStatusCanceled

	if err := uc.repo.UpdatePayment(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "payment_canceled",
		Entity:   "payment",
		EntityID: &p.ID,
	})

	return p, nil
}
