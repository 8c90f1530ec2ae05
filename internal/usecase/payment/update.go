package payment

import (
	"context"

	"github.com/bellestudio/salon-agenda/internal/audit"
	domain "github.com/bellestudio/salon-agenda/internal/domain/appointment"
	"github.com/bellestudio/salon-agenda/internal/httperr"
	"github.com/bellestudio/salon-agenda/internal/models"
)

type UpdatePaymentInput struct {
	AmountCents  int64
	Method       string
	Observations string
}

type UpdatePayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdatePayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdatePayment {
	return &UpdatePayment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdatePayment) Execute(
	ctx context.Context,
	userID uint,
	paymentID uint,
	in UpdatePaymentInput,
) (*models.Payment, error) {

	if !models.ValidPaymentMethod(in.Method) {
		return nil, httperr.ErrBusiness("invalid_payment_method")
	}
	if in.AmountCents <= 0 {
		return nil, httperr.ErrBusiness("invalid_amount")
	}

	p, err := uc.repo.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, httperr.ErrBusiness("payment_not_found")
	}

	if p.Status == models.PaymentStatusCanceled {
		return nil, httperr.ErrBusiness("payment_canceled")
	}

	p.AmountCents = in.AmountCents
	p.Method = in.Method
	p.Observations = in.Observations

	if err := uc.repo.UpdatePayment(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "payment_updated",
		Entity:   "payment",
		EntityID: &p.ID,
	})

	return p, nil
}
