package payment

import (
	"context"

	"github.com/bellestudio/salon-agenda/internal/audit"
	domain "github.com/bellestudio/salon-agenda/internal/domain/appointment"
	"github.com/bellestudio/salon-agenda/internal/httperr"
	"github.com/bellestudio/salon-agenda/internal/models"
	"github.com/bellestudio/salon-agenda/internal/timezone"
)

type RegisterPaymentInput struct {
	AppointmentID uint
	AmountCents   int64
	Method        string
	Observations  string
}

// RegisterPayment grava o pagamento de um agendamento. No máximo
// um pagamento PAID por agendamento.
type RegisterPayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegisterPayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RegisterPayment {
	return &RegisterPayment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RegisterPayment) Execute(
	ctx context.Context,
	userID uint,
	in RegisterPaymentInput,
) (*models.Payment, error) {

	if !models.ValidPaymentMethod(in.Method) {
		return nil, httperr.ErrBusiness("invalid_payment_method")
	}
	if in.AmountCents <= 0 {
		return nil, httperr.ErrBusiness("invalid_amount")
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if existing, err := uc.repo.GetPaidPaymentForAppointment(ctx, ap.ID); err == nil && existing != nil {
		return nil, httperr.ErrBusiness("appointment_already_paid")
	}

	p := &models.Payment{
		AppointmentID: ap.ID,
		AmountCents:   in.AmountCents,
		PaymentDate:   timezone.Now(),
		Method:        in.Method,
		Status:        models.PaymentStatusPaid,
		Observations:  in.Observations,
	}

	if err := uc.repo.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "payment_registered",
		Entity:   "payment",
		EntityID: &p.ID,
	})

	return uc.repo.GetPayment(ctx, p.ID)
}
