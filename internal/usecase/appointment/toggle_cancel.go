package appointment

import (
	"context"

	"github.com/bellestudio/salon-agenda/internal/audit"
	domain "github.com/bellestudio/salon-agenda/internal/domain/appointment"
	"github.com/bellestudio/salon-agenda/internal/httperr"
	"github.com/bellestudio/salon-agenda/internal/models"
	"github.com/bellestudio/salon-agenda/internal/timezone"
)

// ToggleCancel alterna o agendamento entre CANCELED e SCHEDULED
// (o caminho dedicado de cancelar/reativar, fora do seletor geral
// de status).
type ToggleCancel struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewToggleCancel(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ToggleCancel {
	return &ToggleCancel{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ToggleCancel) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	result, err := domain.ToggleCancel(ap, timezone.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	action := "appointment_canceled"
	if result == domain.StatusScheduled {
		action = "appointment_reactivated"
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
