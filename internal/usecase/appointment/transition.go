package appointment

import (
	"context"

	"github.com/bellestudio/salon-agenda/internal/audit"
	domain "github.com/bellestudio/salon-agenda/internal/domain/appointment"
	"github.com/bellestudio/salon-agenda/internal/httperr"
	"github.com/bellestudio/salon-agenda/internal/models"
	"github.com/bellestudio/salon-agenda/internal/timezone"
)

// TransitionStatus executa uma mudança explícita de status
// disparada pela ação de status do cliente.
type TransitionStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewTransitionStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *TransitionStatus {
	return &TransitionStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *TransitionStatus) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
	target string,
) (*models.Appointment, error) {

	status, err := domain.ParseStatus(target)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	from := ap.Status

	if err := domain.Transition(ap, status, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"from": from, "to": string(status)},
	})

	return ap, nil
}
