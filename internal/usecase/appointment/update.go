package appointment

import (
	"context"
	"time"

	"github.com/bellestudio/salon-agenda/internal/audit"
	domain "github.com/bellestudio/salon-agenda/internal/domain/appointment"
	"github.com/bellestudio/salon-agenda/internal/domain/catalog"
	"github.com/bellestudio/salon-agenda/internal/httperr"
	"github.com/bellestudio/salon-agenda/internal/models"
)

type UpdateAppointmentInput struct {
	ProfessionalID uint
	ServiceID      uint

	AppointmentDate time.Time
	PriceCents      int64
	Observations    string
}

// UpdateAppointment edita data, profissional, serviço, preço e
// observações. Não mexe no status: re-salvar um agendamento nunca
// dispara efeitos de transição.
type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if domain.Status(ap.Status) == domain.StatusCanceled {
		return nil, httperr.ErrBusiness("appointment_canceled")
	}

	prof, err := uc.repo.GetProfessional(ctx, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if !catalog.CanPerform(prof, svc) {
		return nil, httperr.ErrBusiness("service_not_in_specialties")
	}

	ap.ProfessionalID = prof.ID
	ap.ServiceID = svc.ID
	ap.AppointmentDate = in.AppointmentDate
	ap.PriceCents = in.PriceCents
	ap.Observations = in.Observations

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return uc.repo.GetAppointment(ctx, ap.ID)
}
