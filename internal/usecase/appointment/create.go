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

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID       uint
	ProfessionalID uint
	ServiceID      uint

	AppointmentDate time.Time
	PriceCents      int64
	Observations    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	userID uint,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	prof, err := uc.repo.GetProfessional(ctx, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// A mesma regra que o formulário aplica na seleção: a
	// profissional precisa atender o tipo do serviço.
	if !catalog.CanPerform(prof, svc) {
		return nil, httperr.ErrBusiness("service_not_in_specialties")
	}

	price := in.PriceCents
	if price <= 0 {
		price = svc.PriceCents
	}

	ap := &models.Appointment{
		ClientID:        client.ID,
		ProfessionalID:  prof.ID,
		ServiceID:       svc.ID,
		AppointmentDate: in.AppointmentDate,
		Status:          string(domain.InitialStatus()),
		PriceCents:      price,
		Observations:    in.Observations,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return uc.repo.GetAppointment(ctx, ap.ID)
}
