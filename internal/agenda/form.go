package agenda

import (
	"context"
	"time"

	"github.com/bellestudio/salon-agenda/internal/domain/catalog"
	"github.com/bellestudio/salon-agenda/internal/models"
)

// AppointmentForm mantém as seleções do formulário de criar ou
// editar agendamento e aplica o filtro de disponibilidade em
// cascata: trocar a profissional limpa o serviço escolhido, e um
// serviço só pode ser escolhido dentro do subconjunto que a
// profissional atende.
type AppointmentForm struct {
	ref *RefData

	clientID     uint
	professional *models.Professional
	service      *models.Service

	Date         time.Time
	PriceCents   int64
	Observations string

	editing *models.Appointment
}

func NewAppointmentForm(ref *RefData) *AppointmentForm {
	return &AppointmentForm{ref: ref}
}

// LoadForEdit preenche o formulário a partir de um agendamento
// existente. O serviço gravado só é aplicado se ainda estiver no
// conjunto disponível para a profissional carregada; se o cadastro
// da profissional mudou desde a criação, o campo fica vazio em vez
// de mostrar um valor inválido.
func (f *AppointmentForm) LoadForEdit(ap *models.Appointment) {
	f.editing = ap
	f.clientID = ap.ClientID
	f.professional = f.ref.ProfessionalByID(ap.ProfessionalID)
	f.Date = ap.AppointmentDate
	f.PriceCents = ap.PriceCents
	f.Observations = ap.Observations

	f.service = nil
	if svc := f.ref.ServiceByID(ap.ServiceID); svc != nil && catalog.CanPerform(f.professional, svc) {
		f.service = svc
	}
}

func (f *AppointmentForm) SelectClient(id uint) {
	f.clientID = id
}

// SelectProfessional troca a profissional selecionada. O serviço
// escolhido antes é sempre invalidado: o novo subconjunto
// disponível pode não contê-lo.
func (f *AppointmentForm) SelectProfessional(id uint) {
	f.professional = f.ref.ProfessionalByID(id)
	f.service = nil
}

// AvailableServices devolve o subconjunto do catálogo que a
// profissional selecionada atende, na ordem do catálogo.
func (f *AppointmentForm) AvailableServices() []models.Service {
	return catalog.AvailableServices(f.professional, f.ref.Services)
}

// SelectService escolhe um serviço do subconjunto disponível e
// sugere o preço de tabela quando o campo ainda está zerado.
func (f *AppointmentForm) SelectService(id uint) error {
	for _, s := range f.AvailableServices() {
		if s.ID == id {
			svc := s
			f.service = &svc
			if f.PriceCents == 0 {
				f.PriceCents = svc.PriceCents
			}
			return nil
		}
	}
	return ErrServiceUnavailable
}

func (f *AppointmentForm) Professional() *models.Professional {
	return f.professional
}

func (f *AppointmentForm) Service() *models.Service {
	return f.service
}

// Submit cria ou atualiza o agendamento conforme o formulário foi
// aberto. Em erro nada é aplicado localmente; quem chama refaz a
// listagem para ressincronizar.
func (f *AppointmentForm) Submit(ctx context.Context, api *Client) (*models.Appointment, error) {
	if f.clientID == 0 || f.professional == nil || f.service == nil || f.Date.IsZero() {
		return nil, ErrIncompleteForm
	}

	req := AppointmentRequest{
		ClientID:        f.clientID,
		ProfessionalID:  f.professional.ID,
		ServiceID:       f.service.ID,
		AppointmentDate: f.Date.Format("2006-01-02T15:04:05"),
		PriceCents:      f.PriceCents,
		Observations:    f.Observations,
	}

	if f.editing != nil {
		return api.UpdateAppointment(ctx, f.editing.ID, req)
	}
	return api.CreateAppointment(ctx, req)
}
