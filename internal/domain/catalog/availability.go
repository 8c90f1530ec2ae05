// Package catalog contém as regras de disponibilidade entre
// profissionais e serviços: um serviço só pode ser atribuído a
// uma profissional cujo conjunto de especialidades inclua o tipo
// do serviço.
package catalog

import "github.com/bellestudio/salon-agenda/internal/models"

// AvailableServices devolve, na ordem original de all, os
// serviços cujo tipo está nas especialidades da profissional.
// Profissional nil resulta em lista vazia.
func AvailableServices(p *models.Professional, all []models.Service) []models.Service {
	if p == nil {
		return nil
	}

	var out []models.Service
	for _, s := range all {
		if p.Specialties.Contains(s.ServiceType) {
			out = append(out, s)
		}
	}
	return out
}

// CanPerform informa se a profissional atende o tipo do serviço.
func CanPerform(p *models.Professional, s *models.Service) bool {
	if p == nil || s == nil {
		return false
	}
	return p.Specialties.Contains(s.ServiceType)
}
