package agenda

import (
	"context"
	"sync"

	"github.com/bellestudio/salon-agenda/internal/models"
)

// RefData é o retrato dos catálogos de referência carregado uma
// vez por abertura de formulário. Só leitura.
type RefData struct {
	Clients       []models.Client
	Professionals []models.Professional
	Services      []models.Service
}

// LoadRefData busca clientes, profissionais e serviços em três
// requisições concorrentes e junta antes de devolver. Qualquer
// falha derruba o carregamento inteiro.
func (c *Client) LoadRefData(ctx context.Context) (*RefData, error) {
	ref := &RefData{}

	var wg sync.WaitGroup
	errs := make([]error, 3)

	wg.Add(3)
	go func() {
		defer wg.Done()
		ref.Clients, errs[0] = c.ListClients(ctx)
	}()
	go func() {
		defer wg.Done()
		ref.Professionals, errs[1] = c.ListProfessionals(ctx)
	}()
	go func() {
		defer wg.Done()
		ref.Services, errs[2] = c.ListServices(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return ref, nil
}

func (r *RefData) ProfessionalByID(id uint) *models.Professional {
	for i := range r.Professionals {
		if r.Professionals[i].ID == id {
			return &r.Professionals[i]
		}
	}
	return nil
}

func (r *RefData) ClientByID(id uint) *models.Client {
	for i := range r.Clients {
		if r.Clients[i].ID == id {
			return &r.Clients[i]
		}
	}
	return nil
}

func (r *RefData) ServiceByID(id uint) *models.Service {
	for i := range r.Services {
		if r.Services[i].ID == id {
			return &r.Services[i]
		}
	}
	return nil
}
