package appointment

import (
	"context"

	domain "github.com/bellestudio/salon-agenda/internal/domain/appointment"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) (*domain.Page, error) {
	return uc.repo.ListAppointments(ctx, filter)
}
