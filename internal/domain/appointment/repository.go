package appointment

import (
	"context"
	"time"

	"github.com/bellestudio/salon-agenda/internal/models"
)

// ListFilter carrega os filtros opcionais da listagem paginada.
// Campos nil não entram na consulta.
type ListFilter struct {
	DateFrom       *time.Time
	DateTo         *time.Time
	ProfessionalID *uint
	ClientID       *uint
	Status         *Status

	Page int
	Size int
}

// Page é o envelope de paginação devolvido pela listagem.
type Page struct {
	Content       []models.Appointment `json:"content"`
	Page          int                  `json:"page"`
	Size          int                  `json:"size"`
	TotalPages    int                  `json:"total_pages"`
	TotalElements int64                `json:"total_elements"`
}

type Repository interface {
	// -------- Reference data --------
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetProfessional(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Appointment --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) (*Page, error)

	// -------- Payment --------
	GetPayment(
		ctx context.Context,
		id uint,
	) (*models.Payment, error)

	GetPaidPaymentForAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Payment, error)

	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	UpdatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	ListPayments(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]models.Payment, error)
}
