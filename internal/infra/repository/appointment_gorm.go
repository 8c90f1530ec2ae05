package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/bellestudio/salon-agenda/internal/domain/appointment"
	"github.com/bellestudio/salon-agenda/internal/httperr"
	"github.com/bellestudio/salon-agenda/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Reference data
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *AppointmentGormRepository) GetProfessional(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	var prof models.Professional
	if err := r.db.WithContext(ctx).First(&prof, id).Error; err != nil {
		return nil, err
	}
	return &prof, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Preload("Service").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) (*domain.Page, error) {

	size := filter.Size
	if size <= 0 {
		size = 5
	}
	page := filter.Page
	if page < 0 {
		page = 0
	}

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if filter.DateFrom != nil {
		q = q.Where("appointment_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		q = q.Where("appointment_date < ?", *filter.DateTo)
	}
	if filter.ProfessionalID != nil {
		q = q.Where("professional_id = ?", *filter.ProfessionalID)
	}
	if filter.ClientID != nil {
		q = q.Where("client_id = ?", *filter.ClientID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", string(*filter.Status))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var apps []models.Appointment
	if err := q.
		Preload("Client").
		Preload("Professional").
		Preload("Service").
		Order("appointment_date DESC").
		Offset(page * size).
		Limit(size).
		Find(&apps).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(size) - 1) / int64(size))

	return &domain.Page{
		Content:       apps,
		Page:          page,
		Size:          size,
		TotalPages:    totalPages,
		TotalElements: total,
	}, nil
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *AppointmentGormRepository) GetPayment(
	ctx context.Context,
	id uint,
) (*models.Payment, error) {

	var p models.Payment
	if err := r.db.WithContext(ctx).
		Preload("Appointment").
		Preload("Appointment.Client").
		First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *AppointmentGormRepository) GetPaidPaymentForAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Payment, error) {

	var p models.Payment
	err := r.db.WithContext(ctx).
		Where("appointment_id = ? AND status = ?", appointmentID, models.PaymentStatusPaid).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("payment_not_found")
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *AppointmentGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *AppointmentGormRepository) UpdatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *AppointmentGormRepository) ListPayments(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Payment, error) {

	var payments []models.Payment
	if err := r.db.WithContext(ctx).
		Preload("Appointment").
		Preload("Appointment.Client").
		Where("payment_date >= ? AND payment_date < ?", from, to).
		Order("payment_date DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
