package models

import "time"

const (
	PaymentMethodPIX        = "PIX"
	PaymentMethodCash       = "CASH"
	PaymentMethodDebitCard  = "DEBIT_CARD"
	PaymentMethodCreditCard = "CREDIT_CARD"
)

const (
	PaymentStatusPaid     = "PAID"
	PaymentStatusCanceled = "CANCELED"
)

// Pagamento vinculado a um único agendamento. No máximo um
// pagamento PAID por agendamento; cancelar um pagamento nunca
// altera o status do agendamento.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"index" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"appointment"`

	AmountCents int64     `json:"amount_cents"`
	PaymentDate time.Time `json:"payment_date"`

	Method string `gorm:"size:20;not null" json:"method"`
	Status string `gorm:"size:20;default:'PAID'" json:"status"`

	Observations string `gorm:"size:500" json:"observations"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodPIX, PaymentMethodCash, PaymentMethodDebitCard, PaymentMethodCreditCard:
		return true
	}
	return false
}
