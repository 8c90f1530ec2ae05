package models

import "time"

// Cliente do salão, sem login próprio. Referenciado pelos
// agendamentos, nunca removido por eles.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string     `gorm:"size:100;not null" json:"name"`
	BirthDate *time.Time `json:"birth_date"`
	Gender    string     `gorm:"size:20" json:"gender"`

	Phone           string `gorm:"size:20" json:"phone"`
	PhoneIsWhatsapp bool   `gorm:"default:true" json:"phone_is_whatsapp"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
