package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string      `gorm:"size:100;not null" json:"name"`
	ServiceType ServiceType `gorm:"size:20;not null" json:"service_type"`

	DurationMin int   `json:"duration_min"`
	PriceCents  int64 `json:"price_cents"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
