package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	BusinessID uuid.UUID `gorm:"type:uuid;index" json:"businessId"`

	CustomerID uuid.UUID `gorm:"type:uuid" json:"customerId"`
	Customer   Customer  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	ServiceID uuid.UUID `gorm:"type:uuid" json:"serviceId"`
	Service   Service   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	StartAt time.Time `gorm:"index" json:"startAt"`
	EndAt   time.Time `json:"endAt"`

	Status string `gorm:"size:20;default:'CONFIRMED'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
