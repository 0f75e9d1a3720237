package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fechamento do negócio inteiro. EndDate nulo = fechamento sem fim definido.
type Absence struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BusinessID uuid.UUID `gorm:"type:uuid;index" json:"businessId"`

	StartDate time.Time  `gorm:"not null" json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Reason    string     `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Absence) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
