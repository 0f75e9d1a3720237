package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Um registro por dia da semana por negócio (0=domingo .. 6=sábado).
type WorkingDay struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BusinessID uuid.UUID `gorm:"type:uuid;index:idx_working_days_business_weekday,unique" json:"businessId"`

	DayOfWeek int    `gorm:"index:idx_working_days_business_weekday,unique" json:"dayOfWeek"`
	IsOpen    bool   `gorm:"default:true" json:"isOpen"`
	StartTime string `gorm:"size:5" json:"startTime"`
	EndTime   string `gorm:"size:5" json:"endTime"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (w *WorkingDay) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
