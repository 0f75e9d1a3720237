package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/httpresp"
	"github.com/BruksfildServices01/booking-api/internal/middleware"
	"github.com/BruksfildServices01/booking-api/internal/models"
	booking "github.com/BruksfildServices01/booking-api/internal/usecase/booking"
	"github.com/BruksfildServices01/booking-api/internal/validators"
)

type WorkingDaysHandler struct {
	db    *gorm.DB
	cache booking.SlotCache
}

func NewWorkingDaysHandler(db *gorm.DB, cache booking.SlotCache) *WorkingDaysHandler {
	return &WorkingDaysHandler{db: db, cache: cache}
}

type WorkingDayConfig struct {
	DayOfWeek int    `json:"dayOfWeek" binding:"min=0,max=6"`
	IsOpen    bool   `json:"isOpen"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type WorkingDaysUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

func (h *WorkingDaysHandler) Get(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uuid.UUID)

	var days []models.WorkingDay
	if err := h.db.
		Where("business_id = ?", businessID).
		Order("day_of_week ASC").
		Find(&days).Error; err != nil {
		httperr.Internal(c, "failed_to_get_working_days", "Failed to load working days.")
		return
	}

	httpresp.OK(c, days)
}

// Update substitui o conjunto inteiro dos 7 dias (invariante: exatamente
// um registro por dia da semana).
func (h *WorkingDaysHandler) Update(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uuid.UUID)

	var req WorkingDaysUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	if len(req.Days) != 7 {
		httperr.Validation(c, "Exactly 7 days are required", "days")
		return
	}

	seen := map[int]bool{}
	for _, d := range req.Days {
		if seen[d.DayOfWeek] {
			httperr.Validation(c, "Duplicated dayOfWeek", "days")
			return
		}
		seen[d.DayOfWeek] = true

		if !d.IsOpen {
			continue
		}
		if !validators.IsClock(d.StartTime) || !validators.IsClock(d.EndTime) {
			httperr.Validation(c, "Times must be HH:MM", "days")
			return
		}
		if !validators.ClockBefore(d.StartTime, d.EndTime) {
			httperr.Validation(c, "startTime must be before endTime", "days")
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("business_id = ?", businessID).
			Delete(&models.WorkingDay{}).Error; err != nil {
			return err
		}

		toCreate := make([]models.WorkingDay, 0, 7)
		for _, d := range req.Days {
			toCreate = append(toCreate, models.WorkingDay{
				BusinessID: businessID,
				DayOfWeek:  d.DayOfWeek,
				IsOpen:     d.IsOpen,
				StartTime:  d.StartTime,
				EndTime:    d.EndTime,
			})
		}

		return tx.Create(&toCreate).Error
	})

	if err != nil {
		httperr.Internal(c, "failed_to_save_working_days", "Failed to save working days.")
		return
	}

	if h.cache != nil {
		h.cache.InvalidateBusiness(c.Request.Context(), businessID)
	}

	var days []models.WorkingDay
	h.db.
		Where("business_id = ?", businessID).
		Order("day_of_week ASC").
		Find(&days)

	httpresp.OK(c, days)
}
