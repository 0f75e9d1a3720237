package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/httpresp"
	"github.com/BruksfildServices01/booking-api/internal/middleware"
	"github.com/BruksfildServices01/booking-api/internal/models"
	"github.com/BruksfildServices01/booking-api/internal/timezone"
)

type BusinessHandler struct {
	db *gorm.DB
}

func NewBusinessHandler(db *gorm.DB) *BusinessHandler {
	return &BusinessHandler{db: db}
}

type UpdateBusinessRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Timezone *string `json:"timezone"`
}

func (h *BusinessHandler) GetMeBusiness(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uuid.UUID)

	var biz models.Business
	if err := h.db.First(&biz, "id = ?", businessID).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "Business not found.")
		return
	}

	httpresp.OK(c, biz)
}

func (h *BusinessHandler) UpdateMeBusiness(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uuid.UUID)

	var biz models.Business
	if err := h.db.First(&biz, "id = ?", businessID).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "Business not found.")
		return
	}

	var req UpdateBusinessRequest
	if !bindJSON(c, &req) {
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			httperr.Validation(c, "Name must not be empty", "name")
			return
		}
		biz.Name = *req.Name
	}
	if req.Phone != nil {
		biz.Phone = *req.Phone
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.Validation(c, "Unknown timezone", "timezone")
			return
		}
		biz.Timezone = *req.Timezone
	}

	if err := h.db.Save(&biz).Error; err != nil {
		httperr.Internal(c, "failed_to_update_business", "Failed to update business.")
		return
	}

	httpresp.OK(c, biz)
}
