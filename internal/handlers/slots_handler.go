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
)

type SlotsHandler struct {
	db *gorm.DB
	uc *booking.GetAvailableSlots
}

func NewSlotsHandler(db *gorm.DB, uc *booking.GetAvailableSlots) *SlotsHandler {
	return &SlotsHandler{db: db, uc: uc}
}

// List responde GET /api/slots?date=YYYY-MM-DD&serviceId=...
// A lista é consultiva: pode envelhecer em segundos, o commit revalida.
func (h *SlotsHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uuid.UUID)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.Validation(c, "date is required", "date")
		return
	}

	serviceID, err := uuid.Parse(c.Query("serviceId"))
	if err != nil {
		httperr.Validation(c, "Invalid serviceId", "serviceId")
		return
	}

	var biz models.Business
	if err := h.db.First(&biz, "id = ?", businessID).Error; err != nil {
		httperr.Internal(c, "business_not_found", "Business not found.")
		return
	}

	date, err := parseDateInBusiness(&biz, dateStr)
	if err != nil {
		httperr.Validation(c, "date must be YYYY-MM-DD", "date")
		return
	}

	slots, err := h.uc.Execute(c.Request.Context(), businessID, serviceID, date)
	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_list_slots", "Failed to compute available slots.")
		return
	}

	httpresp.OK(c, slots)
}
