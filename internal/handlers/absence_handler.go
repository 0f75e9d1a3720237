package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booking-api/internal/audit"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/httpresp"
	"github.com/BruksfildServices01/booking-api/internal/middleware"
	"github.com/BruksfildServices01/booking-api/internal/models"
	booking "github.com/BruksfildServices01/booking-api/internal/usecase/booking"
)

type AbsenceHandler struct {
	db    *gorm.DB
	cache booking.SlotCache
	audit *audit.Dispatcher
}

func NewAbsenceHandler(db *gorm.DB, cache booking.SlotCache, auditDispatcher *audit.Dispatcher) *AbsenceHandler {
	return &AbsenceHandler{db: db, cache: cache, audit: auditDispatcher}
}

type CreateAbsenceRequest struct {
	StartDate time.Time  `json:"startDate" binding:"required"`
	EndDate   *time.Time `json:"endDate"`
	Reason    string     `json:"reason"`
}

func (h *AbsenceHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uuid.UUID)

	var absences []models.Absence
	if err := h.db.
		Where("business_id = ?", businessID).
		Order("start_date DESC").
		Find(&absences).Error; err != nil {
		httperr.Internal(c, "failed_to_list_absences", "Failed to list absences.")
		return
	}

	httpresp.OK(c, absences)
}

// Create: ausências são append-only; remoção não existe neste escopo.
func (h *AbsenceHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	businessID := c.MustGet(middleware.ContextBusinessID).(uuid.UUID)

	var req CreateAbsenceRequest
	if !bindJSON(c, &req) {
		return
	}

	if req.EndDate != nil && !req.StartDate.Before(*req.EndDate) {
		httperr.Validation(c, "endDate must be after startDate", "endDate")
		return
	}

	absence := models.Absence{
		BusinessID: businessID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
	}

	if err := h.db.Create(&absence).Error; err != nil {
		httperr.Internal(c, "failed_to_create_absence", "Failed to create absence.")
		return
	}

	if h.cache != nil {
		h.cache.InvalidateBusiness(c.Request.Context(), businessID)
	}

	h.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		UserID:     &userID,
		Action:     "absence_created",
		Entity:     "absence",
		EntityID:   &absence.ID,
	})

	httpresp.Created(c, absence)
}
