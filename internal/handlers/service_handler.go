package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/httpresp"
	"github.com/BruksfildServices01/booking-api/internal/middleware"
	"github.com/BruksfildServices01/booking-api/internal/models"
	booking "github.com/BruksfildServices01/booking-api/internal/usecase/booking"
)

type ServiceHandler struct {
	db    *gorm.DB
	cache booking.SlotCache
}

func NewServiceHandler(db *gorm.DB, cache booking.SlotCache) *ServiceHandler {
	return &ServiceHandler{db: db, cache: cache}
}

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	DurationMin int     `json:"durationMinutes" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"gte=0"`
	Active      *bool   `json:"active"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	DurationMin *int     `json:"durationMinutes"`
	Price       *float64 `json:"price"`
	Active      *bool    `json:"active"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uuid.UUID)

	var services []models.Service
	if err := h.db.
		Where("business_id = ?", businessID).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	httpresp.OK(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uuid.UUID)

	var req CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	svc := models.Service{
		BusinessID:  businessID,
		Name:        req.Name,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Active:      active,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Failed to create service.")
		return
	}

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uuid.UUID)

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Validation(c, "Invalid service id", "id")
		return
	}

	var svc models.Service
	if err := h.db.
		Where("id = ? AND business_id = ?", serviceID, businessID).
		First(&svc).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var req UpdateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			httperr.Validation(c, "Name must not be empty", "name")
			return
		}
		svc.Name = *req.Name
	}
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			httperr.Validation(c, "Duration must be positive", "durationMinutes")
			return
		}
		svc.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Failed to update service.")
		return
	}

	// duração/ativo mudam a lista de slots em cache
	if h.cache != nil {
		h.cache.InvalidateBusiness(c.Request.Context(), businessID)
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uuid.UUID)

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Validation(c, "Invalid service id", "id")
		return
	}

	res := h.db.
		Where("id = ? AND business_id = ?", serviceID, businessID).
		Delete(&models.Service{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Failed to delete service.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	if h.cache != nil {
		h.cache.InvalidateBusiness(c.Request.Context(), businessID)
	}

	c.Status(http.StatusNoContent)
}
