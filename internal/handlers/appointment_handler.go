package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/booking-api/internal/domain/schedule"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/httpresp"
	"github.com/BruksfildServices01/booking-api/internal/middleware"
	"github.com/BruksfildServices01/booking-api/internal/models"
	booking "github.com/BruksfildServices01/booking-api/internal/usecase/booking"
)

// Mensagens fixas de conflito: o cliente distingue os dois casos pelo texto.
const (
	MsgOwnerAbsent = "Business owner is absent during this time."
	MsgSlotTaken   = "Time slot already booked."
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db       *gorm.DB
	createUC *booking.CreateAppointment
	statusUC *booking.UpdateAppointmentStatus
}

func NewAppointmentHandler(
	db *gorm.DB,
	createUC *booking.CreateAppointment,
	statusUC *booking.UpdateAppointmentStatus,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:       db,
		createUC: createUC,
		statusUC: statusUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	StartAt       time.Time  `json:"startAt" binding:"required"`
	EndAt         time.Time  `json:"endAt" binding:"required"`
	ServiceID     uuid.UUID  `json:"serviceId" binding:"required"`
	CustomerID    *uuid.UUID `json:"customerId"`
	CustomerName  string     `json:"customerName"`
	CustomerPhone string     `json:"customerPhone"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	businessID := c.MustGet(middleware.ContextBusinessID).(uuid.UUID)

	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), booking.CreateAppointmentInput{
		BusinessID:    businessID,
		ActorID:       &userID,
		StartAt:       req.StartAt,
		EndAt:         req.EndAt,
		ServiceID:     req.ServiceID,
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "owner_absent"):
			httperr.Conflict(c, "owner_absent", MsgOwnerAbsent)
		case httperr.IsBusiness(err, "slot_taken"):
			httperr.Conflict(c, "slot_taken", MsgSlotTaken)
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.Validation(c, "Service not found", "serviceId")
		case httperr.IsBusiness(err, "service_inactive"):
			httperr.Validation(c, "Service is inactive", "serviceId")
		case httperr.IsBusiness(err, "invalid_interval"):
			httperr.Validation(c, "endAt must be after startAt", "endAt")
		case httperr.IsBusiness(err, "missing_customer"):
			httperr.Validation(c, "customerId or customerName+customerPhone required", "customerId")
		case httperr.IsBusiness(err, "customer_not_found"):
			httperr.Validation(c, "Customer not found", "customerId")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Failed to create appointment.")
		}
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	businessID := c.MustGet(middleware.ContextBusinessID).(uuid.UUID)

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Validation(c, "Invalid appointment id", "id")
		return
	}

	var req UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.statusUC.Execute(
		c.Request.Context(),
		businessID,
		&userID,
		appointmentID,
		domain.Status(req.Status),
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.Validation(c, "Unknown status", "status")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Appointment cannot change to this status.")
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		case httperr.IsBusiness(err, "slot_taken"):
			httperr.Conflict(c, "slot_taken", MsgSlotTaken)
		default:
			httperr.Internal(c, "failed_to_update_status", "Failed to update appointment status.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uuid.UUID)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.Validation(c, "date is required", "date")
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

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24 * time.Hour)

	var aps []models.Appointment
	if err := h.db.
		Preload("Customer").
		Preload("Service").
		Where(
			"business_id = ? AND start_at >= ? AND start_at < ?",
			businessID, start, end,
		).
		Order("start_at ASC").
		Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments.")
		return
	}

	httpresp.OK(c, aps)
}
