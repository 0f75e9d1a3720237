package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booking-api/internal/audit"
	domain "github.com/BruksfildServices01/booking-api/internal/domain/schedule"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/metrics"
	"github.com/BruksfildServices01/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BusinessID uuid.UUID
	ActorID    *uuid.UUID

	StartAt time.Time
	EndAt   time.Time

	ServiceID uuid.UUID

	CustomerID    *uuid.UUID
	CustomerName  string
	CustomerPhone string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	cache SlotCache
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	cache SlotCache,
	auditDispatcher *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		cache: cache,
		audit: auditDispatcher,
	}
}

// Execute é o committer: nunca confia em lista de slots vinda do cliente.
// Toda a validação de conflito acontece de novo, dentro da transação do
// repositório.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	slot := domain.NewInterval(in.StartAt, in.EndAt)
	if !slot.IsValid() {
		return nil, httperr.ErrBusiness("invalid_interval")
	}

	service, err := uc.repo.GetService(ctx, in.BusinessID, in.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}
	if !service.Active {
		return nil, httperr.ErrBusiness("service_inactive")
	}

	if in.CustomerID == nil && (in.CustomerName == "" || in.CustomerPhone == "") {
		return nil, httperr.ErrBusiness("missing_customer")
	}

	ap, err := uc.repo.CommitBooking(ctx, domain.BookingInput{
		BusinessID:    in.BusinessID,
		ServiceID:     service.ID,
		CustomerID:    in.CustomerID,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Slot:          slot,
	})
	if err != nil {
		if httperr.IsBusiness(err, "owner_absent") {
			metrics.BookingConflicts.WithLabelValues("owner_absent").Inc()
		}
		if httperr.IsBusiness(err, "slot_taken") {
			metrics.BookingConflicts.WithLabelValues("slot_taken").Inc()
		}
		return nil, err
	}

	metrics.BookingsCreated.Inc()

	if uc.cache != nil {
		uc.cache.InvalidateBusiness(ctx, in.BusinessID)
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			BusinessID: in.BusinessID,
			UserID:     in.ActorID,
			Action:     "appointment_created",
			Entity:     "appointment",
			EntityID:   &ap.ID,
		})
	}

	return ap, nil
}
