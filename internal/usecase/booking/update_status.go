package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booking-api/internal/audit"
	domain "github.com/BruksfildServices01/booking-api/internal/domain/schedule"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/metrics"
	"github.com/BruksfildServices01/booking-api/internal/models"
)

type UpdateAppointmentStatus struct {
	repo  domain.Repository
	cache SlotCache
	audit *audit.Dispatcher
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	cache SlotCache,
	auditDispatcher *audit.Dispatcher,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		cache: cache,
		audit: auditDispatcher,
	}
}

// Agendamentos nunca são apagados: o histórico vive nas transições.
func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	businessID uuid.UUID,
	actorID *uuid.UUID,
	appointmentID uuid.UUID,
	to domain.Status,
) (*models.Appointment, error) {

	if !to.IsValid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap, err := uc.repo.GetAppointment(ctx, businessID, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	if err := domain.CanTransition(domain.Status(ap.Status), to); err != nil {
		return nil, err
	}

	if err := uc.repo.TransitionStatus(ctx, ap, to); err != nil {
		return nil, err
	}

	metrics.StatusTransitions.WithLabelValues(string(to)).Inc()

	if uc.cache != nil {
		uc.cache.InvalidateBusiness(ctx, businessID)
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			BusinessID: businessID,
			UserID:     actorID,
			Action:     "appointment_status_changed",
			Entity:     "appointment",
			EntityID:   &ap.ID,
			Metadata:   map[string]any{"to": string(to)},
		})
	}

	return ap, nil
}
