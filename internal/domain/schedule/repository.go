package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/booking-api/internal/models"
)

type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		businessID uuid.UUID,
		serviceID uuid.UUID,
	) (*models.Service, error)

	// -------- Availability (leituras consultivas) --------
	GetWorkingDay(
		ctx context.Context,
		businessID uuid.UUID,
		weekday int,
	) (*models.WorkingDay, error)

	ListConfirmedAppointments(
		ctx context.Context,
		businessID uuid.UUID,
		window Interval,
	) ([]models.Appointment, error)

	ListAbsencesOverlapping(
		ctx context.Context,
		businessID uuid.UUID,
		window Interval,
	) ([]models.Absence, error)

	// -------- Booking (caminho de escrita, transacional) --------
	CommitBooking(
		ctx context.Context,
		in BookingInput,
	) (*models.Appointment, error)

	// -------- Appointment (mudança de status) --------
	GetAppointment(
		ctx context.Context,
		businessID uuid.UUID,
		appointmentID uuid.UUID,
	) (*models.Appointment, error)

	TransitionStatus(
		ctx context.Context,
		ap *models.Appointment,
		to Status,
	) error
}
