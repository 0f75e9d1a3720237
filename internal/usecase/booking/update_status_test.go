package booking

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/booking-api/internal/domain/schedule"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/models"
)

func seedAppointment(repo *fakeRepo, businessID, serviceID uuid.UUID, status domain.Status) *models.Appointment {
	ap := &models.Appointment{
		ID:         uuid.New(),
		BusinessID: businessID,
		ServiceID:  serviceID,
		CustomerID: uuid.New(),
		StartAt:    at(9, 0),
		EndAt:      at(10, 0),
		Status:     string(status),
	}
	repo.appointments = append(repo.appointments, ap)
	return ap
}

func TestUpdateStatusCancel(t *testing.T) {
	repo, businessID, serviceID := seedRepo()
	ap := seedAppointment(repo, businessID, serviceID, domain.StatusConfirmed)

	uc := NewUpdateAppointmentStatus(repo, nil, nil)
	updated, err := uc.Execute(context.Background(), businessID, nil, ap.ID, domain.StatusCanceled)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCanceled), updated.Status)
}

func TestUpdateStatusConfirmPending(t *testing.T) {
	repo, businessID, serviceID := seedRepo()
	ap := seedAppointment(repo, businessID, serviceID, domain.StatusPending)

	uc := NewUpdateAppointmentStatus(repo, nil, nil)
	updated, err := uc.Execute(context.Background(), businessID, nil, ap.ID, domain.StatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), updated.Status)
}

// Confirmar um PENDING cuja janela foi ocupada nesse meio-tempo tem que
// falhar: confirmar é reservar.
func TestUpdateStatusConfirmConflicts(t *testing.T) {
	repo, businessID, serviceID := seedRepo()
	pending := seedAppointment(repo, businessID, serviceID, domain.StatusPending)

	taken := seedAppointment(repo, businessID, serviceID, domain.StatusConfirmed)
	taken.StartAt = at(9, 30)
	taken.EndAt = at(10, 30)

	uc := NewUpdateAppointmentStatus(repo, nil, nil)
	_, err := uc.Execute(context.Background(), businessID, nil, pending.ID, domain.StatusConfirmed)

	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
}

func TestUpdateStatusTerminalState(t *testing.T) {
	repo, businessID, serviceID := seedRepo()
	ap := seedAppointment(repo, businessID, serviceID, domain.StatusCanceled)

	uc := NewUpdateAppointmentStatus(repo, nil, nil)
	_, err := uc.Execute(context.Background(), businessID, nil, ap.ID, domain.StatusConfirmed)

	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestUpdateStatusUnknownAppointment(t *testing.T) {
	repo, businessID, _ := seedRepo()

	uc := NewUpdateAppointmentStatus(repo, nil, nil)
	_, err := uc.Execute(context.Background(), businessID, nil, uuid.New(), domain.StatusCanceled)

	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestUpdateStatusInvalidValue(t *testing.T) {
	repo, businessID, serviceID := seedRepo()
	ap := seedAppointment(repo, businessID, serviceID, domain.StatusConfirmed)

	uc := NewUpdateAppointmentStatus(repo, nil, nil)
	_, err := uc.Execute(context.Background(), businessID, nil, ap.ID, domain.Status("SCHEDULED"))

	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

// Cancelar libera a janela para novo agendamento.
func TestCancelFreesSlot(t *testing.T) {
	repo, businessID, serviceID := seedRepo()
	ap := seedAppointment(repo, businessID, serviceID, domain.StatusConfirmed)

	update := NewUpdateAppointmentStatus(repo, nil, nil)
	_, err := update.Execute(context.Background(), businessID, nil, ap.ID, domain.StatusCanceled)
	require.NoError(t, err)

	create := NewCreateAppointment(repo, nil, nil)
	_, err = create.Execute(context.Background(), CreateAppointmentInput{
		BusinessID:    businessID,
		StartAt:       at(9, 0),
		EndAt:         at(9, 30),
		ServiceID:     serviceID,
		CustomerName:  "Maria",
		CustomerPhone: "+5511999990000",
	})

	assert.NoError(t, err)
}
