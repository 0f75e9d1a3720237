package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/booking-api/internal/domain/schedule"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
)

func newMockRepo(t *testing.T) (*ScheduleGormRepository, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewScheduleGormRepository(gdb), mock
}

func slot(h, m int, d time.Duration) domain.Interval {
	start := time.Date(2024, 6, 5, h, m, 0, 0, time.UTC)
	return domain.NewInterval(start, start.Add(d))
}

// Ausência vigente aborta a transação antes de qualquer lock.
func TestCommitBookingOwnerAbsent(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "absences"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := repo.CommitBooking(context.Background(), domain.BookingInput{
		BusinessID:    uuid.New(),
		ServiceID:     uuid.New(),
		CustomerName:  "Maria",
		CustomerPhone: "+5511999990000",
		Slot:          slot(9, 0, 30*time.Minute),
	})

	assert.True(t, httperr.IsBusiness(err, "owner_absent"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Sobreposição com CONFIRMED dentro da janela devolve slot_taken e
// desfaz a transação.
func TestCommitBookingSlotTaken(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "absences"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments".*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := repo.CommitBooking(context.Background(), domain.BookingInput{
		BusinessID:    uuid.New(),
		ServiceID:     uuid.New(),
		CustomerName:  "Maria",
		CustomerPhone: "+5511999990000",
		Slot:          slot(9, 0, 30*time.Minute),
	})

	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListConfirmedAppointmentsWindow(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New()
	start := time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT "id","start_at","end_at","status" FROM "appointments"`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "start_at", "end_at", "status"}).
			AddRow(id, start, start.Add(time.Hour), "CONFIRMED"))

	aps, err := repo.ListConfirmedAppointments(
		context.Background(),
		uuid.New(),
		slot(9, 0, 8*time.Hour),
	)

	require.NoError(t, err)
	require.Len(t, aps, 1)
	assert.Equal(t, id, aps[0].ID)
	assert.Equal(t, start, aps[0].StartAt.UTC())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAbsencesOverlappingIncludesOpenEnded(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New()
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "absences"`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "business_id", "start_date", "end_date"}).
			AddRow(id, uuid.New(), start, nil))

	abs, err := repo.ListAbsencesOverlapping(
		context.Background(),
		uuid.New(),
		slot(9, 0, 8*time.Hour),
	)

	require.NoError(t, err)
	require.Len(t, abs, 1)
	assert.Nil(t, abs[0].EndDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
