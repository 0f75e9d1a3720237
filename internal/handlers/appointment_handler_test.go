package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/booking-api/internal/middleware"
)

// Consulta que falha devolve 500, não 200 com lista vazia.
func TestListByDateQueryFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb, mock := newMockGorm(t)

	businessID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "businesses"`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "timezone"}).
			AddRow(businessID, "UTC"))
	mock.ExpectQuery(`SELECT \* FROM "appointments"`).
		WillReturnError(errors.New("connection refused"))

	h := NewAppointmentHandler(gdb, nil, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/appointments?date=2024-06-05", nil)
	c.Set(middleware.ContextBusinessID, businessID)

	h.ListByDate(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
