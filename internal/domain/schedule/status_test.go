package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/booking-api/internal/httperr"
)

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCanceled, StatusCompleted, StatusNoShow} {
		assert.True(t, s.IsValid())
	}
	assert.False(t, Status("SCHEDULED").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestOnlyConfirmedBlocks(t *testing.T) {
	assert.True(t, StatusConfirmed.Blocks())

	for _, s := range []Status{StatusPending, StatusCanceled, StatusCompleted, StatusNoShow} {
		assert.False(t, s.Blocks())
	}
}

func TestCanTransition(t *testing.T) {
	assert.NoError(t, CanTransition(StatusPending, StatusConfirmed))
	assert.NoError(t, CanTransition(StatusPending, StatusCanceled))
	assert.NoError(t, CanTransition(StatusConfirmed, StatusCanceled))
	assert.NoError(t, CanTransition(StatusConfirmed, StatusCompleted))
	assert.NoError(t, CanTransition(StatusConfirmed, StatusNoShow))

	// terminais não saem do lugar
	for _, from := range []Status{StatusCanceled, StatusCompleted, StatusNoShow} {
		for _, to := range []Status{StatusPending, StatusConfirmed, StatusCanceled, StatusCompleted, StatusNoShow} {
			err := CanTransition(from, to)
			assert.True(t, httperr.IsBusiness(err, "invalid_state"))
		}
	}

	assert.Error(t, CanTransition(StatusPending, StatusCompleted))
}
