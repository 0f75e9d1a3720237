package schedule

import "github.com/BruksfildServices01/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCanceled  Status = "CANCELED"
	StatusCompleted Status = "COMPLETED"
	StatusNoShow    Status = "NO_SHOW"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

// Blocks indica se o agendamento ocupa a agenda. Só CONFIRMED bloqueia;
// os demais status são históricos.
func (s Status) Blocks() bool {
	return s == StatusConfirmed
}

// ===============================
// Transições
// ===============================

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCanceled},
	StatusConfirmed: {StatusCanceled, StatusCompleted, StatusNoShow},
}

// CanTransition valida a mudança de status. Status terminais
// (CANCELED, COMPLETED, NO_SHOW) não saem do lugar.
func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state")
}

func InitialStatus() Status {
	return StatusConfirmed
}
