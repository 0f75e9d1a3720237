package schedule

import (
	"github.com/google/uuid"
)

// Entrada do caminho de escrita. CustomerID nulo = resolver por
// (businessId, phone), criando o cliente se não existir.
type BookingInput struct {
	BusinessID uuid.UUID
	ServiceID  uuid.UUID

	CustomerID    *uuid.UUID
	CustomerName  string
	CustomerPhone string

	Slot Interval
}
