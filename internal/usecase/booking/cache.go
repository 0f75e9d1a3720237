package booking

import (
	"context"

	"github.com/google/uuid"
)

// SlotCache é opcional (nil desliga o cache). Implementado por internal/cache.
type SlotCache interface {
	Get(ctx context.Context, businessID, serviceID uuid.UUID, date string) ([]string, bool)
	Set(ctx context.Context, businessID, serviceID uuid.UUID, date string, slots []string)
	InvalidateBusiness(ctx context.Context, businessID uuid.UUID)
}
