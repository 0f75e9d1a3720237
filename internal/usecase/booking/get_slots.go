package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/booking-api/internal/domain/schedule"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/metrics"
)

type GetAvailableSlots struct {
	repo  domain.Repository
	cache SlotCache
}

func NewGetAvailableSlots(repo domain.Repository, cache SlotCache) *GetAvailableSlots {
	return &GetAvailableSlots{repo: repo, cache: cache}
}

// Execute devolve os inícios livres ("HH:MM", ordem crescente) para a data.
// A data já chega interpretada no timezone do negócio.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	businessID uuid.UUID,
	serviceID uuid.UUID,
	date time.Time,
) ([]string, error) {

	metrics.SlotQueries.Inc()

	service, err := uc.repo.GetService(ctx, businessID, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	dateKey := date.Format("2006-01-02")

	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx, businessID, serviceID, dateKey); ok {
			metrics.SlotCacheHits.Inc()
			return cached, nil
		}
	}

	// sem expediente cadastrado = fechado; erro de storage sobe
	wd, err := uc.repo.GetWorkingDay(ctx, businessID, int(date.Weekday()))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []string{}, nil
		}
		return nil, err
	}

	window, ok := domain.ResolveWindow(wd, date)
	if !ok {
		return []string{}, nil
	}

	appointments, err := uc.repo.ListConfirmedAppointments(ctx, businessID, window)
	if err != nil {
		return nil, err
	}

	absences, err := uc.repo.ListAbsencesOverlapping(ctx, businessID, window)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(service.DurationMin) * time.Minute

	candidates := domain.GenerateSlots(window, duration)
	free := domain.FilterConflicts(candidates, duration, appointments, absences)
	out := domain.FormatSlots(free)

	if uc.cache != nil {
		uc.cache.Set(ctx, businessID, serviceID, dateKey, out)
	}

	return out, nil
}
