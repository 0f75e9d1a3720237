package booking

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/booking-api/internal/domain/schedule"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/models"
)

// fakeRepo simula o repositório em memória. O mutex faz o papel da
// transação serializada do banco no caminho de escrita.
type fakeRepo struct {
	mu sync.Mutex

	services     map[uuid.UUID]*models.Service
	workingDays  map[int]*models.WorkingDay
	customers    []*models.Customer
	appointments []*models.Appointment
	absences     []*models.Absence
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services:    map[uuid.UUID]*models.Service{},
		workingDays: map[int]*models.WorkingDay{},
	}
}

func (f *fakeRepo) GetService(ctx context.Context, businessID, serviceID uuid.UUID) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if svc, ok := f.services[serviceID]; ok && svc.BusinessID == businessID {
		return svc, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetWorkingDay(ctx context.Context, businessID uuid.UUID, weekday int) (*models.WorkingDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if wd, ok := f.workingDays[weekday]; ok {
		return wd, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListConfirmedAppointments(
	ctx context.Context,
	businessID uuid.UUID,
	window domain.Interval,
) ([]models.Appointment, error) {

	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BusinessID != businessID || !domain.Status(ap.Status).Blocks() {
			continue
		}
		if domain.NewInterval(ap.StartAt, ap.EndAt).Overlaps(window) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAbsencesOverlapping(
	ctx context.Context,
	businessID uuid.UUID,
	window domain.Interval,
) ([]models.Absence, error) {

	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Absence
	for _, a := range f.absences {
		if a.BusinessID != businessID {
			continue
		}
		if a.StartDate.Before(window.End) && (a.EndDate == nil || a.EndDate.After(window.Start)) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeRepo) CommitBooking(
	ctx context.Context,
	in domain.BookingInput,
) (*models.Appointment, error) {

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, a := range f.absences {
		if a.BusinessID != in.BusinessID {
			continue
		}
		if a.StartDate.Before(in.Slot.End) && (a.EndDate == nil || a.EndDate.After(in.Slot.Start)) {
			return nil, httperr.ErrBusiness("owner_absent")
		}
	}

	for _, ap := range f.appointments {
		if ap.BusinessID != in.BusinessID || !domain.Status(ap.Status).Blocks() {
			continue
		}
		if domain.NewInterval(ap.StartAt, ap.EndAt).Overlaps(in.Slot) {
			return nil, httperr.ErrBusiness("slot_taken")
		}
	}

	customer, err := f.resolveCustomerLocked(in)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ID:         uuid.New(),
		BusinessID: in.BusinessID,
		CustomerID: customer.ID,
		ServiceID:  in.ServiceID,
		StartAt:    in.Slot.Start,
		EndAt:      in.Slot.End,
		Status:     string(domain.InitialStatus()),
	}
	f.appointments = append(f.appointments, ap)

	out := *ap
	return &out, nil
}

func (f *fakeRepo) resolveCustomerLocked(in domain.BookingInput) (*models.Customer, error) {
	if in.CustomerID != nil {
		for _, c := range f.customers {
			if c.ID == *in.CustomerID && c.BusinessID == in.BusinessID {
				return c, nil
			}
		}
		return nil, httperr.ErrBusiness("customer_not_found")
	}

	for _, c := range f.customers {
		if c.BusinessID == in.BusinessID && c.Phone == in.CustomerPhone {
			return c, nil
		}
	}

	c := &models.Customer{
		ID:         uuid.New(),
		BusinessID: in.BusinessID,
		Name:       in.CustomerName,
		Phone:      in.CustomerPhone,
	}
	f.customers = append(f.customers, c)
	return c, nil
}

func (f *fakeRepo) GetAppointment(
	ctx context.Context,
	businessID uuid.UUID,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ap := range f.appointments {
		if ap.ID == appointmentID && ap.BusinessID == businessID {
			out := *ap
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) TransitionStatus(
	ctx context.Context,
	ap *models.Appointment,
	to domain.Status,
) error {

	f.mu.Lock()
	defer f.mu.Unlock()

	if to == domain.StatusConfirmed {
		for _, other := range f.appointments {
			if other.BusinessID != ap.BusinessID || other.ID == ap.ID {
				continue
			}
			if !domain.Status(other.Status).Blocks() {
				continue
			}
			if domain.NewInterval(other.StartAt, other.EndAt).Overlaps(domain.NewInterval(ap.StartAt, ap.EndAt)) {
				return httperr.ErrBusiness("slot_taken")
			}
		}
	}

	for _, stored := range f.appointments {
		if stored.ID == ap.ID {
			stored.Status = string(to)
		}
	}
	ap.Status = string(to)
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)
