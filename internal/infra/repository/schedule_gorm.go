package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/booking-api/internal/domain/schedule"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *ScheduleGormRepository) GetService(
	ctx context.Context,
	businessID uuid.UUID,
	serviceID uuid.UUID,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", serviceID, businessID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *ScheduleGormRepository) GetWorkingDay(
	ctx context.Context,
	businessID uuid.UUID,
	weekday int,
) (*models.WorkingDay, error) {

	var wd models.WorkingDay
	if err := r.db.WithContext(ctx).
		Where("business_id = ? AND day_of_week = ?", businessID, weekday).
		First(&wd).Error; err != nil {
		return nil, err
	}

	return &wd, nil
}

func (r *ScheduleGormRepository) ListConfirmedAppointments(
	ctx context.Context,
	businessID uuid.UUID,
	window domain.Interval,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "start_at", "end_at", "status").
		Where(
			"business_id = ? AND status = ? AND start_at < ? AND end_at > ?",
			businessID, string(domain.StatusConfirmed), window.End, window.Start,
		).
		Order("start_at ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *ScheduleGormRepository) ListAbsencesOverlapping(
	ctx context.Context,
	businessID uuid.UUID,
	window domain.Interval,
) ([]models.Absence, error) {

	var abs []models.Absence
	if err := r.db.WithContext(ctx).
		Where(
			"business_id = ? AND start_date < ? AND (end_date IS NULL OR end_date > ?)",
			businessID, window.End, window.Start,
		).
		Order("start_date ASC").
		Find(&abs).Error; err != nil {
		return nil, err
	}

	return abs, nil
}

// --------------------------------------------------
// Booking (caminho de escrita)
// --------------------------------------------------

// CommitBooking roda check-then-act em UMA transação: lock das linhas
// conflitantes, validação de ausência e de sobreposição, resolução do
// cliente e insert. A exclusion constraint no banco segura o resto.
func (r *ScheduleGormRepository) CommitBooking(
	ctx context.Context,
	in domain.BookingInput,
) (*models.Appointment, error) {

	var created *models.Appointment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// 1. ausência (EndDate nulo bloqueia a partir de StartDate)
		var absences int64
		if err := tx.
			Model(&models.Absence{}).
			Where(
				"business_id = ? AND start_date < ? AND (end_date IS NULL OR end_date > ?)",
				in.BusinessID, in.Slot.End, in.Slot.Start,
			).
			Count(&absences).Error; err != nil {
			return err
		}
		if absences > 0 {
			return httperr.ErrBusiness("owner_absent")
		}

		// 2. sobreposição com CONFIRMED, com lock pessimista
		var conflicts int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"business_id = ? AND status = ? AND start_at < ? AND end_at > ?",
				in.BusinessID, string(domain.StatusConfirmed), in.Slot.End, in.Slot.Start,
			).
			Count(&conflicts).Error; err != nil {
			return err
		}
		if conflicts > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		// 3. cliente
		customer, err := r.resolveCustomer(tx, in)
		if err != nil {
			return err
		}

		// 4. insert CONFIRMED
		ap := models.Appointment{
			BusinessID: in.BusinessID,
			CustomerID: customer.ID,
			ServiceID:  in.ServiceID,
			StartAt:    in.Slot.Start,
			EndAt:      in.Slot.End,
			Status:     string(domain.InitialStatus()),
		}

		if err := tx.Create(&ap).Error; err != nil {
			if httperr.IsExclusionConflict(err) {
				return httperr.ErrBusiness("slot_taken")
			}
			return err
		}

		created = &ap
		return nil
	})

	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *ScheduleGormRepository) resolveCustomer(
	tx *gorm.DB,
	in domain.BookingInput,
) (*models.Customer, error) {

	if in.CustomerID != nil {
		var customer models.Customer
		if err := tx.
			Where("id = ? AND business_id = ?", *in.CustomerID, in.BusinessID).
			First(&customer).Error; err != nil {
			return nil, httperr.ErrBusiness("customer_not_found")
		}
		return &customer, nil
	}

	var customer models.Customer
	err := tx.
		Where("business_id = ? AND phone = ?", in.BusinessID, in.CustomerPhone).
		First(&customer).Error

	if err == nil {
		return &customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	customer = models.Customer{
		BusinessID: in.BusinessID,
		Name:       in.CustomerName,
		Phone:      in.CustomerPhone,
	}

	if err := tx.Create(&customer).Error; err != nil {
		// corrida no unique (business_id, phone): outro request criou antes
		if httperr.IsUniqueViolation(err) {
			if lookupErr := tx.
				Where("business_id = ? AND phone = ?", in.BusinessID, in.CustomerPhone).
				First(&customer).Error; lookupErr == nil {
				return &customer, nil
			}
		}
		return nil, err
	}

	return &customer, nil
}

// --------------------------------------------------
// Appointment (mudança de status)
// --------------------------------------------------

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	businessID uuid.UUID,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", appointmentID, businessID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

// TransitionStatus persiste a mudança. Confirmação (PENDING → CONFIRMED)
// revalida sobreposição dentro da transação, senão um PENDING confirmado
// tarde furaria o invariante do committer.
func (r *ScheduleGormRepository) TransitionStatus(
	ctx context.Context,
	ap *models.Appointment,
	to domain.Status,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if to == domain.StatusConfirmed {
			var conflicts int64
			if err := tx.
				Model(&models.Appointment{}).
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where(
					"business_id = ? AND id <> ? AND status = ? AND start_at < ? AND end_at > ?",
					ap.BusinessID, ap.ID, string(domain.StatusConfirmed), ap.EndAt, ap.StartAt,
				).
				Count(&conflicts).Error; err != nil {
				return err
			}
			if conflicts > 0 {
				return httperr.ErrBusiness("slot_taken")
			}
		}

		ap.Status = string(to)

		if err := tx.Save(ap).Error; err != nil {
			if httperr.IsExclusionConflict(err) {
				return httperr.ErrBusiness("slot_taken")
			}
			return err
		}

		return nil
	})
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
