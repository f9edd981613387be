package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/happypaws-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/httperr"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Pet
// --------------------------------------------------

func (r *AppointmentGormRepository) GetPet(
	ctx context.Context,
	petID string,
) (*models.Pet, error) {

	var pet models.Pet
	if err := r.db.WithContext(ctx).
		Where("id = ?", petID).
		First(&pet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("pet_not_found")
		}
		return nil, err
	}
	return &pet, nil
}

// --------------------------------------------------
// Appointment (create / move)
// --------------------------------------------------

// assertSlotFree locks the active rows of the slot. Postgres cannot lock a
// row that does not exist yet, so a concurrent insert into an empty slot is
// caught by idx_appointments_active_slot instead.
func assertSlotFree(tx *gorm.DB, date, hm, exceptID string) error {
	q := tx.
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"appointment_date = ? AND appointment_time = ? AND status <> ?",
			date, hm, string(domain.StatusCancelled),
		)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}

	var conflicts []models.Appointment
	if err := q.Select("id").Find(&conflicts).Error; err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return httperr.ErrConflict("slot_already_booked")
	}
	return nil
}

func slotError(err error) error {
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrConflict("slot_already_booked")
	}
	return err
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertSlotFree(tx, ap.Date, ap.Time, ""); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(ap).Error; err != nil {
			return err
		}

		link := models.UserAppointment{
			UserID:        ap.OwnerID,
			AppointmentID: ap.ID,
		}
		return tx.Create(&link).Error
	})

	return slotError(err)
}

func (r *AppointmentGormRepository) MoveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if domain.Status(ap.Status).Active() {
			if err := assertSlotFree(tx, ap.Date, ap.Time, ap.ID); err != nil {
				return err
			}
		}
		return tx.Omit(clause.Associations).Save(ap).Error
	})

	return slotError(err)
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Pet").
		Where("id = ?", appointmentID).
		First(&ap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment_not_found")
		}
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(ap).Error
	return slotError(err)
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	appointmentID string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("appointment_id = ?", appointmentID).
			Delete(&models.UserAppointment{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", appointmentID).Delete(&models.Appointment{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrNotFound("appointment_not_found")
		}
		return nil
	})
}

// --------------------------------------------------
// Queries
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if f.OwnerID != "" {
		q = q.Where("owner_id = ?", f.OwnerID)
	}
	if f.PetID != "" {
		q = q.Where("pet_id = ?", f.PetID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}
	if f.ExcludeCancelled {
		q = q.Where("status <> ?", string(domain.StatusCancelled))
	}
	if f.Date != "" {
		q = q.Where("appointment_date = ?", f.Date)
	}
	// YYYY-MM-DD strings order the same way as the dates they encode.
	if f.FromDate != "" {
		q = q.Where("appointment_date >= ?", f.FromDate)
	}
	if f.ToDate != "" {
		q = q.Where("appointment_date <= ?", f.ToDate)
	}
	if f.BeforeDate != "" {
		q = q.Where("appointment_date < ?", f.BeforeDate)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var apps []models.Appointment
	if err := q.
		Preload("Pet").
		Order("appointment_date ASC").
		Order("appointment_time ASC").
		Find(&apps).Error; err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *AppointmentGormRepository) ListBookedTimes(
	ctx context.Context,
	date string,
) ([]string, error) {

	times := []string{}
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"appointment_date = ? AND status <> ?",
			date, string(domain.StatusCancelled),
		).
		Order("appointment_time ASC").
		Pluck("appointment_time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
