package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/httperr"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *AccountGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrConflict("email_already_exists")
	}
	return err
}

func (r *AccountGormRepository) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("user_not_found")
		}
		return nil, err
	}
	return &u, nil
}

func (r *AccountGormRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("user_not_found")
		}
		return nil, err
	}
	return &u, nil
}

// DeleteUserCascade removes the user with everything they own. Every step
// runs in one transaction, so a failure leaves the user untouched.
func (r *AccountGormRepository) DeleteUserCascade(ctx context.Context, userID string) (CascadeResult, error) {
	var res CascadeResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrNotFound("user_not_found")
			}
			return err
		}

		var appointmentIDs []string
		if err := tx.Model(&models.Appointment{}).
			Where("owner_id = ?", userID).
			Pluck("id", &appointmentIDs).Error; err != nil {
			return fmt.Errorf("list appointments: %w", err)
		}

		if err := tx.
			Where("user_id = ?", userID).
			Delete(&models.UserAppointment{}).Error; err != nil {
			return fmt.Errorf("delete appointment links: %w", err)
		}
		if len(appointmentIDs) > 0 {
			if err := tx.
				Where("appointment_id IN ?", appointmentIDs).
				Delete(&models.UserAppointment{}).Error; err != nil {
				return fmt.Errorf("delete appointment links: %w", err)
			}
		}

		del := tx.Where("owner_id = ?", userID).Delete(&models.Appointment{})
		if del.Error != nil {
			return fmt.Errorf("delete appointments: %w", del.Error)
		}
		res.Appointments = del.RowsAffected

		var petIDs []string
		if err := tx.Model(&models.Pet{}).
			Where("owner_id = ?", userID).
			Pluck("id", &petIDs).Error; err != nil {
			return fmt.Errorf("list pets: %w", err)
		}

		for _, petID := range petIDs {
			n, err := deletePetRecords(tx, petID)
			if err != nil {
				return err
			}
			res.PetRecords += n
		}

		del = tx.Where("owner_id = ?", userID).Delete(&models.Pet{})
		if del.Error != nil {
			return fmt.Errorf("delete pets: %w", del.Error)
		}
		res.Pets = del.RowsAffected

		return tx.Delete(&user).Error
	})

	return res, err
}

// --------------------------------------------------
// Pets
// --------------------------------------------------

func (r *AccountGormRepository) CreatePet(ctx context.Context, p *models.Pet) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *AccountGormRepository) ListPetsByOwner(ctx context.Context, ownerID string) ([]models.Pet, error) {
	var pets []models.Pet
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

// DeletePetCascade removes the pet and its records. Appointments that
// reference the pet are kept.
func (r *AccountGormRepository) DeletePetCascade(ctx context.Context, petID string) (CascadeResult, error) {
	var res CascadeResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := deletePetRecords(tx, petID)
		if err != nil {
			return err
		}
		res.PetRecords = n

		del := tx.Where("id = ?", petID).Delete(&models.Pet{})
		if del.Error != nil {
			return del.Error
		}
		if del.RowsAffected == 0 {
			return httperr.ErrNotFound("pet_not_found")
		}
		res.Pets = del.RowsAffected
		return nil
	})

	return res, err
}

type CascadeResult struct {
	Appointments int64 `json:"appointments"`
	Pets         int64 `json:"pets"`
	PetRecords   int64 `json:"pet_records"`
}

func deletePetRecords(tx *gorm.DB, petID string) (int64, error) {
	var total int64
	for _, model := range []any{&models.Vaccine{}, &models.MedicalRecord{}, &models.Aftercare{}} {
		del := tx.Where("pet_id = ?", petID).Delete(model)
		if del.Error != nil {
			return 0, fmt.Errorf("delete pet records: %w", del.Error)
		}
		total += del.RowsAffected
	}
	return total, nil
}
