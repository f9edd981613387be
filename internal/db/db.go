package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/config"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/models"
)

// GormConfig is shared by the postgres connection and the test databases.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		// Appointments outlive deleted pets, so no FK from appointments.pet_id.
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}
}

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), GormConfig())
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	slog.Info("database ready")
	return db, nil
}

// Migrate creates the schema. The partial unique index is the storage-level
// guard for the one-active-appointment-per-slot rule; the syntax is shared
// by postgres and sqlite.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Pet{},
		&models.Vaccine{},
		&models.MedicalRecord{},
		&models.Aftercare{},
		&models.Appointment{},
		&models.UserAppointment{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
        ON appointments (appointment_date, appointment_time)
        WHERE status <> 'Cancelled'
    `).Error; err != nil {
		return fmt.Errorf("create slot index: %w", err)
	}

	return nil
}
