// Package testutil opens throwaway sqlite databases with the production schema.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/happypaws-scheduler/internal/db"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/models"
)

// NewDB returns a migrated in-memory database private to the test. A single
// connection serializes transactions the way row locks do on postgres.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	cfg := dbpkg.GormConfig()
	cfg.PrepareStmt = false

	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func SeedUser(t *testing.T, db *gorm.DB, role string) models.User {
	t.Helper()

	u := models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		Role:         role,
		JoinedAt:     "2025-01-01",
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedPet(t *testing.T, db *gorm.DB, ownerID string) models.Pet {
	t.Helper()

	p := models.Pet{
		OwnerID: ownerID,
		Name:    "Milo",
		Species: "Dog",
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed pet: %v", err)
	}
	return p
}
