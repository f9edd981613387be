package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pet-owned records. The scheduler only ever deletes them as part of
// user/pet cascades.

type Vaccine struct {
	ID               string `gorm:"type:uuid;primaryKey" json:"id"`
	PetID            string `gorm:"type:uuid;not null;index" json:"pet_id"`
	Name             string `gorm:"size:100;not null" json:"name"`
	DateAdministered string `gorm:"size:10" json:"date_administered"`
	NextDueDate      string `gorm:"size:10" json:"next_due_date"`

	CreatedAt time.Time `json:"created_at"`
}

type MedicalRecord struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	PetID     string `gorm:"type:uuid;not null;index" json:"pet_id"`
	Diagnosis string `gorm:"size:255" json:"diagnosis"`
	Treatment string `gorm:"size:255" json:"treatment"`
	VisitDate string `gorm:"size:10" json:"visit_date"`

	CreatedAt time.Time `json:"created_at"`
}

type Aftercare struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	PetID     string `gorm:"type:uuid;not null;index" json:"pet_id"`
	Type      string `gorm:"size:50" json:"type"`
	StartDate string `gorm:"size:10" json:"start_date"`
	EndDate   string `gorm:"size:10" json:"end_date"`
	Notes     string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

func (v *Vaccine) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

func (m *MedicalRecord) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (a *Aftercare) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
