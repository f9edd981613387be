package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Date        string `gorm:"column:appointment_date;size:10;not null;index" json:"date"`
	Time        string `gorm:"column:appointment_time;size:5;not null" json:"time"`
	ServiceType string `gorm:"size:20;not null" json:"service_type"`
	Status      string `gorm:"size:20;not null;default:'Confirmed';index" json:"status"`
	Notes       string `gorm:"size:500" json:"notes"`

	PetID string `gorm:"type:uuid;not null;index" json:"pet_id"`
	Pet   *Pet   `gorm:"foreignKey:PetID" json:"pet,omitempty"`

	OwnerID string `gorm:"type:uuid;not null;index" json:"owner_id"`
	Owner   *User  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// UserAppointment is one entry of a user's appointment list.
type UserAppointment struct {
	UserID        string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	AppointmentID string    `gorm:"type:uuid;primaryKey;index" json:"appointment_id"`
	CreatedAt     time.Time `json:"created_at"`
}
