package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Pet struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID string `gorm:"type:uuid;not null;index" json:"owner_id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Species string `gorm:"size:50;not null" json:"species"`
	Breed   string `gorm:"size:100" json:"breed"`
	Gender  string `gorm:"size:10;default:'Unknown'" json:"gender"`
	Age     string `gorm:"size:20" json:"age"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Pet) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
