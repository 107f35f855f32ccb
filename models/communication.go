package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Communication is a note/message scoped to a business-customer pair.
type Communication struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null"`
	Body       string    `gorm:"type:text;not null"`

	gorm.Model
}

func (m *Communication) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
