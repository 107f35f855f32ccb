package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review holds at most one rating per booking.
type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	BookingID  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`
	Rating     int       `gorm:"not null"` // 1..5
	Comment    string    `gorm:"type:text"`

	gorm.Model
}

func (r *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
