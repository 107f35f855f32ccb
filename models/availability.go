package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Availability is one recurring weekly opening rule. A business may carry
// several rules per weekday; overlap between rules is permitted.
type Availability struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null"`
	DayOfWeek  int       `gorm:"not null"` // 0 = Sunday .. 6 = Saturday
	StartTime  string    `gorm:"type:varchar(5);not null"` // HH:MM
	EndTime    string    `gorm:"type:varchar(5);not null"` // HH:MM
	IsActive   bool      `gorm:"default:true"`

	CreatedAt time.Time
}

func (a *Availability) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// TimeOff blocks all or part of a business's availability on one date.
// Nil start/end means the whole day is blocked.
type TimeOff struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null"`
	Date       time.Time `gorm:"index;not null"`
	StartTime  *string   `gorm:"type:varchar(5)"`
	EndTime    *string   `gorm:"type:varchar(5)"`
	Reason     string

	gorm.Model
}

func (t *TimeOff) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
