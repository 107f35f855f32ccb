package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingPending   = "PENDING"
	BookingConfirmed = "CONFIRMED"
	BookingCancelled = "CANCELLED"
	BookingCompleted = "COMPLETED"
	BookingNoShow    = "NO_SHOW"
)

// bookingTransitions is the enforced status graph. CANCELLED, COMPLETED
// and NO_SHOW are terminal.
var bookingTransitions = map[string][]string{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled, BookingNoShow},
}

// ValidBookingStatus reports whether s is one of the five recognized values.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted, BookingNoShow:
		return true
	}
	return false
}

// CanTransition reports whether a booking may move from one status to
// another. Setting the same status again is a no-op and allowed.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, t := range bookingTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

type Booking struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null"`
	ServiceID  uuid.UUID `gorm:"type:uuid;index;not null"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`

	Date       time.Time `gorm:"index;not null"`
	StartTime  string    `gorm:"type:varchar(5);not null"` // HH:MM
	EndTime    string    `gorm:"type:varchar(5);not null"` // HH:MM
	Status     string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	TotalPrice float64   `gorm:"type:decimal(10,2);not null"`

	gorm.Model
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
