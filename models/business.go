package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Business struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	Name        string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	Address     string
	Phone       string
	IsActive    bool `gorm:"default:true"`

	StripeAccountID    string
	OnboardingComplete bool `gorm:"default:false"`

	Services       []Service       `gorm:"foreignKey:BusinessID"`
	Availabilities []Availability  `gorm:"foreignKey:BusinessID"`
	Bookings       []Booking       `gorm:"foreignKey:BusinessID"`
	Photos         []BusinessPhoto `gorm:"foreignKey:BusinessID"`

	gorm.Model
}

func (b *Business) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
