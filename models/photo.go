package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PhotoHero    = "HERO"
	PhotoGallery = "GALLERY"
)

// BusinessPhoto references a stored image. At most one HERO photo exists
// per business; inserting a new hero demotes prior ones to GALLERY.
type BusinessPhoto struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null"`
	Type       string    `gorm:"type:varchar(10);not null;default:'GALLERY'"`
	StorageKey string    `gorm:"not null"`
	Caption    string

	gorm.Model
}

func (p *BusinessPhoto) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
