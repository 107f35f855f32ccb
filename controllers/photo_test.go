package controllers

import (
	"testing"

	"beautybook-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func countHeroes(t *testing.T, db *gorm.DB, businessID uuid.UUID) int64 {
	t.Helper()

	var n int64
	if err := db.Model(&models.BusinessPhoto{}).
		Where("business_id = ? AND type = ?", businessID, models.PhotoHero).
		Count(&n).Error; err != nil {
		t.Fatalf("Failed to count heroes: %v", err)
	}
	return n
}

func TestSavePhotoHeroDemotesPrior(t *testing.T) {
	db := setupTestDB(t)
	businessID := uuid.New()

	first := models.BusinessPhoto{BusinessID: businessID, Type: models.PhotoHero, StorageKey: "k1"}
	if err := savePhoto(db, &first); err != nil {
		t.Fatalf("savePhoto failed: %v", err)
	}

	second := models.BusinessPhoto{BusinessID: businessID, Type: models.PhotoHero, StorageKey: "k2"}
	if err := savePhoto(db, &second); err != nil {
		t.Fatalf("savePhoto failed: %v", err)
	}

	if n := countHeroes(t, db, businessID); n != 1 {
		t.Fatalf("Expected exactly one hero, got %d", n)
	}

	var stored models.BusinessPhoto
	if err := db.First(&stored, "id = ?", first.ID).Error; err != nil {
		t.Fatalf("Failed to reload first photo: %v", err)
	}
	if stored.Type != models.PhotoGallery {
		t.Errorf("Expected first photo demoted to GALLERY, got %s", stored.Type)
	}
}

func TestSavePhotoGalleryKeepsHero(t *testing.T) {
	db := setupTestDB(t)
	businessID := uuid.New()

	hero := models.BusinessPhoto{BusinessID: businessID, Type: models.PhotoHero, StorageKey: "k1"}
	if err := savePhoto(db, &hero); err != nil {
		t.Fatalf("savePhoto failed: %v", err)
	}

	gallery := models.BusinessPhoto{BusinessID: businessID, Type: models.PhotoGallery, StorageKey: "k2"}
	if err := savePhoto(db, &gallery); err != nil {
		t.Fatalf("savePhoto failed: %v", err)
	}

	if n := countHeroes(t, db, businessID); n != 1 {
		t.Errorf("Expected hero to survive a gallery insert, got %d heroes", n)
	}
}

func TestSavePhotoHeroScopedToBusiness(t *testing.T) {
	db := setupTestDB(t)
	firstBusiness := uuid.New()
	secondBusiness := uuid.New()

	a := models.BusinessPhoto{BusinessID: firstBusiness, Type: models.PhotoHero, StorageKey: "k1"}
	if err := savePhoto(db, &a); err != nil {
		t.Fatalf("savePhoto failed: %v", err)
	}
	b := models.BusinessPhoto{BusinessID: secondBusiness, Type: models.PhotoHero, StorageKey: "k2"}
	if err := savePhoto(db, &b); err != nil {
		t.Fatalf("savePhoto failed: %v", err)
	}

	if n := countHeroes(t, db, firstBusiness); n != 1 {
		t.Errorf("First business: expected 1 hero, got %d", n)
	}
	if n := countHeroes(t, db, secondBusiness); n != 1 {
		t.Errorf("Second business: expected 1 hero, got %d", n)
	}
}

// Repairs a state where multiple heroes already exist, for example rows
// written before the demotion logic existed.
func TestSavePhotoHeroCollapsesExistingHeroes(t *testing.T) {
	db := setupTestDB(t)
	businessID := uuid.New()

	for _, key := range []string{"k1", "k2", "k3"} {
		photo := models.BusinessPhoto{BusinessID: businessID, Type: models.PhotoHero, StorageKey: key}
		if err := db.Create(&photo).Error; err != nil {
			t.Fatalf("Failed to seed photo: %v", err)
		}
	}

	next := models.BusinessPhoto{BusinessID: businessID, Type: models.PhotoHero, StorageKey: "k4"}
	if err := savePhoto(db, &next); err != nil {
		t.Fatalf("savePhoto failed: %v", err)
	}

	if n := countHeroes(t, db, businessID); n != 1 {
		t.Fatalf("Expected exactly one hero, got %d", n)
	}

	var hero models.BusinessPhoto
	if err := db.First(&hero, "business_id = ? AND type = ?", businessID, models.PhotoHero).Error; err != nil {
		t.Fatalf("Failed to load hero: %v", err)
	}
	if hero.StorageKey != "k4" {
		t.Errorf("Expected newest photo to be the hero, got %s", hero.StorageKey)
	}
}
