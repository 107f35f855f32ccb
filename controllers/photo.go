// controllers/photo.go
package controllers

import (
	"net/http"

	"beautybook-backend/config"
	"beautybook-backend/models"
	"beautybook-backend/services"
	"beautybook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UploadPhotoInput struct {
	Image   string `json:"image" binding:"required"` // base64 or data URI
	Type    string `json:"type" binding:"omitempty,oneof=HERO GALLERY"`
	Caption string `json:"caption"`
}

// savePhoto persists a photo record. A HERO insert demotes every prior
// hero to GALLERY inside the same transaction, so the at-most-one-hero
// invariant survives a failed insert.
func savePhoto(db *gorm.DB, photo *models.BusinessPhoto) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if photo.Type == models.PhotoHero {
			if err := tx.Model(&models.BusinessPhoto{}).
				Where("business_id = ? AND type = ?", photo.BusinessID, models.PhotoHero).
				Update("type", models.PhotoGallery).Error; err != nil {
				return err
			}
		}
		return tx.Create(photo).Error
	})
}

// UploadPhoto stores an image and records it for the business.
func UploadPhoto(c *gin.Context) {
	business, ok := ownedBusiness(c)
	if !ok {
		return
	}

	var input UploadPhotoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	photoType := input.Type
	if photoType == "" {
		photoType = models.PhotoGallery
	}

	storage, err := services.GetMediaStorage()
	if err != nil {
		utils.GetLogger().Error("Media storage unavailable", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Media storage unavailable")
		return
	}

	key, err := storage.UploadBase64(c.Request.Context(), input.Image, uuid.NewString())
	if err != nil {
		utils.GetLogger().Error("Photo upload failed", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to upload photo")
		return
	}

	photo := models.BusinessPhoto{
		BusinessID: business.ID,
		Type:       photoType,
		StorageKey: key,
		Caption:    input.Caption,
	}
	if err := savePhoto(config.DB, &photo); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save photo")
		return
	}

	c.JSON(http.StatusCreated, photo)
}

// ListPhotos returns the business's photos, hero first.
func ListPhotos(c *gin.Context) {
	business, ok := ownedBusiness(c)
	if !ok {
		return
	}

	var photos []models.BusinessPhoto
	if err := config.DB.Where("business_id = ?", business.ID).
		Order("type ASC, created_at DESC").Find(&photos).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve photos")
		return
	}

	c.JSON(http.StatusOK, photos)
}

// DeletePhoto removes a photo record and best-effort deletes the stored image.
func DeletePhoto(c *gin.Context) {
	business, ok := ownedBusiness(c)
	if !ok {
		return
	}

	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid photo ID format")
		return
	}

	var photo models.BusinessPhoto
	if err := config.DB.Where("business_id = ? AND id = ?", business.ID, photoID).
		First(&photo).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Photo not found")
		return
	}

	if err := config.DB.Delete(&photo).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete photo")
		return
	}

	if storage, err := services.GetMediaStorage(); err == nil {
		if err := storage.Destroy(c.Request.Context(), photo.StorageKey); err != nil {
			utils.GetLogger().Warn("Failed to delete stored image",
				zap.String("key", photo.StorageKey), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Photo deleted successfully"})
}

// ResolveImage redirects a storage key (or a full storage URL) to a
// time-limited signed delivery URL.
func ResolveImage(c *gin.Context) {
	key, err := services.ParseStorageKey(c.Query("key"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid storage key: "+err.Error())
		return
	}

	storage, err := services.GetMediaStorage()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Media storage unavailable")
		return
	}

	url, err := storage.SignedURL(key)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to sign URL")
		return
	}

	c.Redirect(http.StatusFound, url)
}
