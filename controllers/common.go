package controllers

import (
	"errors"
	"net/http"

	"beautybook-backend/config"
	"beautybook-backend/models"
	"beautybook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// currentUserID reads the authenticated user id set by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	s, ok := v.(string)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid session")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid session")
		return uuid.Nil, false
	}
	return id, true
}

// ownedBusiness loads the business owned by the session user. A missing
// business responds 404; ownership failure is indistinguishable from
// nonexistence by design.
func ownedBusiness(c *gin.Context) (*models.Business, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return nil, false
	}

	var business models.Business
	if err := config.DB.Where("owner_id = ?", userID).First(&business).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Business not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &business, true
}
