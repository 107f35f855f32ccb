// controllers/communication.go
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

type CreateMessageInput struct {
	Message string `json:"message" binding:"required"`
}

// CreateMessage records a note for a business-customer pair.
func CreateMessage(c *gin.Context) {
	business, ok := ownedBusiness(c)
	if !ok {
		return
	}

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var input CreateMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.User
	if err := config.DB.Where("id = ? AND role = ?", customerID, utils.RoleCustomer).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	message := models.Communication{
		BusinessID: business.ID,
		CustomerID: customer.ID,
		AuthorID:   business.OwnerID,
		Body:       input.Message,
	}
	if err := config.DB.Create(&message).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create message")
		return
	}

	c.JSON(http.StatusCreated, message)
}

// ListMessages returns the notes for a business-customer pair, oldest first.
func ListMessages(c *gin.Context) {
	business, ok := ownedBusiness(c)
	if !ok {
		return
	}

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var messages []models.Communication
	if err := config.DB.Where("business_id = ? AND customer_id = ?", business.ID, customerID).
		Order("created_at ASC").Find(&messages).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve messages")
		return
	}

	c.JSON(http.StatusOK, messages)
}
