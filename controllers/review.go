// controllers/review.go
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

type CreateReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// CreateReview records a rating for a completed booking. The requester
// must be the booking's customer, the booking must be COMPLETED, and no
// review may exist yet. A booking that is absent or belongs to someone
// else responds 404 either way.
func CreateReview(c *gin.Context) {
	customerID, ok := currentUserID(c)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.Where("id = ? AND customer_id = ?", bookingID, customerID).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if booking.Status != models.BookingCompleted {
		utils.RespondWithError(c, http.StatusBadRequest, "Only completed bookings can be reviewed")
		return
	}

	var existing int64
	if err := config.DB.Model(&models.Review{}).Where("booking_id = ?", booking.ID).
		Count(&existing).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if existing > 0 {
		utils.RespondWithError(c, http.StatusConflict, "Booking already reviewed")
		return
	}

	review := models.Review{
		BookingID:  booking.ID,
		BusinessID: booking.BusinessID,
		CustomerID: customerID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create review")
		return
	}

	c.JSON(http.StatusCreated, review)
}

// ListBusinessReviews publicly lists reviews for a business slug.
func ListBusinessReviews(c *gin.Context) {
	slug := c.Param("slug")

	var business models.Business
	if err := config.DB.Where("slug = ? AND is_active = ?", slug, true).First(&business).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Business not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var reviews []models.Review
	if err := config.DB.Where("business_id = ?", business.ID).
		Order("created_at DESC").Find(&reviews).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	c.JSON(http.StatusOK, reviews)
}
