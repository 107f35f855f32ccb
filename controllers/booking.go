// controllers/booking.go
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

type UpdateBookingStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// ListBusinessBookings returns the owner's bookings, optionally filtered
// by date and status.
func ListBusinessBookings(c *gin.Context) {
	business, ok := ownedBusiness(c)
	if !ok {
		return
	}

	query := config.DB.Where("business_id = ?", business.ID)

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := utils.ParseDate(dateStr)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		query = query.Where("date >= ? AND date < ?", utils.BeginningOfDay(date), utils.EndOfDay(date))
	}
	if status := c.Query("status"); status != "" {
		if !models.ValidBookingStatus(status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid status filter")
			return
		}
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Order("date ASC, start_time ASC").Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus moves a booking along the status graph. Unknown
// status values and disallowed transitions are rejected before any row is
// touched. A booking outside the owner's business responds 404, same as a
// nonexistent one.
func UpdateBookingStatus(c *gin.Context) {
	var input UpdateBookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !models.ValidBookingStatus(input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status: "+input.Status)
		return
	}

	business, ok := ownedBusiness(c)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var booking models.Booking
	if err := config.DB.Where("business_id = ? AND id = ?", business.ID, bookingID).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !models.CanTransition(booking.Status, input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest,
			"Cannot transition from "+booking.Status+" to "+input.Status)
		return
	}

	booking.Status = input.Status
	if err := config.DB.Save(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// CompleteBooking marks a confirmed booking COMPLETED. The business must
// be active and must own the booking.
func CompleteBooking(c *gin.Context) {
	business, ok := ownedBusiness(c)
	if !ok {
		return
	}

	if !business.IsActive {
		utils.RespondWithError(c, http.StatusBadRequest, "Business is not active")
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var booking models.Booking
	if err := config.DB.Where("business_id = ? AND id = ?", business.ID, bookingID).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !models.CanTransition(booking.Status, models.BookingCompleted) {
		utils.RespondWithError(c, http.StatusBadRequest,
			"Cannot complete a "+booking.Status+" booking")
		return
	}

	booking.Status = models.BookingCompleted
	if err := config.DB.Save(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}
