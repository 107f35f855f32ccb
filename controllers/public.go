// controllers/public.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"beautybook-backend/config"
	"beautybook-backend/models"
	"beautybook-backend/services"
	"beautybook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const businessPageTTL = 5 * time.Minute

type businessPage struct {
	Business models.Business  `json:"business"`
	Services []models.Service `json:"services"`
}

func businessPageCacheKey(slug string) string {
	return "business:page:" + slug
}

// GetBusinessPage serves the public booking page for a business slug.
// Responses are cached in Redis for a short TTL.
func GetBusinessPage(c *gin.Context) {
	slug := c.Param("slug")

	if config.Cache != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if cached, err := config.Cache.Get(ctx, businessPageCacheKey(slug)).Result(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			return
		}
	}

	var business models.Business
	if err := config.DB.Where("slug = ? AND is_active = ?", slug, true).First(&business).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Business not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var svcs []models.Service
	if err := config.DB.Where("business_id = ? AND is_active = ?", business.ID, true).
		Find(&svcs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	page := businessPage{Business: business, Services: svcs}

	if config.Cache != nil {
		if payload, err := json.Marshal(page); err == nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
			defer cancel()
			if err := config.Cache.Set(ctx, businessPageCacheKey(slug), payload, businessPageTTL).Err(); err != nil {
				zap.L().Warn("Failed to cache business page", zap.String("slug", slug), zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, page)
}

// availabilityParams validates the shared query parameters of the two
// availability endpoints. All three must be present before any query runs.
func availabilityParams(c *gin.Context) (uuid.UUID, uuid.UUID, time.Time, bool) {
	businessID := c.Query("businessId")
	dateStr := c.Query("date")
	serviceID := c.Query("serviceId")

	if businessID == "" || dateStr == "" || serviceID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "businessId, date and serviceId are required")
		return uuid.Nil, uuid.Nil, time.Time{}, false
	}

	businessUUID, err := uuid.Parse(businessID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid businessId format")
		return uuid.Nil, uuid.Nil, time.Time{}, false
	}
	serviceUUID, err := uuid.Parse(serviceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid serviceId format")
		return uuid.Nil, uuid.Nil, time.Time{}, false
	}
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return uuid.Nil, uuid.Nil, time.Time{}, false
	}
	return businessUUID, serviceUUID, date, true
}

// GetBookedSlots returns the start times of PENDING/CONFIRMED bookings
// for a business on a date.
func GetBookedSlots(c *gin.Context) {
	businessID, _, date, ok := availabilityParams(c)
	if !ok {
		return
	}

	slots, err := services.BookedSlots(config.DB, businessID, date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve booked slots")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookedSlots": slots})
}

// GetOpenSlots returns the bookable start times for a service on a date:
// weekly hours minus time-off minus existing bookings.
func GetOpenSlots(c *gin.Context) {
	businessID, serviceID, date, ok := availabilityParams(c)
	if !ok {
		return
	}

	var svc models.Service
	if err := config.DB.Where("business_id = ? AND id = ? AND is_active = ?", businessID, serviceID, true).
		First(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	slots, err := services.OpenSlots(config.DB, businessID, date, &svc)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute slots")
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

type CreateBookingInput struct {
	BusinessID uuid.UUID `json:"businessId" binding:"required"`
	ServiceID  uuid.UUID `json:"serviceId" binding:"required"`
	Date       string    `json:"date" binding:"required"`
	StartTime  string    `json:"startTime" binding:"required"`
}

// CreateBooking books a PENDING appointment for the session customer.
// Concurrent requests for the same slot are resolved first-write-wins by
// the store.
func CreateBooking(c *gin.Context) {
	customerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	startMinutes, err := utils.ParseClock(input.StartTime)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid startTime, expected HH:MM")
		return
	}

	var business models.Business
	if err := config.DB.Where("id = ? AND is_active = ?", input.BusinessID, true).
		First(&business).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Business not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var svc models.Service
	if err := config.DB.Where("business_id = ? AND id = ? AND is_active = ?", business.ID, input.ServiceID, true).
		First(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	duration := svc.Duration
	if duration <= 0 {
		duration = 30
	}
	endMinutes := startMinutes + duration
	if endMinutes > 24*60 {
		utils.RespondWithError(c, http.StatusBadRequest, "Booking runs past midnight")
		return
	}

	booking := models.Booking{
		BusinessID: business.ID,
		ServiceID:  svc.ID,
		CustomerID: customerID,
		Date:       utils.BeginningOfDay(date),
		StartTime:  utils.FormatClock(startMinutes),
		EndTime:    utils.FormatClock(endMinutes),
		Status:     models.BookingPending,
		TotalPrice: svc.Price,
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ListMyBookings returns the session customer's bookings, newest first.
func ListMyBookings(c *gin.Context) {
	customerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var bookings []models.Booking
	if err := config.DB.Where("customer_id = ?", customerID).
		Order("date DESC, start_time DESC").Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}
