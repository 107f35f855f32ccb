package controllers

import (
	"context"
	"net/http"
	"time"

	"beautybook-backend/config"
	"beautybook-backend/models"
	"beautybook-backend/utils"

	"github.com/gin-gonic/gin"
)

// UpdateProfileInput carries the fixed required-field list for a business
// profile update; optional fields are pointers.
type UpdateProfileInput struct {
	Name        string  `json:"name" binding:"required"`
	Slug        string  `json:"slug" binding:"required"`
	Phone       string  `json:"phone" binding:"required"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	IsActive    *bool   `json:"isActive"`
}

func GetBusinessProfile(c *gin.Context) {
	business, ok := ownedBusiness(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, business)
}

func UpdateBusinessProfile(c *gin.Context) {
	business, ok := ownedBusiness(c)
	if !ok {
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidateSlug(input.Slug) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid slug")
		return
	}
	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	if input.Slug != business.Slug {
		var taken int64
		if err := config.DB.Model(&models.Business{}).
			Where("slug = ? AND id <> ?", input.Slug, business.ID).
			Count(&taken).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		if taken > 0 {
			utils.RespondWithError(c, http.StatusConflict, "Slug already taken")
			return
		}
	}

	oldSlug := business.Slug

	business.Name = input.Name
	business.Slug = input.Slug
	business.Phone = input.Phone
	if input.Description != nil {
		business.Description = *input.Description
	}
	if input.Address != nil {
		business.Address = *input.Address
	}
	if input.IsActive != nil {
		business.IsActive = *input.IsActive
	}

	if err := config.DB.Save(business).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	// Drop the cached public page for both the old and new slug.
	if config.Cache != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		config.Cache.Del(ctx, businessPageCacheKey(oldSlug), businessPageCacheKey(business.Slug))
	}

	c.JSON(http.StatusOK, business)
}

type DashboardOverview struct {
	TodayBookings    int64            `json:"todayBookings"`
	PendingBookings  int64            `json:"pendingBookings"`
	MonthlyRevenue   float64          `json:"monthlyRevenue"`
	TotalReviews     int64            `json:"totalReviews"`
	AverageRating    float64          `json:"averageRating"`
	UpcomingBookings []models.Booking `json:"upcomingBookings"`
}

// GetDashboardOverview aggregates booking and review figures for the
// owner's landing screen.
func GetDashboardOverview(c *gin.Context) {
	business, ok := ownedBusiness(c)
	if !ok {
		return
	}

	now := time.Now()
	today := utils.BeginningOfDay(now)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var overview DashboardOverview

	config.DB.Model(&models.Booking{}).
		Where("business_id = ? AND date >= ? AND date < ?", business.ID, today, utils.EndOfDay(now)).
		Count(&overview.TodayBookings)

	config.DB.Model(&models.Booking{}).
		Where("business_id = ? AND status = ?", business.ID, models.BookingPending).
		Count(&overview.PendingBookings)

	config.DB.Model(&models.Booking{}).
		Where("business_id = ? AND status = ? AND date >= ?", business.ID, models.BookingCompleted, firstOfMonth).
		Select("COALESCE(SUM(total_price), 0)").Scan(&overview.MonthlyRevenue)

	config.DB.Model(&models.Review{}).
		Where("business_id = ?", business.ID).
		Count(&overview.TotalReviews)

	if overview.TotalReviews > 0 {
		config.DB.Model(&models.Review{}).
			Where("business_id = ?", business.ID).
			Select("COALESCE(AVG(rating), 0)").Scan(&overview.AverageRating)
	}

	config.DB.
		Where("business_id = ? AND date >= ? AND status IN ?", business.ID, today,
			[]string{models.BookingPending, models.BookingConfirmed}).
		Order("date ASC, start_time ASC").Limit(5).
		Find(&overview.UpcomingBookings)

	c.JSON(http.StatusOK, overview)
}
