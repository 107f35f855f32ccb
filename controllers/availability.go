// controllers/availability.go
package controllers

import (
	"net/http"

	"beautybook-backend/config"
	"beautybook-backend/models"
	"beautybook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilityRuleInput struct {
	DayOfWeek int    `json:"dayOfWeek" binding:"min=0,max=6"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	IsActive  *bool  `json:"isActive"`
}

type ReplaceAvailabilityInput struct {
	Rules []AvailabilityRuleInput `json:"rules" binding:"required"`
}

// ReplaceAvailability swaps the entire weekly rule set in one transaction:
// delete everything, insert the submitted rules. Ownership is confirmed
// before any row is deleted. Overlapping rules are persisted as-is.
func ReplaceAvailability(c *gin.Context) {
	business, ok := ownedBusiness(c)
	if !ok {
		return
	}

	var input ReplaceAvailabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	rules := make([]models.Availability, 0, len(input.Rules))
	for _, r := range input.Rules {
		if _, err := utils.ParseClock(r.StartTime); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid startTime, expected HH:MM")
			return
		}
		if _, err := utils.ParseClock(r.EndTime); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid endTime, expected HH:MM")
			return
		}
		active := true
		if r.IsActive != nil {
			active = *r.IsActive
		}
		rules = append(rules, models.Availability{
			BusinessID: business.ID,
			DayOfWeek:  r.DayOfWeek,
			StartTime:  r.StartTime,
			EndTime:    r.EndTime,
			IsActive:   active,
		})
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		// Availability rows are replaced wholesale, not soft-deleted.
		if err := tx.Unscoped().Where("business_id = ?", business.ID).
			Delete(&models.Availability{}).Error; err != nil {
			return err
		}
		if len(rules) == 0 {
			return nil
		}
		return tx.Create(&rules).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

// GetAvailability lists the owner's weekly rules.
func GetAvailability(c *gin.Context) {
	business, ok := ownedBusiness(c)
	if !ok {
		return
	}

	var rules []models.Availability
	if err := config.DB.Where("business_id = ?", business.ID).
		Order("day_of_week ASC, start_time ASC").Find(&rules).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

type CreateTimeOffInput struct {
	Date      string  `json:"date" binding:"required"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Reason    string  `json:"reason"`
}

// CreateTimeOff blocks a date, or a sub-range of it when both start and
// end times are given.
func CreateTimeOff(c *gin.Context) {
	business, ok := ownedBusiness(c)
	if !ok {
		return
	}

	var input CreateTimeOffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	if (input.StartTime == nil) != (input.EndTime == nil) {
		utils.RespondWithError(c, http.StatusBadRequest, "startTime and endTime must be given together")
		return
	}
	if input.StartTime != nil {
		if _, err := utils.ParseClock(*input.StartTime); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid startTime, expected HH:MM")
			return
		}
		if _, err := utils.ParseClock(*input.EndTime); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid endTime, expected HH:MM")
			return
		}
	}

	timeOff := models.TimeOff{
		BusinessID: business.ID,
		Date:       utils.BeginningOfDay(date),
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Reason:     input.Reason,
	}
	if err := config.DB.Create(&timeOff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create time off")
		return
	}

	c.JSON(http.StatusCreated, timeOff)
}

// ListTimeOff lists the owner's time-off records, soonest first.
func ListTimeOff(c *gin.Context) {
	business, ok := ownedBusiness(c)
	if !ok {
		return
	}

	var records []models.TimeOff
	if err := config.DB.Where("business_id = ?", business.ID).
		Order("date ASC").Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve time off")
		return
	}

	c.JSON(http.StatusOK, records)
}

// DeleteTimeOff removes a time-off record.
func DeleteTimeOff(c *gin.Context) {
	business, ok := ownedBusiness(c)
	if !ok {
		return
	}

	timeOffID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid time off ID format")
		return
	}

	result := config.DB.Where("business_id = ? AND id = ?", business.ID, timeOffID).
		Delete(&models.TimeOff{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete time off")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Time off not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Time off deleted successfully"})
}
