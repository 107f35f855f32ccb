// services/availability.go
package services

import (
	"fmt"
	"sort"
	"time"

	"beautybook-backend/models"
	"beautybook-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultSlotStep = 30 // minutes, for services without a duration

// BookedSlots returns the wall-clock start times (HH:MM) of every PENDING
// or CONFIRMED booking for the business on the given date.
func BookedSlots(db *gorm.DB, businessID uuid.UUID, date time.Time) ([]string, error) {
	start := utils.BeginningOfDay(date)
	end := utils.EndOfDay(date)

	var bookings []models.Booking
	if err := db.
		Where("business_id = ? AND date >= ? AND date < ? AND status IN ?",
			businessID, start, end,
			[]string{models.BookingPending, models.BookingConfirmed}).
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}

	slots := make([]string, 0, len(bookings))
	for _, b := range bookings {
		slots = append(slots, b.StartTime)
	}
	return slots, nil
}

// continuousInterval is a half-open [Start, End) range in minutes since midnight.
type continuousInterval struct {
	Start int
	End   int
}

// OpenSlots computes the bookable start times for a service on a date:
// the weekly rules for that weekday, minus time-off, minus existing
// PENDING/CONFIRMED bookings, stepped by the service duration.
func OpenSlots(db *gorm.DB, businessID uuid.UUID, date time.Time, svc *models.Service) ([]string, error) {
	weekday := int(date.Weekday())

	var rules []models.Availability
	if err := db.
		Where("business_id = ? AND day_of_week = ? AND is_active = ?", businessID, weekday, true).
		Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve availability rules: %w", err)
	}

	open := make([]continuousInterval, 0, len(rules))
	for _, r := range rules {
		iv, err := clockInterval(r.StartTime, r.EndTime)
		if err != nil {
			return nil, err
		}
		open = append(open, iv)
	}
	if len(open) == 0 {
		return []string{}, nil
	}

	blocked, err := blockedIntervals(db, businessID, date)
	if err != nil {
		return nil, err
	}
	open = subtractIntervals(open, blocked)

	step := svc.Duration
	if step <= 0 {
		step = defaultSlotStep
	}
	duration := svc.Duration
	if duration <= 0 {
		duration = defaultSlotStep
	}

	var slots []string
	for _, iv := range open {
		for start := iv.Start; start+duration <= iv.End; start += step {
			slots = append(slots, utils.FormatClock(start))
		}
	}
	sort.Strings(slots)
	return slots, nil
}

// blockedIntervals collects time-off ranges and booking ranges for the date.
func blockedIntervals(db *gorm.DB, businessID uuid.UUID, date time.Time) ([]continuousInterval, error) {
	start := utils.BeginningOfDay(date)
	end := utils.EndOfDay(date)

	var timeOff []models.TimeOff
	if err := db.
		Where("business_id = ? AND date >= ? AND date < ?", businessID, start, end).
		Find(&timeOff).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve time off: %w", err)
	}

	var blocked []continuousInterval
	for _, t := range timeOff {
		if t.StartTime == nil || t.EndTime == nil {
			// Whole day blocked.
			blocked = append(blocked, continuousInterval{Start: 0, End: 24 * 60})
			continue
		}
		iv, err := clockInterval(*t.StartTime, *t.EndTime)
		if err != nil {
			return nil, err
		}
		blocked = append(blocked, iv)
	}

	var bookings []models.Booking
	if err := db.
		Where("business_id = ? AND date >= ? AND date < ? AND status IN ?",
			businessID, start, end,
			[]string{models.BookingPending, models.BookingConfirmed}).
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	for _, b := range bookings {
		iv, err := clockInterval(b.StartTime, b.EndTime)
		if err != nil {
			return nil, err
		}
		blocked = append(blocked, iv)
	}

	return blocked, nil
}

// subtractIntervals removes each blocked range from the open set.
func subtractIntervals(open, blocked []continuousInterval) []continuousInterval {
	available := open
	for _, block := range blocked {
		var updated []continuousInterval
		for _, iv := range available {
			if block.End <= iv.Start || block.Start >= iv.End {
				updated = append(updated, iv)
				continue
			}
			if block.Start > iv.Start {
				updated = append(updated, continuousInterval{Start: iv.Start, End: block.Start})
			}
			if block.End < iv.End {
				updated = append(updated, continuousInterval{Start: block.End, End: iv.End})
			}
		}
		available = updated
	}
	return available
}

func clockInterval(startTime, endTime string) (continuousInterval, error) {
	s, err := utils.ParseClock(startTime)
	if err != nil {
		return continuousInterval{}, err
	}
	e, err := utils.ParseClock(endTime)
	if err != nil {
		return continuousInterval{}, err
	}
	return continuousInterval{Start: s, End: e}, nil
}
