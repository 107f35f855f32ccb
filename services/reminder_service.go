// services/reminder_service.go
package services

import (
	"fmt"
	"time"

	"beautybook-backend/config"
	"beautybook-backend/models"
	"beautybook-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
	logger *zap.Logger
}

func NewReminderService(db *gorm.DB) *ReminderService {
	cfg := config.AppConfig

	var client *twilio.RestClient
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	}

	return &ReminderService{
		db:     db,
		client: client,
		from:   cfg.TwilioFromNumber,
		logger: utils.GetLogger(),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 8 AM
	c.AddFunc("0 8 * * *", s.SendDailyReminders)

	c.Start()
	s.logger.Info("Reminder scheduler started")
}

// SendDailyReminders texts every customer with a confirmed booking tomorrow.
func (s *ReminderService) SendDailyReminders() {
	s.logger.Info("Starting daily reminder processing")

	tomorrow := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))
	dayAfter := tomorrow.Add(24 * time.Hour)

	var bookings []models.Booking
	if err := s.db.
		Where("date >= ? AND date < ? AND status = ?", tomorrow, dayAfter, models.BookingConfirmed).
		Find(&bookings).Error; err != nil {
		s.logger.Error("Failed to fetch bookings for reminders", zap.Error(err))
		return
	}

	for _, booking := range bookings {
		s.sendReminder(booking)
	}

	s.logger.Info("Daily reminder processing completed", zap.Int("bookings", len(bookings)))
}

func (s *ReminderService) sendReminder(booking models.Booking) {
	var customer models.User
	if err := s.db.First(&customer, "id = ?", booking.CustomerID).Error; err != nil {
		s.logger.Warn("Reminder skipped, customer missing", zap.String("booking", booking.ID.String()))
		return
	}
	if customer.Phone == "" || !utils.ValidatePhone(customer.Phone) {
		return
	}

	var business models.Business
	if err := s.db.First(&business, "id = ?", booking.BusinessID).Error; err != nil {
		s.logger.Warn("Reminder skipped, business missing", zap.String("booking", booking.ID.String()))
		return
	}

	message := fmt.Sprintf("Hi %s, a reminder of your appointment at %s tomorrow at %s.",
		customer.Name, business.Name, booking.StartTime)

	if s.client == nil || s.from == "" {
		// SMS delivery not configured; log and move on.
		s.logger.Info("SMS not configured, reminder logged only",
			zap.String("to", customer.Phone), zap.String("message", message))
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(customer.Phone)
	params.SetFrom(s.from)
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		s.logger.Error("Failed to send reminder", zap.String("to", customer.Phone), zap.Error(err))
		return
	}
	if resp.Sid != nil {
		s.logger.Info("Reminder sent", zap.String("to", customer.Phone), zap.String("sid", *resp.Sid))
	}
}
