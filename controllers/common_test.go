package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"beautybook-backend/config"
	"beautybook-backend/models"
	"beautybook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.VerificationToken{},
		&models.Business{},
		&models.Service{},
		&models.Availability{},
		&models.TimeOff{},
		&models.Booking{},
		&models.Review{},
		&models.Communication{},
		&models.BusinessPhoto{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	config.DB = db
	return db
}

// authAs stands in for the JWT middleware and injects a session directly.
func authAs(userID uuid.UUID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userId", userID.String())
		c.Set("role", role)
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(utils.ErrorHandler())
	return r
}

func performRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createBusiness(t *testing.T, db *gorm.DB, ownerID uuid.UUID, slug string) *models.Business {
	t.Helper()

	business := models.Business{
		OwnerID:  ownerID,
		Name:     "Test Salon",
		Slug:     slug,
		IsActive: true,
	}
	if err := db.Create(&business).Error; err != nil {
		t.Fatalf("Failed to create business: %v", err)
	}
	return &business
}

func createBooking(t *testing.T, db *gorm.DB, businessID, customerID uuid.UUID, status string) *models.Booking {
	t.Helper()

	booking := models.Booking{
		BusinessID: businessID,
		ServiceID:  uuid.New(),
		CustomerID: customerID,
		Date:       time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		StartTime:  "10:00",
		EndTime:    "11:00",
		Status:     status,
		TotalPrice: 45,
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("Failed to create booking: %v", err)
	}
	return &booking
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode error body %q: %v", w.Body.String(), err)
	}
	return body["error"]
}
