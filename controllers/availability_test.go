package controllers

import (
	"net/http"
	"testing"

	"beautybook-backend/models"
	"beautybook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func availabilityRouter(ownerID uuid.UUID) *gin.Engine {
	r := newTestRouter()
	group := r.Group("/business", authAs(ownerID, utils.RoleBusinessOwner))
	group.GET("/availability", GetAvailability)
	group.PUT("/availability", ReplaceAvailability)
	group.POST("/timeoff", CreateTimeOff)
	group.DELETE("/timeoff/:id", DeleteTimeOff)
	return r
}

func countRules(t *testing.T, db *gorm.DB, businessID uuid.UUID) int64 {
	t.Helper()

	var n int64
	if err := db.Model(&models.Availability{}).Where("business_id = ?", businessID).
		Count(&n).Error; err != nil {
		t.Fatalf("Failed to count rules: %v", err)
	}
	return n
}

func TestReplaceAvailability(t *testing.T) {
	db := setupTestDB(t)
	ownerID := uuid.New()
	business := createBusiness(t, db, ownerID, "glow-studio")

	r := availabilityRouter(ownerID)
	body := map[string]interface{}{
		"rules": []map[string]interface{}{
			{"dayOfWeek": 1, "startTime": "09:00", "endTime": "17:00"},
			{"dayOfWeek": 2, "startTime": "10:00", "endTime": "18:00"},
		},
	}

	w := performRequest(t, r, "PUT", "/business/availability", body)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if n := countRules(t, db, business.ID); n != 2 {
		t.Errorf("Expected 2 rules, got %d", n)
	}

	// A second identical PUT replaces rather than appends.
	w = performRequest(t, r, "PUT", "/business/availability", body)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 on repeat, got %d: %s", w.Code, w.Body.String())
	}
	if n := countRules(t, db, business.ID); n != 2 {
		t.Errorf("Expected 2 rules after repeat, got %d", n)
	}
}

func TestReplaceAvailabilityEmptyClearsAll(t *testing.T) {
	db := setupTestDB(t)
	ownerID := uuid.New()
	business := createBusiness(t, db, ownerID, "glow-studio")
	if err := db.Create(&models.Availability{
		BusinessID: business.ID, DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsActive: true,
	}).Error; err != nil {
		t.Fatalf("Failed to seed rule: %v", err)
	}

	r := availabilityRouter(ownerID)
	w := performRequest(t, r, "PUT", "/business/availability",
		map[string]interface{}{"rules": []map[string]interface{}{}})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if n := countRules(t, db, business.ID); n != 0 {
		t.Errorf("Expected 0 rules, got %d", n)
	}
}

func TestReplaceAvailabilityBadClock(t *testing.T) {
	db := setupTestDB(t)
	ownerID := uuid.New()
	business := createBusiness(t, db, ownerID, "glow-studio")
	if err := db.Create(&models.Availability{
		BusinessID: business.ID, DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsActive: true,
	}).Error; err != nil {
		t.Fatalf("Failed to seed rule: %v", err)
	}

	r := availabilityRouter(ownerID)
	w := performRequest(t, r, "PUT", "/business/availability", map[string]interface{}{
		"rules": []map[string]interface{}{
			{"dayOfWeek": 1, "startTime": "25:00", "endTime": "17:00"},
		},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
	// A rejected payload must not have cleared the existing rules.
	if n := countRules(t, db, business.ID); n != 1 {
		t.Errorf("Expected 1 rule, got %d", n)
	}
}

func TestReplaceAvailabilityWithoutBusiness(t *testing.T) {
	db := setupTestDB(t)
	ownerID := uuid.New()
	otherBusiness := createBusiness(t, db, uuid.New(), "rival-salon")
	if err := db.Create(&models.Availability{
		BusinessID: otherBusiness.ID, DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsActive: true,
	}).Error; err != nil {
		t.Fatalf("Failed to seed rule: %v", err)
	}

	r := availabilityRouter(ownerID)
	w := performRequest(t, r, "PUT", "/business/availability", map[string]interface{}{
		"rules": []map[string]interface{}{
			{"dayOfWeek": 1, "startTime": "09:00", "endTime": "17:00"},
		},
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
	if n := countRules(t, db, otherBusiness.ID); n != 1 {
		t.Errorf("Other business's rules were touched, got %d", n)
	}
}

func TestCreateTimeOffPartialRange(t *testing.T) {
	db := setupTestDB(t)
	ownerID := uuid.New()
	createBusiness(t, db, ownerID, "glow-studio")

	r := availabilityRouter(ownerID)
	w := performRequest(t, r, "POST", "/business/timeoff", map[string]interface{}{
		"date": "2026-09-14", "startTime": "12:00",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for lone startTime, got %d: %s", w.Code, w.Body.String())
	}

	w = performRequest(t, r, "POST", "/business/timeoff", map[string]interface{}{
		"date": "2026-09-14", "startTime": "12:00", "endTime": "13:00", "reason": "Lunch",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteTimeOffNotFound(t *testing.T) {
	db := setupTestDB(t)
	ownerID := uuid.New()
	createBusiness(t, db, ownerID, "glow-studio")

	r := availabilityRouter(ownerID)
	w := performRequest(t, r, "DELETE", "/business/timeoff/"+uuid.NewString(), nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
}
