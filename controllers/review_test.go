package controllers

import (
	"net/http"
	"testing"

	"beautybook-backend/config"
	"beautybook-backend/models"
	"beautybook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func reviewRouter(customerID uuid.UUID) *gin.Engine {
	r := newTestRouter()
	r.POST("/bookings/:id/review", authAs(customerID, utils.RoleCustomer), CreateReview)
	r.GET("/booking/:slug/reviews", ListBusinessReviews)
	return r
}

func TestCreateReview(t *testing.T) {
	db := setupTestDB(t)
	customerID := uuid.New()
	business := createBusiness(t, db, uuid.New(), "glow-studio")
	booking := createBooking(t, db, business.ID, customerID, models.BookingCompleted)

	r := reviewRouter(customerID)
	w := performRequest(t, r, "POST", "/bookings/"+booking.ID.String()+"/review",
		map[string]interface{}{"rating": 5, "comment": "Great cut"})

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var review models.Review
	if err := config.DB.First(&review, "booking_id = ?", booking.ID).Error; err != nil {
		t.Fatalf("Review not stored: %v", err)
	}
	if review.BusinessID != business.ID || review.Rating != 5 {
		t.Errorf("Unexpected review row: %+v", review)
	}
}

func TestCreateReviewBookingNotCompleted(t *testing.T) {
	db := setupTestDB(t)
	customerID := uuid.New()
	business := createBusiness(t, db, uuid.New(), "glow-studio")

	for _, status := range []string{
		models.BookingPending,
		models.BookingConfirmed,
		models.BookingCancelled,
		models.BookingNoShow,
	} {
		booking := createBooking(t, db, business.ID, customerID, status)

		r := reviewRouter(customerID)
		w := performRequest(t, r, "POST", "/bookings/"+booking.ID.String()+"/review",
			map[string]interface{}{"rating": 4})

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status %s: expected 400, got %d", status, w.Code)
		}
	}
}

func TestCreateReviewDuplicate(t *testing.T) {
	db := setupTestDB(t)
	customerID := uuid.New()
	business := createBusiness(t, db, uuid.New(), "glow-studio")
	booking := createBooking(t, db, business.ID, customerID, models.BookingCompleted)

	r := reviewRouter(customerID)
	w := performRequest(t, r, "POST", "/bookings/"+booking.ID.String()+"/review",
		map[string]interface{}{"rating": 5})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = performRequest(t, r, "POST", "/bookings/"+booking.ID.String()+"/review",
		map[string]interface{}{"rating": 3})
	if w.Code != http.StatusConflict {
		t.Fatalf("Expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateReviewForeignBooking(t *testing.T) {
	db := setupTestDB(t)
	business := createBusiness(t, db, uuid.New(), "glow-studio")
	booking := createBooking(t, db, business.ID, uuid.New(), models.BookingCompleted)

	// A different customer cannot see the booking at all.
	r := reviewRouter(uuid.New())
	w := performRequest(t, r, "POST", "/bookings/"+booking.ID.String()+"/review",
		map[string]interface{}{"rating": 5})

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateReviewRatingOutOfRange(t *testing.T) {
	db := setupTestDB(t)
	customerID := uuid.New()
	business := createBusiness(t, db, uuid.New(), "glow-studio")
	booking := createBooking(t, db, business.ID, customerID, models.BookingCompleted)

	r := reviewRouter(customerID)
	for _, rating := range []int{0, 6} {
		w := performRequest(t, r, "POST", "/bookings/"+booking.ID.String()+"/review",
			map[string]interface{}{"rating": rating})
		if w.Code != http.StatusBadRequest {
			t.Errorf("Rating %d: expected 400, got %d", rating, w.Code)
		}
	}
}

func TestListBusinessReviews(t *testing.T) {
	db := setupTestDB(t)
	customerID := uuid.New()
	business := createBusiness(t, db, uuid.New(), "glow-studio")
	booking := createBooking(t, db, business.ID, customerID, models.BookingCompleted)

	review := models.Review{
		BookingID:  booking.ID,
		BusinessID: business.ID,
		CustomerID: customerID,
		Rating:     5,
		Comment:    "Great cut",
	}
	if err := db.Create(&review).Error; err != nil {
		t.Fatalf("Failed to seed review: %v", err)
	}

	r := reviewRouter(customerID)
	w := performRequest(t, r, "GET", "/booking/glow-studio/reviews", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = performRequest(t, r, "GET", "/booking/no-such-salon/reviews", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 for unknown slug, got %d", w.Code)
	}
}
