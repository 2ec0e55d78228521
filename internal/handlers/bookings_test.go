package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempustours/tempus-backend/internal/services"
	"github.com/tempustours/tempus-backend/internal/stores"
)

func setupBookingRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	snapshots, err := services.NewFileSnapshotStore(t.TempDir())
	require.NoError(t, err)

	users, err := stores.NewUserStore(snapshots)
	require.NoError(t, err)
	bookings, err := stores.NewBookingStore(snapshots)
	require.NoError(t, err)
	catalog := stores.NewCatalogStore()

	hub := services.NewHub()
	go hub.Run()

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", "1")
		c.Next()
	})

	group := router.Group("/api/bookings")
	group.POST("", StartBooking(bookings, users))
	group.GET("", GetBookings(bookings))
	group.GET("/active", GetActiveBookings(bookings))
	group.GET("/history", GetBookingHistory(bookings))
	group.GET("/current", GetCurrentBooking(bookings))
	group.PATCH("/current/dates", SetTravelDates(bookings))
	group.PATCH("/current/travelers", SetTravelers(bookings))
	group.GET("/current/total", GetBookingTotal(bookings, catalog))
	group.PATCH("/current/payment", SetPaymentInfo(bookings))
	group.POST("/current/confirm", ConfirmBooking(bookings, hub))
	group.DELETE("/current", CancelBookingProcess(bookings))
	group.GET("/:id", GetBooking(bookings))
	group.POST("/:id/cancel", CancelBooking(bookings, hub))

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestBookingFlowOverHTTP(t *testing.T) {
	router := setupBookingRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/bookings", gin.H{"tourId": "egypt-1"})
	require.Equal(t, 201, w.Code)

	var started struct {
		Booking struct {
			ID     string `json:"id"`
			TourID string `json:"tourId"`
			Status string `json:"status"`
		} `json:"booking"`
		PrimaryTraveler struct {
			Name      string `json:"name"`
			Age       string `json:"age"`
			IsPrimary bool   `json:"isPrimary"`
		} `json:"primaryTraveler"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &started))
	assert.Equal(t, "egypt-1", started.Booking.TourID)
	assert.Equal(t, "draft", started.Booking.Status)
	assert.Equal(t, "Marcus Aurelius", started.PrimaryTraveler.Name)
	assert.True(t, started.PrimaryTraveler.IsPrimary)

	// Only the name is prefilled; age is for the traveler to enter
	assert.Empty(t, started.PrimaryTraveler.Age)

	w = doJSON(t, router, http.MethodPatch, "/api/bookings/current/dates", gin.H{
		"startDate": "2025-06-01T00:00:00Z",
		"endDate":   "2025-06-11T00:00:00Z",
	})
	require.Equal(t, 200, w.Code)

	w = doJSON(t, router, http.MethodPatch, "/api/bookings/current/travelers", gin.H{
		"travelers": []gin.H{
			{"id": "1", "name": "Marcus Aurelius", "age": "35", "isPrimary": true},
			{"id": "2", "name": "Livia Drusilla", "age": "30"},
		},
	})
	require.Equal(t, 200, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/bookings/current/total", nil)
	require.Equal(t, 200, w.Code)

	var total struct {
		UnitPrice     float64 `json:"unitPrice"`
		TravelerCount int     `json:"travelerCount"`
		TotalPrice    float64 `json:"totalPrice"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &total))
	assert.Equal(t, 1200.0, total.UnitPrice)
	assert.Equal(t, 2, total.TravelerCount)
	assert.Equal(t, 2400.0, total.TotalPrice)

	w = doJSON(t, router, http.MethodPatch, "/api/bookings/current/payment", gin.H{
		"paymentMethod": "treasury",
	})
	require.Equal(t, 200, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/bookings/current", nil)
	require.Equal(t, 200, w.Code)

	var current struct {
		Step int `json:"step"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))
	assert.Equal(t, 3, current.Step)

	w = doJSON(t, router, http.MethodPost, "/api/bookings/current/confirm", nil)
	require.Equal(t, 201, w.Code)

	var confirmed struct {
		ID               string `json:"id"`
		Status           string `json:"status"`
		ConfirmationCode string `json:"confirmationCode"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &confirmed))
	assert.Equal(t, "confirmed", confirmed.Status)
	assert.Regexp(t, `^ROME-[A-Z0-9]{4}$`, confirmed.ConfirmationCode)

	// The draft is gone once confirmed
	w = doJSON(t, router, http.MethodGet, "/api/bookings/current", nil)
	assert.Equal(t, 404, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/bookings", nil)
	require.Equal(t, 200, w.Code)

	var all []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 1)
	assert.Equal(t, confirmed.ID, all[0].ID)

	// Upcoming travel dates put the booking in the active list
	w = doJSON(t, router, http.MethodGet, "/api/bookings/"+confirmed.ID, nil)
	assert.Equal(t, 200, w.Code)
}

func TestStepsRejectedWithoutDraft(t *testing.T) {
	router := setupBookingRouter(t)

	w := doJSON(t, router, http.MethodPatch, "/api/bookings/current/dates", gin.H{
		"startDate": "2025-06-01T00:00:00Z",
		"endDate":   "2025-06-11T00:00:00Z",
	})
	assert.Equal(t, 409, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/bookings/current/confirm", nil)
	assert.Equal(t, 409, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/bookings/current", nil)
	assert.Equal(t, 404, w.Code)
}

func TestStartBookingValidation(t *testing.T) {
	router := setupBookingRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/bookings", gin.H{})
	assert.Equal(t, 400, w.Code)
}

func TestSetTravelersValidation(t *testing.T) {
	router := setupBookingRouter(t)

	doJSON(t, router, http.MethodPost, "/api/bookings", gin.H{"tourId": "egypt-1"})

	// Empty traveler list is rejected
	w := doJSON(t, router, http.MethodPatch, "/api/bookings/current/travelers", gin.H{
		"travelers": []gin.H{},
	})
	assert.Equal(t, 400, w.Code)

	// A traveler with no name is rejected
	w = doJSON(t, router, http.MethodPatch, "/api/bookings/current/travelers", gin.H{
		"travelers": []gin.H{{"id": "1", "age": "35"}},
	})
	assert.Equal(t, 400, w.Code)
}

func TestSetPaymentInfoValidation(t *testing.T) {
	router := setupBookingRouter(t)

	doJSON(t, router, http.MethodPost, "/api/bookings", gin.H{"tourId": "egypt-1"})

	w := doJSON(t, router, http.MethodPatch, "/api/bookings/current/payment", gin.H{
		"paymentMethod": "denarii",
	})
	assert.Equal(t, 400, w.Code)
}

func TestCancelBookingOverHTTP(t *testing.T) {
	router := setupBookingRouter(t)

	doJSON(t, router, http.MethodPost, "/api/bookings", gin.H{"tourId": "egypt-1"})
	w := doJSON(t, router, http.MethodPost, "/api/bookings/current/confirm", nil)
	require.Equal(t, 201, w.Code)

	var confirmed struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &confirmed))

	w = doJSON(t, router, http.MethodPost, "/api/bookings/"+confirmed.ID+"/cancel", nil)
	require.Equal(t, 200, w.Code)

	var cancelled struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cancelled))
	assert.Equal(t, "cancelled", cancelled.Status)

	// A second cancel conflicts
	w = doJSON(t, router, http.MethodPost, "/api/bookings/"+confirmed.ID+"/cancel", nil)
	assert.Equal(t, 409, w.Code)

	// The record stays retrievable
	w = doJSON(t, router, http.MethodGet, "/api/bookings/"+confirmed.ID, nil)
	assert.Equal(t, 200, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/bookings/unknown/cancel", nil)
	assert.Equal(t, 404, w.Code)
}

func TestDiscardDraftOverHTTP(t *testing.T) {
	router := setupBookingRouter(t)

	doJSON(t, router, http.MethodPost, "/api/bookings", gin.H{"tourId": "egypt-1"})

	w := doJSON(t, router, http.MethodDelete, "/api/bookings/current", nil)
	require.Equal(t, 200, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/bookings/current", nil)
	assert.Equal(t, 404, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/bookings", nil)
	require.Equal(t, 200, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
