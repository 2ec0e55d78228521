package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tempustours/tempus-backend/internal/models"
	"github.com/tempustours/tempus-backend/internal/services"
	"github.com/tempustours/tempus-backend/internal/stores"
)

// StartBooking opens a new booking draft for a tour. Any draft already
// in flight is replaced. The response includes a suggested primary
// traveler prefilled from the user's profile.
func StartBooking(bookings *stores.BookingStore, users *stores.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		var input struct {
			TourID string `json:"tourId" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		draft := bookings.StartBooking(userID, input.TourID)

		response := gin.H{"booking": draft}
		if user, err := users.GetByID(userID); err == nil {
			response["primaryTraveler"] = models.Traveler{
				ID:        "1",
				Name:      user.Name,
				IsPrimary: true,
			}
		}

		c.JSON(201, response)
	}
}

// SetTravelDates completes the calendar step of the draft
func SetTravelDates(bookings *stores.BookingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		var input struct {
			StartDate time.Time `json:"startDate" binding:"required"`
			EndDate   time.Time `json:"endDate" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		draft, err := bookings.SetTravelDates(userID, input.StartDate, input.EndDate)
		if err != nil {
			c.JSON(409, gin.H{"error": "No active booking draft"})
			return
		}

		c.JSON(200, draft)
	}
}

type TravelerInput struct {
	ID        string `json:"id"`
	Name      string `json:"name" binding:"required"`
	Age       string `json:"age" binding:"required"`
	IsPrimary bool   `json:"isPrimary"`
}

// SetTravelers completes the traveler-info step of the draft
func SetTravelers(bookings *stores.BookingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		var input struct {
			Travelers       []TravelerInput `json:"travelers" binding:"required,min=1,dive"`
			SpecialRequests string          `json:"specialRequests"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		info := models.TravelerInfo{
			Travelers:       make([]models.Traveler, len(input.Travelers)),
			SpecialRequests: input.SpecialRequests,
		}
		for i, t := range input.Travelers {
			info.Travelers[i] = models.Traveler{
				ID:        t.ID,
				Name:      t.Name,
				Age:       t.Age,
				IsPrimary: t.IsPrimary,
			}
		}

		draft, err := bookings.SetTravelers(userID, info)
		if err != nil {
			c.JSON(409, gin.H{"error": "No active booking draft"})
			return
		}

		c.JSON(200, draft)
	}
}

// GetBookingTotal computes the draft total from the tour's per-person
// price and the traveler count.
func GetBookingTotal(bookings *stores.BookingStore, catalog *stores.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		draft, err := bookings.CurrentBooking(userID)
		if err != nil {
			c.JSON(409, gin.H{"error": "No active booking draft"})
			return
		}

		tour, err := catalog.Tour(draft.TourID)
		if err != nil {
			c.JSON(404, gin.H{"error": "Tour not found"})
			return
		}

		total, err := bookings.CalculateTotal(userID, tour.Price)
		if err != nil {
			c.JSON(409, gin.H{"error": "No active booking draft"})
			return
		}

		c.JSON(200, gin.H{
			"unitPrice":     tour.Price,
			"travelerCount": len(draft.Travelers),
			"totalPrice":    total,
		})
	}
}

// SetPaymentInfo completes the payment step of the draft
func SetPaymentInfo(bookings *stores.BookingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		var input struct {
			PaymentMethod string `json:"paymentMethod" binding:"required,oneof=treasury moneylender trade slave"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		draft, err := bookings.SetPaymentInfo(userID, models.PaymentMethod(input.PaymentMethod))
		if err != nil {
			c.JSON(409, gin.H{"error": "No active booking draft"})
			return
		}

		c.JSON(200, draft)
	}
}

// ConfirmBooking commits the draft to the durable list and notifies
// the user over the websocket hub.
func ConfirmBooking(bookings *stores.BookingStore, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		booking, err := bookings.ConfirmBooking(userID)
		if err != nil {
			c.JSON(409, gin.H{"error": "No active booking draft"})
			return
		}

		hub.SendBookingConfirmed(userID, booking)

		c.JSON(201, booking)
	}
}

// GetCurrentBooking retrieves the in-flight draft and its workflow step
func GetCurrentBooking(bookings *stores.BookingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		draft, err := bookings.CurrentBooking(userID)
		if err != nil {
			c.JSON(404, gin.H{"error": "No active booking draft"})
			return
		}

		step, _ := bookings.CurrentStep(userID)

		c.JSON(200, gin.H{
			"booking": draft,
			"step":    step,
		})
	}
}

// CancelBookingProcess discards the in-flight draft
func CancelBookingProcess(bookings *stores.BookingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		bookings.CancelBookingProcess(userID)

		c.JSON(200, gin.H{"message": "Booking process cancelled"})
	}
}

// GetBookings lists all of the user's committed bookings
func GetBookings(bookings *stores.BookingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		c.JSON(200, bookings.GetAllBookings(userID))
	}
}

// GetActiveBookings lists confirmed bookings with upcoming travel dates
func GetActiveBookings(bookings *stores.BookingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		c.JSON(200, bookings.GetActiveBookings(userID))
	}
}

// GetBookingHistory lists confirmed bookings whose travel has passed
func GetBookingHistory(bookings *stores.BookingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		c.JSON(200, bookings.GetBookingHistory(userID))
	}
}

// GetBooking retrieves a single committed booking
func GetBooking(bookings *stores.BookingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		booking, err := bookings.GetBookingByID(userID, c.Param("id"))
		if err != nil {
			c.JSON(404, gin.H{"error": "Booking not found"})
			return
		}

		c.JSON(200, booking)
	}
}

// CancelBooking cancels a confirmed booking. The record stays in the
// durable list with status cancelled.
func CancelBooking(bookings *stores.BookingStore, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		booking, err := bookings.CancelBooking(userID, c.Param("id"))
		if err == stores.ErrBookingNotFound {
			c.JSON(404, gin.H{"error": "Booking not found"})
			return
		}
		if err == stores.ErrBookingNotCancellable {
			c.JSON(409, gin.H{"error": "Booking is not cancellable"})
			return
		}
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to cancel booking"})
			return
		}

		hub.SendBookingCancelled(userID, booking)

		c.JSON(200, booking)
	}
}
