package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tempustours/tempus-backend/internal/stores"
)

// GetTravelStats summarizes the user's booking record
func GetTravelStats(bookings *stores.BookingStore, catalog *stores.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		c.JSON(200, stores.ComputeTravelStats(bookings.GetAllBookings(userID), catalog))
	}
}
