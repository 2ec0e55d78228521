package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tempustours/tempus-backend/internal/stores"
)

// GetFavorites lists the user's favorite tour ids
func GetFavorites(favorites *stores.FavoritesStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		c.JSON(200, gin.H{"favorites": favorites.Favorites(userID)})
	}
}

// AddFavorite puts a tour into the user's favorites
func AddFavorite(favorites *stores.FavoritesStore, catalog *stores.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		var input struct {
			TourID string `json:"tourId" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if _, err := catalog.Tour(input.TourID); err != nil {
			c.JSON(404, gin.H{"error": "Tour not found"})
			return
		}

		favorites.Add(userID, input.TourID)

		c.JSON(200, gin.H{"favorites": favorites.Favorites(userID)})
	}
}

// ToggleFavorite flips a tour's favorite status
func ToggleFavorite(favorites *stores.FavoritesStore, catalog *stores.CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		var input struct {
			TourID string `json:"tourId" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if _, err := catalog.Tour(input.TourID); err != nil {
			c.JSON(404, gin.H{"error": "Tour not found"})
			return
		}

		isFavorite := favorites.Toggle(userID, input.TourID)

		c.JSON(200, gin.H{
			"isFavorite": isFavorite,
			"favorites":  favorites.Favorites(userID),
		})
	}
}

// RemoveFavorite takes a tour out of the user's favorites
func RemoveFavorite(favorites *stores.FavoritesStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		favorites.Remove(userID, c.Param("tourId"))

		c.JSON(200, gin.H{"favorites": favorites.Favorites(userID)})
	}
}

// ClearFavorites empties the user's favorites
func ClearFavorites(favorites *stores.FavoritesStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		favorites.Clear(userID)

		c.JSON(200, gin.H{"favorites": []string{}})
	}
}
