package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tempustours/tempus-backend/internal/stores"
)

// GetThemePreference retrieves the user's appearance preference
func GetThemePreference(themes *stores.ThemeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		c.JSON(200, themes.Preference(userID))
	}
}

// UpdateThemePreference updates the user's appearance preference.
// Only provided fields change.
func UpdateThemePreference(themes *stores.ThemeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		var input struct {
			IsDarkMode   *bool `json:"isDarkMode"`
			FollowSystem *bool `json:"followSystem"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, themes.Update(userID, input.IsDarkMode, input.FollowSystem))
	}
}
