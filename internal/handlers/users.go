package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tempustours/tempus-backend/internal/stores"
)

// GetProfile retrieves the authenticated user's profile
func GetProfile(users *stores.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		user, err := users.GetByID(userID)
		if err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		c.JSON(200, userResponse(user))
	}
}

// UpdateProfile updates the authenticated user's profile information
func UpdateProfile(users *stores.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		var input struct {
			Name         *string `json:"name"`
			Citizenship  *string `json:"citizenship"`
			ProfileImage *string `json:"profileImage"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		user, err := users.UpdateProfile(userID, input.Name, input.Citizenship, input.ProfileImage)
		if err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		c.JSON(200, userResponse(user))
	}
}
