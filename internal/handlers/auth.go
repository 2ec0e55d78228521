package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tempustours/tempus-backend/internal/models"
	"github.com/tempustours/tempus-backend/internal/stores"
	"github.com/tempustours/tempus-backend/pkg/utils"
)

type RegisterInput struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	Name        string `json:"name" binding:"required"`
	Citizenship string `json:"citizenship"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Register(users *stores.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		user, err := users.Register(input.Username, input.Password, input.Name, input.Citizenship)
		if err == stores.ErrUsernameTaken {
			c.JSON(409, gin.H{"error": "Username already exists"})
			return
		}
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to create user"})
			return
		}

		token, err := utils.GenerateToken(&user)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(201, gin.H{
			"token": token,
			"user":  userResponse(user),
		})
	}
}

func Login(users *stores.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		user, err := users.Authenticate(input.Username, input.Password)
		if err != nil {
			c.JSON(401, gin.H{"error": "Invalid username or password"})
			return
		}

		token, err := utils.GenerateToken(&user)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(200, gin.H{
			"token": token,
			"user":  userResponse(user),
		})
	}
}

// GuestLogin issues a token for the shared guest account
func GuestLogin(users *stores.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := users.GuestUser()

		token, err := utils.GenerateToken(&user)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(200, gin.H{
			"token": token,
			"user":  userResponse(user),
		})
	}
}

// userResponse builds the API shape of an account, leaving the
// password hash out.
func userResponse(user models.User) gin.H {
	return gin.H{
		"id":           user.ID,
		"username":     user.Username,
		"name":         user.Name,
		"citizenship":  user.Citizenship,
		"profileImage": user.ProfileImage,
		"isGuest":      user.IsGuest,
	}
}
