package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/nexlot/nexlot-backend/internal/models"
	"github.com/nexlot/nexlot-backend/internal/services"
	"github.com/nexlot/nexlot-backend/pkg/utils"
	"gorm.io/gorm"
)

// GetProfile retrieves the user's profile
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var user models.User
		if err := db.First(&user, userId).Error; err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		c.JSON(200, gin.H{
			"id":                 user.ID,
			"email":              user.Email,
			"name":               user.Name,
			"role":               user.Role,
			"avatarUrl":          user.AvatarURL,
			"verificationStatus": user.VerificationStatus,
		})
	}
}

// UpdateProfile updates the user's profile information
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input struct {
			Name *string `json:"name"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, userId).Error; err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		if input.Name != nil {
			user.Name = *input.Name
		}

		if err := db.Save(&user).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update profile"})
			return
		}

		c.JSON(200, gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"name":      user.Name,
			"role":      user.Role,
			"avatarUrl": user.AvatarURL,
		})
	}
}

// UploadAvatar stores a new profile picture and returns its URL
func UploadAvatar(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		file, err := c.FormFile("avatar")
		if err != nil {
			c.JSON(400, gin.H{"error": "Avatar file is required"})
			return
		}

		var user models.User
		if err := db.First(&user, userId).Error; err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		url, err := services.UploadImage(file, services.FolderAvatars)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to upload avatar: " + err.Error()})
			return
		}

		user.AvatarURL = url
		if err := db.Save(&user).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update profile"})
			return
		}

		c.JSON(200, gin.H{"avatarUrl": url})
	}
}

// SwitchRole changes the user's active role. Admin accounts cannot switch.
func SwitchRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input struct {
			Role string `json:"role" binding:"required,oneof=vehicle_owner space_owner"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, userId).Error; err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		if !user.CanSwitchRole() {
			c.JSON(403, gin.H{"error": "Admin role cannot be changed"})
			return
		}

		user.Role = input.Role
		if err := db.Save(&user).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to switch role"})
			return
		}

		// Issue a fresh token so the role claim matches immediately
		token, err := utils.GenerateToken(&user)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(200, gin.H{
			"token": token,
			"role":  user.Role,
		})
	}
}

// GetEarnings returns the owner's accumulated earnings from approved bookings
func GetEarnings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var user models.User
		if err := db.First(&user, userId).Error; err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		c.JSON(200, gin.H{"earnings": user.Earnings})
	}
}
