package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/nexlot/nexlot-backend/internal/models"
	"github.com/nexlot/nexlot-backend/internal/services"
	"gorm.io/gorm"
)

// UploadSpotPhoto adds a photo to the spot's ordered gallery
func UploadSpotPhoto(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		spotId := c.Param("id")
		userId := c.GetUint("userId")

		var spot models.ParkingSpot
		if err := db.First(&spot, spotId).Error; err != nil {
			c.JSON(404, gin.H{"error": "Spot not found"})
			return
		}

		if spot.OwnerID != userId {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		file, err := c.FormFile("photo")
		if err != nil {
			c.JSON(400, gin.H{"error": "Photo file is required"})
			return
		}

		url, err := services.UploadImage(file, services.FolderSpots)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to upload photo: " + err.Error()})
			return
		}

		spot.Images = append(spot.Images, url)
		if err := db.Save(&spot).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update spot"})
			return
		}

		c.JSON(201, gin.H{
			"url":    url,
			"images": spot.Images,
		})
	}
}

// DeleteSpotPhoto removes a photo from the spot's gallery by URL
func DeleteSpotPhoto(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		spotId := c.Param("id")
		userId := c.GetUint("userId")

		var input struct {
			URL string `json:"url" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var spot models.ParkingSpot
		if err := db.First(&spot, spotId).Error; err != nil {
			c.JSON(404, gin.H{"error": "Spot not found"})
			return
		}

		if spot.OwnerID != userId {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		images := make([]string, 0, len(spot.Images))
		found := false
		for _, img := range spot.Images {
			if img == input.URL {
				found = true
				continue
			}
			images = append(images, img)
		}

		if !found {
			c.JSON(404, gin.H{"error": "Photo not found on this spot"})
			return
		}

		spot.Images = images
		if err := db.Save(&spot).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update spot"})
			return
		}

		if err := services.DeleteImage(input.URL); err != nil {
			// The gallery entry is gone either way; storage cleanup is
			// best effort
			c.JSON(200, gin.H{"images": spot.Images, "warning": "Photo removed but storage cleanup failed"})
			return
		}

		c.JSON(200, gin.H{"images": spot.Images})
	}
}
