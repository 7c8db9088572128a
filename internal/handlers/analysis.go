package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/nexlot/nexlot-backend/internal/models"
	"github.com/nexlot/nexlot-backend/internal/services"
	"gorm.io/gorm"
)

// AnalyzeSpot runs the configured safety analyzer over a spot's photos
func AnalyzeSpot(db *gorm.DB, analyzer services.SpotAnalyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		spotId := c.Param("id")

		var spot models.ParkingSpot
		if err := db.First(&spot, spotId).Error; err != nil {
			c.JSON(404, gin.H{"error": "Spot not found"})
			return
		}

		if len(spot.Images) == 0 {
			c.JSON(400, gin.H{"error": "Spot has no photos to analyze"})
			return
		}

		result, err := analyzer.AnalyzeSpotImages(spot.Images)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to analyze spot: " + err.Error()})
			return
		}

		c.JSON(200, result)
	}
}
