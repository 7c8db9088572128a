package handlers

import (
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexlot/nexlot-backend/internal/models"
	"github.com/nexlot/nexlot-backend/internal/services"
	"gorm.io/gorm"
)

// CreateSpot handles the listing of a new parking spot by a space owner
func CreateSpot(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")
		role := c.GetString("role")

		if role != string(models.RoleSpaceOwner) {
			c.JSON(403, gin.H{"error": "Only space owners can list spots"})
			return
		}

		var input struct {
			Name          string    `json:"name" binding:"required"`
			Description   string    `json:"description"`
			Lat           float64   `json:"lat" binding:"required"`
			Lng           float64   `json:"lng" binding:"required"`
			HourlyPrice   float64   `json:"hourlyPrice" binding:"required,gt=0"`
			MonthlyPrice  *float64  `json:"monthlyPrice"`
			VehicleTypes  []string  `json:"vehicleTypes" binding:"required,min=1"`
			Images        []string  `json:"images"`
			AvailableFrom time.Time `json:"availableFrom" binding:"required"`
			AvailableTo   time.Time `json:"availableTo" binding:"required"`
			Status        string    `json:"status"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if !input.AvailableTo.After(input.AvailableFrom) {
			c.JSON(400, gin.H{"error": "Availability end must be after start"})
			return
		}

		for _, vt := range input.VehicleTypes {
			if !models.ValidVehicleType(vt) {
				c.JSON(400, gin.H{"error": "Unknown vehicle type: " + vt})
				return
			}
		}

		status := input.Status
		if status == "" {
			status = string(models.SpotStatusAvailable)
		}
		if !models.ValidSpotStatus(status) {
			c.JSON(400, gin.H{"error": "Unknown spot status: " + status})
			return
		}

		spot := models.ParkingSpot{
			OwnerID:       userId,
			Name:          input.Name,
			Description:   input.Description,
			Lat:           input.Lat,
			Lng:           input.Lng,
			HourlyPrice:   input.HourlyPrice,
			MonthlyPrice:  input.MonthlyPrice,
			VehicleTypes:  input.VehicleTypes,
			Images:        input.Images,
			AvailableFrom: input.AvailableFrom,
			AvailableTo:   input.AvailableTo,
			Status:        models.SpotStatus(status),
		}

		if err := db.Create(&spot).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create spot"})
			return
		}

		c.JSON(201, spot)
	}
}

// GetSpots retrieves all spots matching the caller's filter. The filter is
// applied in memory over the full listing, preserving insertion order.
func GetSpots(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.SpotFilter{
			Search:      c.Query("search"),
			VehicleType: c.Query("vehicleType"),
		}

		if v := c.Query("maxPrice"); v != "" {
			maxPrice, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(400, gin.H{"error": "Invalid maxPrice"})
				return
			}
			filter.MaxPrice = maxPrice
		}

		if v := c.Query("minRating"); v != "" {
			minRating, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(400, gin.H{"error": "Invalid minRating"})
				return
			}
			filter.MinRating = minRating
		}

		if filter.VehicleType != "" && !models.ValidVehicleType(filter.VehicleType) {
			c.JSON(400, gin.H{"error": "Unknown vehicle type: " + filter.VehicleType})
			return
		}

		var spots []models.ParkingSpot
		if err := db.Order("id").Find(&spots).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch spots"})
			return
		}

		c.JSON(200, models.FilterSpots(spots, filter))
	}
}

// GetSpot retrieves a single spot with its review summary
func GetSpot(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		spotId := c.Param("id")

		var spot models.ParkingSpot
		if err := db.First(&spot, spotId).Error; err != nil {
			c.JSON(404, gin.H{"error": "Spot not found"})
			return
		}

		var summary models.ReviewSummary
		if err := services.GetSpotSummary(c.Request.Context(), spot.ID, &summary); err != nil {
			var reviews []models.Review
			if err := db.Where("spot_id = ?", spot.ID).Order("id").Find(&reviews).Error; err != nil {
				c.JSON(500, gin.H{"error": "Failed to fetch reviews"})
				return
			}
			summary = models.SummarizeReviews(reviews)
			if err := services.SetSpotSummary(c.Request.Context(), spot.ID, summary); err != nil {
				log.Printf("Failed to cache spot summary: %v", err)
			}
		}

		c.JSON(200, gin.H{
			"spot":    spot,
			"reviews": summary,
		})
	}
}

// GetOwnerSpots retrieves all spots listed by the calling space owner
func GetOwnerSpots(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var spots []models.ParkingSpot
		if err := db.Where("owner_id = ?", userId).Order("id").Find(&spots).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch spots"})
			return
		}

		c.JSON(200, spots)
	}
}

// DeleteSpot removes a listing. Deletion is blocked while an approved
// booking is still ahead, so stays never lose their spot under them.
func DeleteSpot(db *gorm.DB) gin.HandlerFunc {
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

		var activeBookings int64
		if err := db.Model(&models.Booking{}).
			Where("spot_id = ? AND status = ? AND end_time > ?",
				spot.ID, models.BookingStatusApproved, time.Now()).
			Count(&activeBookings).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to check bookings"})
			return
		}

		if activeBookings > 0 {
			c.JSON(409, gin.H{"error": "Spot has approved upcoming bookings"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			// Requests that were never decided die with the listing
			if err := tx.Model(&models.Booking{}).
				Where("spot_id = ? AND status = ?", spot.ID, models.BookingStatusPending).
				Update("status", models.BookingStatusRejected).Error; err != nil {
				return err
			}
			return tx.Delete(&spot).Error
		})
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete spot"})
			return
		}

		c.JSON(200, gin.H{"message": "Spot deleted successfully"})
	}
}
