package handlers

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexlot/nexlot-backend/internal/models"
	"github.com/nexlot/nexlot-backend/internal/services"
	"gorm.io/gorm"
)

// SubmitReview records post-stay feedback for a booking. One review per
// booking; the booking must be approved with its end time in the past.
// Recording feedback is also what flips the booking to completed.
func SubmitReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingId := c.Param("id")
		userId := c.GetUint("userId")

		var input struct {
			Rating            int    `json:"rating" binding:"required,min=1,max=5"`
			Comment           string `json:"comment" binding:"required,min=10,max=500"`
			IsRealImage       bool   `json:"isRealImage"`
			IsSpaceAccurate   bool   `json:"isSpaceAccurate"`
			IsOwnerResponsive bool   `json:"isOwnerResponsive"`
			IsSafeParking     bool   `json:"isSafeParking"`
			HasGoodLighting   bool   `json:"hasGoodLighting"`
			IsClean           bool   `json:"isClean"`
			IsPaved           bool   `json:"isPaved"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var booking models.Booking
		if err := db.First(&booking, bookingId).Error; err != nil {
			c.JSON(404, gin.H{"error": "Booking not found"})
			return
		}

		if booking.UserID != userId {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		if !booking.AwaitsReview(time.Now()) {
			if booking.HasFeedback {
				c.JSON(409, gin.H{"error": "Booking has already been reviewed"})
			} else {
				c.JSON(409, gin.H{"error": "Booking is not completed yet"})
			}
			return
		}

		var user models.User
		if err := db.First(&user, userId).Error; err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		review := models.Review{
			SpotID:            booking.SpotID,
			BookingID:         booking.ID,
			UserID:            userId,
			UserName:          user.Name,
			Rating:            input.Rating,
			Comment:           input.Comment,
			IsRealImage:       input.IsRealImage,
			IsSpaceAccurate:   input.IsSpaceAccurate,
			IsOwnerResponsive: input.IsOwnerResponsive,
			IsSafeParking:     input.IsSafeParking,
			HasGoodLighting:   input.HasGoodLighting,
			IsClean:           input.IsClean,
			IsPaved:           input.IsPaved,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&review).Error; err != nil {
				return err
			}

			if err := tx.Model(&models.Booking{}).
				Where("id = ?", booking.ID).
				Updates(map[string]interface{}{
					"has_feedback": true,
					"status":       models.BookingStatusCompleted,
				}).Error; err != nil {
				return err
			}

			// Keep the spot's aggregate rating equal to the review mean
			var reviews []models.Review
			if err := tx.Where("spot_id = ?", booking.SpotID).Find(&reviews).Error; err != nil {
				return err
			}
			summary := models.SummarizeReviews(reviews)

			return tx.Model(&models.ParkingSpot{}).
				Where("id = ?", booking.SpotID).
				Update("rating", summary.AverageRating).Error
		})
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to submit review"})
			return
		}

		if err := services.InvalidateSpotSummary(c.Request.Context(), booking.SpotID); err != nil {
			log.Printf("Failed to invalidate spot summary cache: %v", err)
		}

		c.JSON(201, review)
	}
}

// GetSpotReviews retrieves all reviews for a spot with the aggregate
// summary. An unreviewed spot returns an empty list, never placeholders.
func GetSpotReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		spotId := c.Param("id")

		var spot models.ParkingSpot
		if err := db.First(&spot, spotId).Error; err != nil {
			c.JSON(404, gin.H{"error": "Spot not found"})
			return
		}

		var reviews []models.Review
		if err := db.Where("spot_id = ?", spot.ID).Order("id").Find(&reviews).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		c.JSON(200, gin.H{
			"reviews": reviews,
			"summary": models.SummarizeReviews(reviews),
		})
	}
}
