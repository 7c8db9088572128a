package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexlot/nexlot-backend/internal/models"
	"github.com/nexlot/nexlot-backend/internal/services"
	"github.com/nexlot/nexlot-backend/pkg/utils"
	"gorm.io/gorm"
)

// CreateBooking handles a vehicle owner's request to reserve a spot.
// The booking is stored once; the requester's list and the owner's queue
// are both projections over the bookings table.
func CreateBooking(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")
		role := c.GetString("role")

		if role != string(models.RoleVehicleOwner) {
			c.JSON(403, gin.H{"error": "Only vehicle owners can book spots"})
			return
		}

		var input struct {
			SpotID    uint      `json:"spotId" binding:"required"`
			StartTime time.Time `json:"startTime" binding:"required"`
			EndTime   time.Time `json:"endTime" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var spot models.ParkingSpot
		if err := db.First(&spot, input.SpotID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Spot not found"})
			return
		}

		cost := utils.CalculateBookingCost(input.StartTime, input.EndTime, spot.HourlyPrice)
		if !cost.Valid {
			c.JSON(400, gin.H{"error": "End time must be after start time"})
			return
		}

		if !spot.CoversWindow(input.StartTime, input.EndTime) {
			c.JSON(400, gin.H{"error": "Booking must fall within the spot's availability window"})
			return
		}

		booking := models.Booking{
			SpotID:     spot.ID,
			UserID:     userId,
			SpotName:   spot.Name,
			HourlyRate: spot.HourlyPrice,
			StartTime:  input.StartTime,
			EndTime:    input.EndTime,
			Status:     models.BookingStatusPending,
			TotalCost:  cost.TotalCost,
		}

		if err := db.Create(&booking).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create booking"})
			return
		}

		// Notify the spot owner about the new request
		hub.SendBookingRequested(spot.OwnerID, services.BookingRequested{
			BookingID: booking.ID,
			SpotID:    spot.ID,
			SpotName:  spot.Name,
			UserID:    userId,
			TotalCost: booking.TotalCost,
		})

		go func() {
			if err := services.PublishBookingUpdate(context.Background(), booking.ID, string(booking.Status), map[string]interface{}{
				"spotId":  spot.ID,
				"ownerId": spot.OwnerID,
				"userId":  userId,
			}); err != nil {
				log.Printf("Failed to publish booking update: %v", err)
			}
		}()

		c.JSON(201, booking)
	}
}

// GetBookingStatus retrieves detailed booking information
func GetBookingStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingId := c.Param("id")
		userId := c.GetUint("userId")

		var booking models.Booking
		if err := db.Preload("Spot").
			Preload("Spot.Owner").
			Preload("User").
			First(&booking, bookingId).Error; err != nil {
			c.JSON(404, gin.H{"error": "Booking not found"})
			return
		}

		if booking.UserID != userId && (booking.Spot == nil || booking.Spot.OwnerID != userId) {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		response := gin.H{
			"id":          booking.ID,
			"status":      booking.Status,
			"spotName":    booking.SpotName,
			"hourlyRate":  booking.HourlyRate,
			"startTime":   booking.StartTime,
			"endTime":     booking.EndTime,
			"totalCost":   booking.TotalCost,
			"hasFeedback": booking.HasFeedback,
			"createdAt":   booking.CreatedAt,
		}

		if booking.User != nil {
			response["requester"] = gin.H{
				"name":  booking.User.Name,
				"email": booking.User.Email,
			}
		}

		if booking.Spot != nil && booking.Spot.Owner != nil {
			response["owner"] = gin.H{
				"name":  booking.Spot.Owner.Name,
				"email": booking.Spot.Owner.Email,
			}
		}

		c.JSON(200, response)
	}
}

// GetMyBookings retrieves the caller's bookings, optionally narrowed to the
// upcoming, pending or past view.
func GetMyBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")
		view := c.Query("view")

		var bookings []models.Booking
		if err := db.Where("user_id = ?", userId).
			Preload("Spot").
			Order("start_time").
			Find(&bookings).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch bookings"})
			return
		}

		if view == "" {
			c.JSON(200, bookings)
			return
		}

		now := time.Now()
		filtered := make([]models.Booking, 0, len(bookings))
		for _, b := range bookings {
			switch view {
			case "upcoming":
				if b.IsUpcoming(now) {
					filtered = append(filtered, b)
				}
			case "pending":
				if b.IsPending() {
					filtered = append(filtered, b)
				}
			case "past":
				if b.IsPast(now) {
					filtered = append(filtered, b)
				}
			case "awaiting-review":
				if b.AwaitsReview(now) {
					filtered = append(filtered, b)
				}
			default:
				c.JSON(400, gin.H{"error": "Unknown view: " + view})
				return
			}
		}

		c.JSON(200, filtered)
	}
}

// GetOwnerRequests retrieves booking requests for the caller's spots
func GetOwnerRequests(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		query := db.Joins("JOIN parking_spots ON parking_spots.id = bookings.spot_id AND parking_spots.deleted_at IS NULL").
			Where("parking_spots.owner_id = ?", userId)

		if status := c.Query("status"); status != "" {
			query = query.Where("bookings.status = ?", status)
		}

		var bookings []models.Booking
		if err := query.Preload("User").
			Preload("Spot").
			Order("bookings.created_at").
			Find(&bookings).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch booking requests"})
			return
		}

		c.JSON(200, bookings)
	}
}

// DecideBooking applies the owner's approve/reject decision. A booking
// leaves pending exactly once; approving credits the full cost to the
// owner's earnings in the same transaction as the status change.
func DecideBooking(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingId := c.Param("id")
		userId := c.GetUint("userId")

		var input struct {
			Action string `json:"action" binding:"required,oneof=approve reject"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var booking models.Booking
		if err := db.Preload("Spot").First(&booking, bookingId).Error; err != nil {
			c.JSON(404, gin.H{"error": "Booking not found"})
			return
		}

		if booking.Spot == nil {
			c.JSON(410, gin.H{"error": "Spot for this booking no longer exists"})
			return
		}

		if booking.Spot.OwnerID != userId {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		if !booking.CanBeDecided() {
			c.JSON(409, gin.H{"error": "Booking has already been decided"})
			return
		}

		newStatus := models.BookingStatusRejected
		if input.Action == "approve" {
			newStatus = models.BookingStatusApproved
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			// Guard against a concurrent decision on the same booking
			result := tx.Model(&models.Booking{}).
				Where("id = ? AND status = ?", booking.ID, models.BookingStatusPending).
				Update("status", newStatus)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}

			if newStatus == models.BookingStatusApproved {
				if err := tx.Model(&models.User{}).
					Where("id = ?", booking.Spot.OwnerID).
					Update("earnings", gorm.Expr("earnings + ?", booking.TotalCost)).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(409, gin.H{"error": "Booking has already been decided"})
				return
			}
			c.JSON(500, gin.H{"error": "Failed to update booking status"})
			return
		}

		booking.Status = newStatus

		// Notify the requester of the decision
		hub.SendBookingDecided(booking.UserID, services.BookingDecided{
			BookingID: booking.ID,
			SpotID:    booking.SpotID,
			SpotName:  booking.SpotName,
			Status:    string(newStatus),
			TotalCost: booking.TotalCost,
		})

		go func() {
			if err := services.PublishBookingUpdate(context.Background(), booking.ID, string(newStatus), map[string]interface{}{
				"spotId": booking.SpotID,
				"userId": booking.UserID,
			}); err != nil {
				log.Printf("Failed to publish booking update: %v", err)
			}
		}()

		c.JSON(200, booking)
	}
}
