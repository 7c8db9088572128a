package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexlot/nexlot-backend/internal/models"
	"github.com/nexlot/nexlot-backend/internal/services"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	// Publishes fail fast against a closed port and are only logged
	services.RedisClient = redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.ParkingSpot{},
		&models.Booking{},
		&models.Review{},
		&models.VerificationRequest{},
	))

	return db
}

// authAs stands in for AuthMiddleware with a fixed identity.
func authAs(userID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userId", userID)
		c.Set("role", role)
		c.Next()
	}
}

func createOwnerAndSpot(t *testing.T, db *gorm.DB) (models.User, models.ParkingSpot) {
	t.Helper()

	owner := models.User{
		Name:         "Owner",
		Email:        fmt.Sprintf("owner-%s@example.com", t.Name()),
		PasswordHash: "x",
		Role:         string(models.RoleSpaceOwner),
	}
	require.NoError(t, db.Create(&owner).Error)

	now := time.Now()
	spot := models.ParkingSpot{
		OwnerID:       owner.ID,
		Name:          "MG Road Parking",
		Lat:           12.9757,
		Lng:           77.6097,
		HourlyPrice:   40,
		VehicleTypes:  []string{"car", "bike"},
		AvailableFrom: now.Add(-time.Hour),
		AvailableTo:   now.Add(30 * 24 * time.Hour),
		Status:        models.SpotStatusAvailable,
	}
	require.NoError(t, db.Create(&spot).Error)

	return owner, spot
}

func createRequester(t *testing.T, db *gorm.DB) models.User {
	t.Helper()

	requester := models.User{
		Name:         "Driver",
		Email:        fmt.Sprintf("driver-%s@example.com", t.Name()),
		PasswordHash: "x",
		Role:         string(models.RoleVehicleOwner),
	}
	require.NoError(t, db.Create(&requester).Error)
	return requester
}

func decideRequest(r *gin.Engine, bookingID uint, action string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"action": action})
	req := httptest.NewRequest("PATCH", fmt.Sprintf("/bookings/%d/status", bookingID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDecideBookingCreditsEarningsOnce(t *testing.T) {
	db := setupTestDB(t)
	hub := services.NewHub()

	owner, spot := createOwnerAndSpot(t, db)
	requester := createRequester(t, db)

	now := time.Now()
	booking := models.Booking{
		SpotID:     spot.ID,
		UserID:     requester.ID,
		SpotName:   spot.Name,
		HourlyRate: spot.HourlyPrice,
		StartTime:  now.Add(time.Hour),
		EndTime:    now.Add(3*time.Hour + 30*time.Minute),
		Status:     models.BookingStatusPending,
		TotalCost:  100,
	}
	require.NoError(t, db.Create(&booking).Error)

	r := gin.New()
	r.PATCH("/bookings/:id/status", authAs(owner.ID, string(models.RoleSpaceOwner)), DecideBooking(db, hub))

	w := decideRequest(r, booking.ID, "approve")
	require.Equal(t, 200, w.Code)

	var updatedOwner models.User
	require.NoError(t, db.First(&updatedOwner, owner.ID).Error)
	assert.Equal(t, 100.0, updatedOwner.Earnings)

	var updated models.Booking
	require.NoError(t, db.First(&updated, booking.ID).Error)
	assert.Equal(t, models.BookingStatusApproved, updated.Status)

	// A second decision is a conflict and must not touch status or earnings
	w = decideRequest(r, booking.ID, "reject")
	assert.Equal(t, 409, w.Code)

	require.NoError(t, db.First(&updatedOwner, owner.ID).Error)
	assert.Equal(t, 100.0, updatedOwner.Earnings)
	require.NoError(t, db.First(&updated, booking.ID).Error)
	assert.Equal(t, models.BookingStatusApproved, updated.Status)
}

func TestDecideBookingRejectLeavesEarningsUntouched(t *testing.T) {
	db := setupTestDB(t)
	hub := services.NewHub()

	owner, spot := createOwnerAndSpot(t, db)
	requester := createRequester(t, db)

	now := time.Now()
	booking := models.Booking{
		SpotID:     spot.ID,
		UserID:     requester.ID,
		SpotName:   spot.Name,
		HourlyRate: spot.HourlyPrice,
		StartTime:  now.Add(time.Hour),
		EndTime:    now.Add(2 * time.Hour),
		Status:     models.BookingStatusPending,
		TotalCost:  40,
	}
	require.NoError(t, db.Create(&booking).Error)

	r := gin.New()
	r.PATCH("/bookings/:id/status", authAs(owner.ID, string(models.RoleSpaceOwner)), DecideBooking(db, hub))

	w := decideRequest(r, booking.ID, "reject")
	require.Equal(t, 200, w.Code)

	var updatedOwner models.User
	require.NoError(t, db.First(&updatedOwner, owner.ID).Error)
	assert.Zero(t, updatedOwner.Earnings)

	var updated models.Booking
	require.NoError(t, db.First(&updated, booking.ID).Error)
	assert.Equal(t, models.BookingStatusRejected, updated.Status)
}

func TestDecideBookingGoneSpot(t *testing.T) {
	db := setupTestDB(t)
	hub := services.NewHub()

	owner, spot := createOwnerAndSpot(t, db)
	requester := createRequester(t, db)

	now := time.Now()
	booking := models.Booking{
		SpotID:     spot.ID,
		UserID:     requester.ID,
		SpotName:   spot.Name,
		HourlyRate: spot.HourlyPrice,
		StartTime:  now.Add(time.Hour),
		EndTime:    now.Add(2 * time.Hour),
		Status:     models.BookingStatusPending,
		TotalCost:  40,
	}
	require.NoError(t, db.Create(&booking).Error)

	// Orphan the booking the way legacy rows might be: spot gone underneath it
	require.NoError(t, db.Delete(&spot).Error)

	r := gin.New()
	r.PATCH("/bookings/:id/status", authAs(owner.ID, string(models.RoleSpaceOwner)), DecideBooking(db, hub))

	w := decideRequest(r, booking.ID, "approve")
	assert.Equal(t, 410, w.Code)
}
