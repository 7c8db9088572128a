package database

import (
	"os"
	"time"

	"github.com/nexlot/nexlot-backend/internal/models"
	"gorm.io/gorm"
)

// SeedAdmin creates the fixed admin account from ADMIN_EMAIL/ADMIN_PASSWORD
// if it does not exist yet. The admin role is never switchable.
func SeedAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := models.User{
		Name:     "Admin",
		Email:    email,
		Password: password,
		Role:     string(models.RoleAdmin),
	}
	if err := admin.HashPassword(); err != nil {
		return err
	}
	return db.Create(&admin).Error
}

// SampleSpots returns the demo listings used for development seeding.
func SampleSpots(ownerID uint) []models.ParkingSpot {
	now := time.Now()
	monthEnd := now.Add(30 * 24 * time.Hour)
	monthly := func(v float64) *float64 { return &v }

	return []models.ParkingSpot{
		{
			OwnerID:       ownerID,
			Name:          "MG Road Parking",
			Description:   "Convenient parking near MG Road metro station with 24/7 security",
			Lat:           12.9757,
			Lng:           77.6097,
			HourlyPrice:   40,
			MonthlyPrice:  monthly(3000),
			Rating:        4.5,
			VehicleTypes:  []string{"car", "bike"},
			AvailableFrom: now,
			AvailableTo:   monthEnd,
			Status:        models.SpotStatusAvailable,
		},
		{
			OwnerID:       ownerID,
			Name:          "Indiranagar Basement",
			Description:   "Secure underground parking in Indiranagar 100ft Road",
			Lat:           12.9784,
			Lng:           77.6408,
			HourlyPrice:   50,
			MonthlyPrice:  monthly(3500),
			Rating:        4.2,
			VehicleTypes:  []string{"car", "sedan"},
			AvailableFrom: now,
			AvailableTo:   monthEnd,
			Status:        models.SpotStatusSoon,
		},
		{
			OwnerID:       ownerID,
			Name:          "Koramangala Plaza",
			Description:   "Premium parking space in Koramangala with CCTV surveillance",
			Lat:           12.9340,
			Lng:           77.6156,
			HourlyPrice:   60,
			MonthlyPrice:  monthly(4000),
			Rating:        4.8,
			VehicleTypes:  []string{"car", "sedan", "bike"},
			AvailableFrom: now,
			AvailableTo:   monthEnd,
			Status:        models.SpotStatusFilling,
		},
		{
			OwnerID:       ownerID,
			Name:          "Whitefield Tech Park",
			Description:   "Spacious parking area near ITPB with shade",
			Lat:           12.9699,
			Lng:           77.7502,
			HourlyPrice:   30,
			MonthlyPrice:  monthly(2500),
			Rating:        3.9,
			VehicleTypes:  []string{"car", "bike"},
			AvailableFrom: now,
			AvailableTo:   monthEnd,
			Status:        models.SpotStatusAvailable,
		},
		{
			OwnerID:       ownerID,
			Name:          "HSR Layout Basement",
			Description:   "Underground parking with 24/7 security in HSR Layout",
			Lat:           12.9081,
			Lng:           77.6476,
			HourlyPrice:   45,
			MonthlyPrice:  monthly(3200),
			Rating:        4.3,
			VehicleTypes:  []string{"car", "sedan"},
			AvailableFrom: now,
			AvailableTo:   monthEnd,
			Status:        models.SpotStatusAvailable,
		},
	}
}

// SeedDemoData inserts a demo space owner and the sample listings when
// SEED_SAMPLE_DATA=true and the spots table is still empty.
func SeedDemoData(db *gorm.DB) error {
	if os.Getenv("SEED_SAMPLE_DATA") != "true" {
		return nil
	}

	var count int64
	if err := db.Model(&models.ParkingSpot{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	owner := models.User{
		Name:     "Demo Owner",
		Email:    "demo-owner@nexlot.app",
		Password: "demo-owner",
		Role:     string(models.RoleSpaceOwner),
	}
	if err := owner.HashPassword(); err != nil {
		return err
	}
	if err := db.Where("email = ?", owner.Email).FirstOrCreate(&owner).Error; err != nil {
		return err
	}

	spots := SampleSpots(owner.ID)
	return db.Create(&spots).Error
}
