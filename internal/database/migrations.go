package database

import (
	"github.com/nexlot/nexlot-backend/internal/models"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	// Create tables if they don't exist
	err := db.AutoMigrate(
		&models.User{},
		&models.ParkingSpot{},
		&models.Booking{},
		&models.Review{},
		&models.VerificationRequest{},
	)
	if err != nil {
		return err
	}

	// Update users table
	if db.Migrator().HasTable(&models.User{}) {
		columns := []string{
			"ADD COLUMN IF NOT EXISTS avatar_url text DEFAULT ''",
			"ADD COLUMN IF NOT EXISTS verification_status text DEFAULT ''",
			"ADD COLUMN IF NOT EXISTS earnings numeric DEFAULT 0",
			"ADD COLUMN IF NOT EXISTS role text DEFAULT 'vehicle_owner'",
		}

		for _, column := range columns {
			if err := db.Exec("ALTER TABLE users " + column).Error; err != nil {
				return err
			}
		}

		// Update constraint
		db.Exec(`ALTER TABLE users DROP CONSTRAINT IF EXISTS users_role_check`)
		db.Exec(`ALTER TABLE users ADD CONSTRAINT users_role_check CHECK (role IN ('vehicle_owner', 'space_owner', 'admin'))`)
	}

	// Booking status constraint
	if db.Migrator().HasTable(&models.Booking{}) {
		db.Exec(`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS bookings_status_check`)
		db.Exec(`ALTER TABLE bookings ADD CONSTRAINT bookings_status_check CHECK (status IN ('pending', 'approved', 'rejected', 'completed'))`)
	}

	// Review rating bounds
	if db.Migrator().HasTable(&models.Review{}) {
		db.Exec(`ALTER TABLE reviews DROP CONSTRAINT IF EXISTS reviews_rating_check`)
		db.Exec(`ALTER TABLE reviews ADD CONSTRAINT reviews_rating_check CHECK (rating BETWEEN 1 AND 5)`)
	}

	return nil
}
