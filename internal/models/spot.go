package models

import (
	"time"

	"gorm.io/gorm"
)

type VehicleType string

const (
	VehicleTypeCar   VehicleType = "car"
	VehicleTypeBike  VehicleType = "bike"
	VehicleTypeSedan VehicleType = "sedan"
)

type SpotStatus string

const (
	SpotStatusAvailable SpotStatus = "available"
	SpotStatusSoon      SpotStatus = "soon"
	SpotStatusFilling   SpotStatus = "filling"
	SpotStatusFull      SpotStatus = "full"
)

type ParkingSpot struct {
	gorm.Model
	OwnerID       uint       `json:"ownerId" gorm:"not null"`
	Owner         *User      `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name          string     `json:"name" gorm:"not null"`
	Description   string     `json:"description"`
	Lat           float64    `json:"lat" gorm:"not null"`
	Lng           float64    `json:"lng" gorm:"not null"`
	HourlyPrice   float64    `json:"hourlyPrice" gorm:"not null"`
	MonthlyPrice  *float64   `json:"monthlyPrice,omitempty"`
	Rating        float64    `json:"rating" gorm:"not null;default:0"`
	VehicleTypes  []string   `json:"vehicleTypes" gorm:"serializer:json;not null"`
	Images        []string   `json:"images" gorm:"serializer:json"`
	AvailableFrom time.Time  `json:"availableFrom" gorm:"not null"`
	AvailableTo   time.Time  `json:"availableTo" gorm:"not null"`
	Status        SpotStatus `json:"status" gorm:"not null;default:'available'"`
}

// TableName specifies the table name
func (ParkingSpot) TableName() string {
	return "parking_spots"
}

// AcceptsVehicleType reports whether the spot allows the given vehicle type.
func (s *ParkingSpot) AcceptsVehicleType(vt string) bool {
	for _, t := range s.VehicleTypes {
		if t == vt {
			return true
		}
	}
	return false
}

// CoversWindow reports whether the interval [start, end) falls inside the
// spot's availability window.
func (s *ParkingSpot) CoversWindow(start, end time.Time) bool {
	return !start.Before(s.AvailableFrom) && !end.After(s.AvailableTo)
}

// ValidVehicleType reports whether vt is one of the accepted vehicle kinds.
func ValidVehicleType(vt string) bool {
	switch VehicleType(vt) {
	case VehicleTypeCar, VehicleTypeBike, VehicleTypeSedan:
		return true
	}
	return false
}

// ValidSpotStatus reports whether st is a known listing status.
func ValidSpotStatus(st string) bool {
	switch SpotStatus(st) {
	case SpotStatusAvailable, SpotStatusSoon, SpotStatusFilling, SpotStatusFull:
		return true
	}
	return false
}
