package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpotAcceptsVehicleType(t *testing.T) {
	spot := ParkingSpot{VehicleTypes: []string{"car", "bike"}}

	assert.True(t, spot.AcceptsVehicleType("car"))
	assert.True(t, spot.AcceptsVehicleType("bike"))
	assert.False(t, spot.AcceptsVehicleType("sedan"))
}

func TestSpotCoversWindow(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(30 * 24 * time.Hour)
	spot := ParkingSpot{AvailableFrom: from, AvailableTo: to}

	assert.True(t, spot.CoversWindow(from, to))
	assert.True(t, spot.CoversWindow(from.Add(time.Hour), from.Add(3*time.Hour)))
	assert.False(t, spot.CoversWindow(from.Add(-time.Hour), from.Add(time.Hour)))
	assert.False(t, spot.CoversWindow(to.Add(-time.Hour), to.Add(time.Hour)))
}

func TestValidVehicleType(t *testing.T) {
	assert.True(t, ValidVehicleType("car"))
	assert.True(t, ValidVehicleType("bike"))
	assert.True(t, ValidVehicleType("sedan"))
	assert.False(t, ValidVehicleType("truck"))
	assert.False(t, ValidVehicleType(""))
}

func TestValidSpotStatus(t *testing.T) {
	for _, st := range []string{"available", "soon", "filling", "full"} {
		assert.True(t, ValidSpotStatus(st))
	}
	assert.False(t, ValidSpotStatus("closed"))
}
