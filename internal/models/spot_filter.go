package models

import "strings"

// SpotFilter is the ephemeral search criteria applied to spot listings.
// A zero MaxPrice or MinRating disables the respective bound; an empty
// search string matches every spot.
type SpotFilter struct {
	Search      string
	VehicleType string
	MaxPrice    float64
	MinRating   float64
}

// Matches reports whether the spot satisfies every predicate of the filter.
func (f SpotFilter) Matches(spot *ParkingSpot) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(spot.Name), strings.ToLower(f.Search)) {
		return false
	}

	if f.VehicleType != "" && !spot.AcceptsVehicleType(f.VehicleType) {
		return false
	}

	if f.MaxPrice > 0 && spot.HourlyPrice > f.MaxPrice {
		return false
	}

	if spot.Rating < f.MinRating {
		return false
	}

	return true
}

// FilterSpots returns the spots satisfying the filter, preserving the
// original order. The input slice is never mutated.
func FilterSpots(spots []ParkingSpot, filter SpotFilter) []ParkingSpot {
	filtered := make([]ParkingSpot, 0, len(spots))
	for i := range spots {
		if filter.Matches(&spots[i]) {
			filtered = append(filtered, spots[i])
		}
	}
	return filtered
}
