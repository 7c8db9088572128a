package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSpots() []ParkingSpot {
	return []ParkingSpot{
		{Name: "MG Road Parking", HourlyPrice: 40, Rating: 4.5, VehicleTypes: []string{"car", "bike"}},
		{Name: "Indiranagar Basement", HourlyPrice: 50, Rating: 4.2, VehicleTypes: []string{"car", "sedan"}},
		{Name: "Koramangala Plaza", HourlyPrice: 60, Rating: 4.8, VehicleTypes: []string{"car", "sedan", "bike"}},
		{Name: "Whitefield Tech Park", HourlyPrice: 30, Rating: 3.9, VehicleTypes: []string{"car", "bike"}},
		{Name: "HSR Layout Basement", HourlyPrice: 45, Rating: 4.3, VehicleTypes: []string{"car", "sedan"}},
	}
}

func spotNames(spots []ParkingSpot) []string {
	names := make([]string, len(spots))
	for i, s := range spots {
		names[i] = s.Name
	}
	return names
}

func TestFilterSpots(t *testing.T) {
	t.Run("empty filter matches all", func(t *testing.T) {
		spots := sampleSpots()
		filtered := FilterSpots(spots, SpotFilter{})
		assert.Equal(t, spotNames(spots), spotNames(filtered))
	})

	t.Run("search is a case-insensitive substring match on name", func(t *testing.T) {
		filtered := FilterSpots(sampleSpots(), SpotFilter{Search: "MG", MaxPrice: 100})
		require.Len(t, filtered, 1)
		assert.Equal(t, "MG Road Parking", filtered[0].Name)

		filtered = FilterSpots(sampleSpots(), SpotFilter{Search: "basement"})
		assert.Equal(t, []string{"Indiranagar Basement", "HSR Layout Basement"}, spotNames(filtered))
	})

	t.Run("vehicle type requires membership", func(t *testing.T) {
		filtered := FilterSpots(sampleSpots(), SpotFilter{VehicleType: "sedan"})
		assert.Equal(t,
			[]string{"Indiranagar Basement", "Koramangala Plaza", "HSR Layout Basement"},
			spotNames(filtered))
	})

	t.Run("max price bounds the hourly rate", func(t *testing.T) {
		filtered := FilterSpots(sampleSpots(), SpotFilter{MaxPrice: 45})
		assert.Equal(t,
			[]string{"MG Road Parking", "Whitefield Tech Park", "HSR Layout Basement"},
			spotNames(filtered))
	})

	t.Run("min rating excludes lower-rated spots", func(t *testing.T) {
		filtered := FilterSpots(sampleSpots(), SpotFilter{MinRating: 4.3})
		assert.Equal(t,
			[]string{"MG Road Parking", "Koramangala Plaza", "HSR Layout Basement"},
			spotNames(filtered))
	})

	t.Run("all predicates are ANDed", func(t *testing.T) {
		filter := SpotFilter{Search: "a", VehicleType: "bike", MaxPrice: 60, MinRating: 4.6}
		filtered := FilterSpots(sampleSpots(), filter)
		assert.Equal(t, []string{"Koramangala Plaza"}, spotNames(filtered))
	})

	t.Run("result preserves original order", func(t *testing.T) {
		spots := sampleSpots()
		filtered := FilterSpots(spots, SpotFilter{VehicleType: "car"})

		last := -1
		for _, f := range filtered {
			found := -1
			for i, s := range spots {
				if s.Name == f.Name {
					found = i
					break
				}
			}
			require.Greater(t, found, last)
			last = found
		}
	})

	t.Run("filtering is idempotent", func(t *testing.T) {
		filter := SpotFilter{VehicleType: "sedan", MaxPrice: 55}
		first := FilterSpots(sampleSpots(), filter)
		second := FilterSpots(sampleSpots(), filter)
		assert.Equal(t, first, second)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		spots := sampleSpots()
		FilterSpots(spots, SpotFilter{MaxPrice: 45})
		assert.Equal(t, spotNames(sampleSpots()), spotNames(spots))
	})

	t.Run("no matches yields an empty slice", func(t *testing.T) {
		filtered := FilterSpots(sampleSpots(), SpotFilter{Search: "does-not-exist"})
		assert.NotNil(t, filtered)
		assert.Empty(t, filtered)
	})
}
