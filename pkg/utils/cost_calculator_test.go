package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBookingCost(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("two and a half hours at 40 per hour", func(t *testing.T) {
		start := day.Add(10 * time.Hour)
		end := day.Add(12*time.Hour + 30*time.Minute)

		result := CalculateBookingCost(start, end, 40)

		require.True(t, result.Valid)
		assert.Equal(t, 100.0, result.TotalCost)
		assert.Equal(t, 2.5, result.DurationHours)
		assert.Equal(t, 40.0, result.HourlyRate)
		assert.Equal(t, 100.0, result.Breakdown.Total)
	})

	t.Run("fractional hours bill proportionally", func(t *testing.T) {
		start := day
		end := day.Add(90 * time.Minute)

		result := CalculateBookingCost(start, end, 60)

		require.True(t, result.Valid)
		assert.Equal(t, 90.0, result.TotalCost)
	})

	t.Run("total is rounded to two decimals", func(t *testing.T) {
		start := day
		end := day.Add(20 * time.Minute)

		result := CalculateBookingCost(start, end, 50)

		require.True(t, result.Valid)
		assert.Equal(t, 16.67, result.TotalCost)
	})

	t.Run("end equal to start is invalid", func(t *testing.T) {
		result := CalculateBookingCost(day, day, 40)

		assert.False(t, result.Valid)
		assert.Zero(t, result.TotalCost)
	})

	t.Run("end before start is invalid", func(t *testing.T) {
		result := CalculateBookingCost(day.Add(2*time.Hour), day, 40)

		assert.False(t, result.Valid)
		assert.Zero(t, result.TotalCost)
	})

	t.Run("zero instants are invalid", func(t *testing.T) {
		assert.False(t, CalculateBookingCost(time.Time{}, day, 40).Valid)
		assert.False(t, CalculateBookingCost(day, time.Time{}, 40).Valid)
	})

	t.Run("cost is never negative", func(t *testing.T) {
		for hours := 1; hours <= 48; hours++ {
			result := CalculateBookingCost(day, day.Add(time.Duration(hours)*time.Hour), 35)
			require.True(t, result.Valid)
			assert.GreaterOrEqual(t, result.TotalCost, 0.0)
		}
	})
}
