package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeReviews(t *testing.T) {
	t.Run("no reviews yields a zero summary", func(t *testing.T) {
		summary := SummarizeReviews(nil)
		assert.Zero(t, summary.AverageRating)
		assert.Zero(t, summary.Count)
		assert.Empty(t, summary.Badges)
	})

	t.Run("average is the mean rounded to one decimal", func(t *testing.T) {
		summary := SummarizeReviews([]Review{
			{Rating: 5},
			{Rating: 4},
			{Rating: 4},
		})
		assert.Equal(t, 4.3, summary.AverageRating)
		assert.Equal(t, 3, summary.Count)
	})

	t.Run("badge appears when any review confirms the attribute", func(t *testing.T) {
		summary := SummarizeReviews([]Review{
			{Rating: 4, IsSafeParking: true},
			{Rating: 3, HasGoodLighting: true, IsRealImage: true},
			{Rating: 5},
		})
		assert.ElementsMatch(t,
			[]string{BadgeRealImages, BadgeSafe, BadgeGoodLighting},
			summary.Badges)
	})

	t.Run("no badges when no attributes are confirmed", func(t *testing.T) {
		summary := SummarizeReviews([]Review{{Rating: 2}, {Rating: 1}})
		assert.Empty(t, summary.Badges)
		assert.Equal(t, 1.5, summary.AverageRating)
	})

	t.Run("all badges in display order", func(t *testing.T) {
		summary := SummarizeReviews([]Review{{
			Rating:            5,
			IsRealImage:       true,
			IsSpaceAccurate:   true,
			IsOwnerResponsive: true,
			IsSafeParking:     true,
			HasGoodLighting:   true,
			IsClean:           true,
			IsPaved:           true,
		}})
		assert.Equal(t, []string{
			BadgeRealImages,
			BadgeAccurate,
			BadgeResponsiveOwner,
			BadgeSafe,
			BadgeGoodLighting,
			BadgeClean,
			BadgePaved,
		}, summary.Badges)
	})
}
