package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockSpotAnalyzer(t *testing.T) {
	images := []string{"https://example.com/spots/1.jpg", "https://example.com/spots/2.jpg"}

	t.Run("result stays within the fixed pools and bounds", func(t *testing.T) {
		analyzer := NewMockSpotAnalyzer(1)

		for i := 0; i < 50; i++ {
			result, err := analyzer.AnalyzeSpotImages(images)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, result.Rating, 3)
			assert.LessOrEqual(t, result.Rating, 5)
			assert.NotEmpty(t, result.Tags)
			assert.NotEmpty(t, result.Pros)
			assert.NotEmpty(t, result.Cons)
			assert.Contains(t, result.Summary, "safety rating")

			for _, tag := range result.Tags {
				assert.Contains(t, analysisTags, tag)
			}
			for _, pro := range result.Pros {
				assert.Contains(t, analysisPros, pro)
			}
			for _, con := range result.Cons {
				assert.Contains(t, analysisCons, con)
			}
		}
	})

	t.Run("same seed produces the same assessment", func(t *testing.T) {
		first, err := NewMockSpotAnalyzer(42).AnalyzeSpotImages(images)
		require.NoError(t, err)
		second, err := NewMockSpotAnalyzer(42).AnalyzeSpotImages(images)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("no images is an error", func(t *testing.T) {
		_, err := NewMockSpotAnalyzer(1).AnalyzeSpotImages(nil)
		assert.Error(t, err)
	})
}
