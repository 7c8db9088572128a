package services

import (
	"fmt"
	"math/rand"
)

// SpotAnalysisResult is the safety assessment produced for a spot's photos.
type SpotAnalysisResult struct {
	Rating  int      `json:"rating"`
	Tags    []string `json:"tags"`
	Pros    []string `json:"pros"`
	Cons    []string `json:"cons"`
	Summary string   `json:"summary"`
}

// SpotAnalyzer assesses the safety of a parking spot from its photos.
// The default implementation is a canned generator; a real vision backend
// can be plugged in without touching the handlers.
type SpotAnalyzer interface {
	AnalyzeSpotImages(images []string) (SpotAnalysisResult, error)
}

var analysisTags = []string{
	"Indoor", "Outdoor", "Covered", "Uncovered", "Safe", "Well-lit", "CCTV", "Security",
}

var analysisPros = []string{
	"Well-lit area",
	"24/7 security cameras",
	"Easy access from main road",
	"Good visibility from surroundings",
	"Weather protected",
	"Wide parking spaces",
	"Close to public transportation",
	"Smooth surface",
}

var analysisCons = []string{
	"Limited entrance/exit points",
	"Narrow parking spaces",
	"Limited operational hours",
	"No covered parking",
	"Distance from public transportation",
	"Poor lighting in some areas",
	"Uneven surface",
	"Limited security features",
}

// MockSpotAnalyzer fabricates a plausible assessment from fixed pools.
// No external API is invoked.
type MockSpotAnalyzer struct {
	rng *rand.Rand
}

// NewMockSpotAnalyzer creates an analyzer seeded for reproducible output.
func NewMockSpotAnalyzer(seed int64) *MockSpotAnalyzer {
	return &MockSpotAnalyzer{rng: rand.New(rand.NewSource(seed))}
}

func (a *MockSpotAnalyzer) AnalyzeSpotImages(images []string) (SpotAnalysisResult, error) {
	if len(images) == 0 {
		return SpotAnalysisResult{}, fmt.Errorf("no images to analyze")
	}

	rating := a.rng.Intn(3) + 3 // 3-5 rating

	tags := a.pick(analysisTags, a.rng.Intn(3)+2)
	pros := a.pick(analysisPros, a.rng.Intn(2)+2)
	cons := a.pick(analysisCons, a.rng.Intn(2)+1)

	quality := "moderately safe"
	if rating >= 4 {
		quality = "generally safe"
	}
	summary := fmt.Sprintf("This parking spot has a safety rating of %d/5. It's %s for parking.", rating, quality)

	return SpotAnalysisResult{
		Rating:  rating,
		Tags:    tags,
		Pros:    pros,
		Cons:    cons,
		Summary: summary,
	}, nil
}

// pick returns n distinct entries from pool in shuffled order.
func (a *MockSpotAnalyzer) pick(pool []string, n int) []string {
	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	a.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
