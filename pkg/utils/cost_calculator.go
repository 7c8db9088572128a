package utils

import (
	"math"
	"time"
)

// CostCalculationResult contains the calculated booking cost and breakdown
type CostCalculationResult struct {
	TotalCost     float64       `json:"totalCost"`
	DurationHours float64       `json:"durationHours"`
	HourlyRate    float64       `json:"hourlyRate"`
	Valid         bool          `json:"valid"`
	Breakdown     CostBreakdown `json:"breakdown"`
}

// CostBreakdown provides the detailed cost breakdown
type CostBreakdown struct {
	HourlyRate    float64 `json:"hourlyRate"`
	DurationHours float64 `json:"durationHours"`
	Total         float64 `json:"total"`
}

// CalculateBookingCost computes the cost of parking from start to end at the
// given hourly rate. Fractional hours are billed proportionally with no
// minimum-duration floor. An inverted or empty interval, or a zero time on
// either bound, yields a zero, invalid result; callers must check Valid
// before treating the cost as meaningful.
func CalculateBookingCost(start, end time.Time, hourlyRate float64) CostCalculationResult {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return CostCalculationResult{}
	}

	durationHours := end.Sub(start).Hours()
	totalCost := hourlyRate * durationHours

	// Round to 2 decimal places
	totalCost = math.Round(totalCost*100) / 100

	return CostCalculationResult{
		TotalCost:     totalCost,
		DurationHours: math.Round(durationHours*100) / 100,
		HourlyRate:    hourlyRate,
		Valid:         true,
		Breakdown: CostBreakdown{
			HourlyRate:    hourlyRate,
			DurationHours: math.Round(durationHours*100) / 100,
			Total:         totalCost,
		},
	}
}
